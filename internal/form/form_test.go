package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, float64(0), Amount(""))
	assert.Equal(t, float64(0), Amount("  "))
	assert.Equal(t, float64(0), Amount("abc"))
	assert.Equal(t, 12.5, Amount(" 12.5 "))
	assert.Equal(t, float64(-3), Amount("-3"))
}

func TestOptionalID(t *testing.T) {
	assert.Nil(t, OptionalID(nil))

	blank := "  "
	assert.Nil(t, OptionalID(&blank))

	junk := "abc"
	assert.Nil(t, OptionalID(&junk))

	negative := "-5"
	assert.Nil(t, OptionalID(&negative))

	valid := "100"
	id := OptionalID(&valid)
	if assert.NotNil(t, id) {
		assert.Equal(t, int64(100), *id)
	}
}
