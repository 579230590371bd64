package domain

import "time"

type Supplier struct {
	ID            int64     `json:"id,string" gorm:"primaryKey"`
	TenantID      string    `json:"tenant_id" gorm:"index"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
