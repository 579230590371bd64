package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// applyFileOverrides layers values from an optional backoffice.yml on top of the
// environment-derived config. The file is looked up in the working directory and
// the usual system locations; a missing file is not an error.
func applyFileOverrides(cfg Config) Config {
	v := viper.New()

	v.SetConfigName("backoffice")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/backoffice")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("[config] ignoring unreadable backoffice.yml: %v", err)
		}
		return cfg
	}

	if s := strings.TrimSpace(v.GetString("store.name")); s != "" {
		cfg.DefaultStoreName = s
	}
	if s := strings.TrimSpace(v.GetString("numbering.prefix")); s != "" {
		cfg.DefaultInvoicePrefix = s
	}
	if ttl := v.GetInt("report.cache_ttl_seconds"); ttl > 0 {
		cfg.ReportCacheTTL = time.Duration(ttl) * time.Second
	}
	if addr := strings.TrimSpace(v.GetString("redis.addr")); addr != "" {
		cfg.RedisAddr = addr
	}

	return cfg
}
