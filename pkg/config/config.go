package config

import (
	"AllyBackend/pkg/logger"
	"AllyBackend/pkg/util"
	"fmt"
	"log"
	"os"
)

// config/config.go
type Config struct {
	ServiceAccountPath string `env:"SERVICE_ACCOUNT_PATH"`
	Addr               string `env:"ADDR"`
	Mode               string `env:"MODE"`
	APIPrefix          string `env:"API_PREFIX"`
	AuthPrefix         string `env:"AUTH_PREFIX"`
	MetricsPrefix      string `env:"METRICS_PREFIX"`
	AuthDisabled       bool   `env:"AUTH_DISABLED"`
	RateLimit          string `env:"RATE_LIMIT"`
	Log                logger.LogConfig
}

var GlobalConfig *Config

func Load() error {
	// 1. 根据环境加载 .env 文件
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development" // 默认使用开发环境
	}
	err := util.LoadEnv(env)
	if err != nil {
		log.Printf("Failed to load .env file: %v", err)
	}

	// 2. 加载全局配置
	addr := util.GetEnv("ADDR")
	if addr == "" {
		addr = ":" + util.GetEnvDefault("PORT", "5000")
	}

	GlobalConfig = &Config{
		ServiceAccountPath: util.GetEnv("SERVICE_ACCOUNT_PATH"),
		Addr:               addr,
		Mode:               util.GetEnv("MODE"),
		APIPrefix:          util.GetEnvDefault("API_PREFIX", "/api"),
		AuthPrefix:         util.GetEnvDefault("AUTH_PREFIX", "auth"),
		MetricsPrefix:      util.GetEnvDefault("METRICS_PREFIX", "/metrics"),
		AuthDisabled:       util.GetBoolEnv("AUTH_DISABLED"),
		RateLimit:          util.GetEnvDefault("RATE_LIMIT", "100-M"),
		Log: logger.LogConfig{
			Level:      util.GetEnv("LOG_LEVEL"),
			Filename:   util.GetEnv("LOG_FILENAME"),
			MaxSize:    int(util.GetIntEnv("LOG_MAX_SIZE")),
			MaxAge:     int(util.GetIntEnv("LOG_MAX_AGE")),
			MaxBackups: int(util.GetIntEnv("LOG_MAX_BACKUPS")),
		},
	}

	if GlobalConfig.ServiceAccountPath == "" {
		return fmt.Errorf("SERVICE_ACCOUNT_PATH is required")
	}
	return nil
}
