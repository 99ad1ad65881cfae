package config

import "os"

type JwtConfig struct {
	Secret string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret: os.Getenv("JWT_SECRET"),
	}
}

// CronConfig holds the bcrypt hash of the secret cron callers present
type CronConfig struct {
	SecretHash string
}

func NewCronConfig() *CronConfig {
	return &CronConfig{
		SecretHash: os.Getenv("CRON_SECRET_HASH"),
	}
}
