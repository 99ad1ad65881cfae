package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	ScheduleSvcCfg *ScheduleSvcCfg
	SyncConfig     *SyncConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	CronConfig     *CronConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:     NewHTTPConfig(),
		ScheduleSvcCfg: NewScheduleSvcCfg(),
		SyncConfig:     NewSyncConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		CronConfig:     NewCronConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
