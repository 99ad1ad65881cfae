package config

import (
	"os"
	"strconv"
	"time"
)

type HTTPConfig struct {
	Port int
}

func NewHTTPConfig() *HTTPConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil || port <= 0 {
		port = 8082
	}
	return &HTTPConfig{Port: port}
}

type ScheduleSvcCfg struct {
	StatusUpdateInterval time.Duration
	ResyncInterval       time.Duration
}

func NewScheduleSvcCfg() *ScheduleSvcCfg {
	statusUpdateIntervalSec := os.Getenv("STATUS_UPDATE_INTERVAL_SEC")
	resyncIntervalSec := os.Getenv("RESYNC_INTERVAL_SEC")
	varInt, err := strconv.Atoi(statusUpdateIntervalSec)
	if err != nil || varInt <= 0 {
		varInt = 60
	}
	// 0 disables the periodic resync
	varInt2, err := strconv.Atoi(resyncIntervalSec)
	if err != nil || varInt2 < 0 {
		varInt2 = 0
	}
	return &ScheduleSvcCfg{
		StatusUpdateInterval: time.Duration(varInt) * time.Second,
		ResyncInterval:       time.Duration(varInt2) * time.Second,
	}
}

type SyncConfig struct {
	// Concurrency bounds how many competitions a batch sync processes at once
	Concurrency int
	CacheTTL    time.Duration
}

func NewSyncConfig() *SyncConfig {
	concurrency, err := strconv.Atoi(os.Getenv("SYNC_CONCURRENCY"))
	if err != nil || concurrency < 1 {
		concurrency = 1
	}
	ttlSec, err := strconv.Atoi(os.Getenv("ACHIEVEMENT_CACHE_TTL_SEC"))
	if err != nil || ttlSec <= 0 {
		ttlSec = 300
	}
	return &SyncConfig{
		Concurrency: concurrency,
		CacheTTL:    time.Duration(ttlSec) * time.Second,
	}
}
