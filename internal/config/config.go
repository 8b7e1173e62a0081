package config

import (
	"os"
	"strconv"
)

const (
	defaultPort          = "8080"
	defaultMaxInputBytes = 32 << 20
)

type Config struct {
	Port        string
	DatabaseURL string // 비어 있으면 in-memory repo
	GinMode     string

	// 한 번에 메모리에 올리는 입력 크기 상한
	MaxInputBytes int64
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", defaultPort),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GinMode:       getenv("GIN_MODE", "release"),
		MaxInputBytes: getenvInt("MAX_INPUT_BYTES", defaultMaxInputBytes),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
