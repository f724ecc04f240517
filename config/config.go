// file: config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// C 전역 설정. main 에서 Load 로 한 번만 초기화한다.
var C *Config

type Config struct {
	Port        string
	DatabaseDSN string
	CORSOrigins []string

	// TZOffsetHours 서버 기준 시간대의 UTC 오프셋(시간 단위).
	// 키오스크가 한국에서 운영되므로 기본값은 +9 (KST).
	TZOffsetHours int

	// EventQueueSize 구독자 1명당 이벤트 큐 크기.
	// 큐가 가득 찬 구독자는 해당 이벤트를 받지 못한다.
	EventQueueSize int

	StaticDir string
}

// Load 환경변수에서 설정을 읽는다. .env 파일은 있으면 사용, 없으면 무시.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	C = &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(localhost:3306)/hellopy_game?charset=utf8mb4&parseTime=True"),
		CORSOrigins:    splitOrigins(getEnv("CORS_ORIGINS", "*")),
		TZOffsetHours:  getEnvInt("TZ_OFFSET_HOURS", 9),
		EventQueueSize: getEnvInt("EVENT_QUEUE_SIZE", 16),
		StaticDir:      getEnv("STATIC_DIR", ""),
	}
	return C
}

// Location 서버 기준 시간대. 행사장 전시용이라 지역 규칙(서머타임 등) 없이
// 고정 오프셋만 사용한다.
func (c *Config) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.TZOffsetHours), c.TZOffsetHours*3600)
}

// Now 서버 기준 시간대의 현재 시각
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
