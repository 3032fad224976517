package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	CronSpec string
}

// Load reads config/config.env (or the per-user config) when present, then
// the environment. Variables already set in the environment win.
func Load() *Config {
	for _, p := range []string{
		"config/config.env",
		filepath.Join(os.Getenv("HOME"), ".config", "arinja", "config.env"),
	} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				log.Printf("warn: load %s: %v", p, err)
			}
			break
		}
	}

	return &Config{
		AppPort:     getEnv("APP_PORT", "9000"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=arinja password=arinja dbname=arinja port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CronSpec:    getEnv("CRON_SPEC", "0 */6 * * *"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// IST is the tool's display timezone; published dates are bucketed in it too.
var IST *time.Location

func init() {
	IST, _ = time.LoadLocation("Asia/Kolkata")
	if IST == nil {
		IST = time.FixedZone("IST", 5*3600+30*60)
	}
}

// NowIST returns the current time in IST.
func NowIST() time.Time {
	return time.Now().In(IST)
}
