package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_merge/internal/adapters/jsonfile"
	"hotel_merge/internal/suppliers"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	MySQLDSN        string // empty disables the catalog sink
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	SupplierBaseURL string
	OutputPath      string
	FetchWorkers    int
	FetchTimeout    time.Duration
	FetchRPS        int
	CacheTTL        time.Duration
}

// Load reads the environment, after merging a .env file when one exists.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer setting")
		}
		return def
	}
	return Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		MySQLDSN:        env("MYSQL_DSN", ""),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		SupplierBaseURL: env("SUPPLIER_BASE_URL", suppliers.DefaultBaseURL),
		OutputPath:      env("OUTPUT_PATH", jsonfile.DefaultPath),
		FetchWorkers:    atoi("FETCH_WORKERS", 3),
		FetchTimeout:    time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		FetchRPS:        atoi("FETCH_RPS", 5),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
