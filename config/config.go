package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `env:"ENV"`
	LogLevel          string        `env:"LOG_LEVEL"`
	FilesStorageDir   string        `env:"FILES_STORAGE_DIR"`
	BooksPerPage      int           `env:"BOOKS_PER_PAGE"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"24h"`
	BooksCacheTTL     time.Duration `env:"BOOKS_CACHE_TTL" envDefault:"30m"`
	BlobCacheTTL      time.Duration `env:"BLOB_CACHE_TTL" envDefault:"1h"`
	Platform          Platform
	Telegram          Telegram
	Postgres          Postgres
	Redis             Redis
	Mail              Mail
	Jobs              Jobs
}

type Platform struct {
	BaseUrl                string `env:"PLATFORM_BASE_URL"`
	FixGrammarPath         string `env:"PLATFORM_FIX_GRAMMAR_PATH" envDefault:"/api/ai/fix-grammar"`
	ImproveDescriptionPath string `env:"PLATFORM_IMPROVE_DESCRIPTION_PATH" envDefault:"/api/ai/improve-description"`
}

type Telegram struct {
	Token      string        `env:"TELEGRAM_TOKEN"`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

type Postgres struct {
	Host            string `env:"PG_HOST"`
	Port            int    `env:"PG_PORT"`
	DbName          string `env:"PG_DB_NAME"`
	Password        string `env:"PG_PASSWORD"`
	User            string `env:"PG_USER"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type Mail struct {
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT"`
	Address  string `env:"MAIL_ADDRESS"`
	Password string `env:"MAIL_PASSWORD"`
}

type Jobs struct {
	BlobCleanupInterval time.Duration `env:"JOBS_BLOB_CLEANUP_INTERVAL" envDefault:"30m"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
