package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage
	Postgres
	HTTPServer
	Log
}

type Storage struct {
	// memory or postgres
	Backend string `env:"STORAGE_BACKEND" env-default:"postgres"`
}

type Postgres struct {
	User       string        `env:"POSTGRES_USER" env-default:"postgres"`
	Pass       string        `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Host       string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port       string        `env:"POSTGRES_PORT" env-default:"5432"`
	DB         string        `env:"POSTGRES_DB" env-default:"boards"`
	Timeout    time.Duration `env:"POSTGRES_TIMEOUT" env-default:"5s"`
	Migrations string        `env:"POSTGRES_MIGRATIONS" env-default:"./migrations"`
}

type HTTPServer struct {
	BindAddress     string        `env:"BIND_ADDRESS" env-default:"localhost"`
	BindPort        string        `env:"BIND_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"5s"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// New loads env (an optional dotenv file, missing is fine) and reads the
// configuration from the environment.
func New(env string) (*Config, error) {
	conf := &Config{}

	if _, err := os.Stat(env); err == nil {
		if err := godotenv.Overload(env); err != nil {
			return nil, fmt.Errorf("godotenv.Overload: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	return conf, nil
}
