package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env             string        `yaml:"env" env:"APP_ENV" env-default:"local"`
	AccessTokenTTL  time.Duration `yaml:"access_ttl" env:"ACCESS_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_ttl" env:"REFRESH_TTL" env-default:"168h"`
	Secret          string        `yaml:"secret" env:"JWT_SECRET"`
	HTTP            HTTPConfig    `yaml:"http"`
	DB              DBConfig      `yaml:"postgres"`
	SMTP            SMTPConfig    `yaml:"smtp"`
	FrontendURL     string        `yaml:"frontend_url" env:"FRONTEND_URL"`
	RedisAddress    string        `yaml:"redis_addr" env:"REDIS_ADDR"`
}

type HTTPConfig struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"DB_NAME"`
	Sslmode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

func Load(path string) *Config {
	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
