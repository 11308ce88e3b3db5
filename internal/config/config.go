package config

import (
	"github.com/caarlos0/env/v8"
)

// Config holds all environment-driven settings. Defaults match the
// docker compose setup so a bare `go run .` works against it.
type Config struct {
	HTTPPort         string `env:"HTTP_PORT" envDefault:"9446"`
	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`
	JWTSecret        string `env:"JWT_SECRET" envDefault:"local-dev-secret-do-not-use-in-prod"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PostgresURL builds the connection string shared by the server and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
