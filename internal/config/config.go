package config

import (
	"errors"
	"os"
	"time"
)

const defaultTokenLifetime = 24 * time.Hour

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort      string
	JWTSecret     string
	TokenLifetime time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		TokenLifetime:    defaultTokenLifetime,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envTokenLifetime := os.Getenv("TOKEN_LIFETIME")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envJWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET must be set")
	}
	env.JWTSecret = envJWTSecret

	if len(envTokenLifetime) != 0 {
		lifetime, err := time.ParseDuration(envTokenLifetime)
		if err != nil {
			return nil, errors.New("TOKEN_LIFETIME is not a valid duration: " + envTokenLifetime)
		}
		env.TokenLifetime = lifetime
	}

	return &env, nil
}

// DatabaseURL builds the Postgres connection string for the lib/pq driver.
func (c *Config) DatabaseURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
