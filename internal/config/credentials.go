package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"teetimealerts/internal/logger"
)

// Credentials holds the account login read from the process environment.
// They are used once per run to obtain a bearer token and are never
// written to disk by this program.
type Credentials struct {
	Email    string
	Password string
}

// LoadCredentials reads EMAIL and PASSWORD from the environment, first
// loading a local .env file if one exists so the credentials can live in an
// untracked dotfile. A missing .env file is not an error; missing EMAIL or
// PASSWORD is, and is reported before any network call is made.
func LoadCredentials() (Credentials, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("[DEBUG] No .env file loaded: %v\n", err)
	}

	creds := Credentials{
		Email:    os.Getenv("EMAIL"),
		Password: os.Getenv("PASSWORD"),
	}

	if creds.Email == "" || creds.Password == "" {
		return Credentials{}, fmt.Errorf(
			"EMAIL and PASSWORD must be set in the environment or a .env file:\n" +
				"  EMAIL=your_email@example.com\n" +
				"  PASSWORD=your_password")
	}

	return creds, nil
}
