package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Env keys the service reads at startup.
const (
	KeyDBAddress  = "POSTGRES_DB_ADDRESS"
	KeyDBUser     = "POSTGRES_USER"
	KeyDBPassword = "POSTGRES_PASSWORD"
	KeyDBName     = "POSTGRES_DB"
	KeyJWTSecret  = "JWT_SECRET"
	KeyAPIAddress = "API_ADDRESS"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// MustString is for keys the service cannot run without.
func (c *Config) MustString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal("required env " + key + " is not set")
	}
	return value
}
