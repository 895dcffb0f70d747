package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings of one service.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	ProductsAPIURL string
	ProductTimeout time.Duration
	OTLPEndpoint   string
	AllowOrigins   []string
}

// Load reads the service configuration from a .env file (when present) and
// the process environment, falling back to the given default port.
func Load(defaultPort string) *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	timeout, err := time.ParseDuration(getenv("PRODUCT_CLIENT_TIMEOUT", "5s"))
	if err != nil {
		log.Printf("invalid PRODUCT_CLIENT_TIMEOUT, using 5s: %v", err)
		timeout = 5 * time.Second
	}

	return &Config{
		Port:           getenv("PORT", defaultPort),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "salesdb"),
		ProductsAPIURL: getenv("PRODUCTS_API_URL", "http://localhost:5001"),
		ProductTimeout: timeout,
		OTLPEndpoint:   os.Getenv("OTLP_ENDPOINT"),
		AllowOrigins:   strings.Split(getenv("ALLOW_ORIGINS", "*"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
