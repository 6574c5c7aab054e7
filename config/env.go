package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config groups every setting the service reads at startup
type Config struct {
	Scorer ScorerSettings
	Server ServerSettings
}

// Load reads an optional .env file (or the given files) and then the environment.
// Missing or malformed variables fall back to defaults.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	cfg := &Config{
		Scorer: ScorerSettings{
			MaxPDFBytes:           getEnvAsInt64("MAX_PDF_BYTES", DefaultMaxPDFBytes),
			MaxTextChars:          getEnvAsInt("MAX_TEXT_CHARS", DefaultMaxTextChars),
			MinTermLength:         getEnvAsInt("MIN_TERM_LENGTH", DefaultMinTermLength),
			MissingKeywordsLimit:  getEnvAsInt("MISSING_KEYWORDS_LIMIT", DefaultMissingKeywordsLimit),
			MatchingKeywordsLimit: getEnvAsInt("MATCHING_KEYWORDS_LIMIT", DefaultMatchingKeywordsLimit),
			Stopwords:             getEnvAsList("STOPWORDS"),
		},
		Server: ServerSettings{
			Port:            getEnv("PORT", "8080"),
			GinMode:         getEnv("GIN_MODE", "release"),
			MaxRequestBytes: getEnvAsInt64("MAX_REQUEST_BYTES", 0),
		},
	}

	cfg.Scorer.ApplyDefaults()
	cfg.Server.ApplyDefaults(cfg.Scorer)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			values = append(values, part)
		}
	}
	return values
}
