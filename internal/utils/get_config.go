package utils

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort   string `yaml:"APP_PORT"`
	AppURL    string `yaml:"APP_URL"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`
	LogFile   string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// Identity
	AuthMode         string `yaml:"AUTH_MODE"`
	DefaultUserID    string `yaml:"DEFAULT_USER_ID"`
	JWTSecret        string `yaml:"JWT_SECRET"`
	SeedUserPassword string `yaml:"SEED_USER_PASSWORD"`

	// Recipe resolution
	SearchRadiusKM string `yaml:"SEARCH_RADIUS_KM"`
	CacheTTL       string `yaml:"CACHE_TTL"`

	// Recipe generator
	GeneratorProvider string `yaml:"GENERATOR_PROVIDER"`
	GeneratorAPIKey   string `yaml:"GENERATOR_API_KEY"`
	GeneratorModel    string `yaml:"GENERATOR_MODEL"`
	GeneratorURL      string `yaml:"GENERATOR_URL"`
	GeneratorTimeout  string `yaml:"GENERATOR_TIMEOUT"`
	GeneratorRPS      string `yaml:"GENERATOR_RPS"`
	PersistGenerated  string `yaml:"PERSIST_GENERATED"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
	AWSEndpoint  string `yaml:"AWS_S3_ENDPOINT"`
}

var (
	config     Config
	configOnce sync.Once
)

// LoadConfig reads .env and config.yaml once. Environment variables take
// precedence over values from the yaml file.
func LoadConfig() {
	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Error reading .env file: %s\n", err)
		}

		file, err := os.ReadFile("config.yaml")
		if err != nil {
			log.Printf("Error reading YAML file: %s\n", err)
			return
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	})
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"LOG_LEVEL":          &c.LogLevel,
		"LOG_FORMAT":         &c.LogFormat,
		"LOG_FILE":           &c.LogFile,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_TIMEZONE":        &c.DBTimeZone,
		"AUTH_MODE":          &c.AuthMode,
		"DEFAULT_USER_ID":    &c.DefaultUserID,
		"JWT_SECRET":         &c.JWTSecret,
		"SEED_USER_PASSWORD": &c.SeedUserPassword,
		"SEARCH_RADIUS_KM":   &c.SearchRadiusKM,
		"CACHE_TTL":          &c.CacheTTL,
		"GENERATOR_PROVIDER": &c.GeneratorProvider,
		"GENERATOR_API_KEY":  &c.GeneratorAPIKey,
		"GENERATOR_MODEL":    &c.GeneratorModel,
		"GENERATOR_URL":      &c.GeneratorURL,
		"GENERATOR_TIMEOUT":  &c.GeneratorTimeout,
		"GENERATOR_RPS":      &c.GeneratorRPS,
		"PERSIST_GENERATED":  &c.PersistGenerated,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"AWS_S3_ENDPOINT":    &c.AWSEndpoint,
	}
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}

func GetConfigDefault(key, fallback string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return fallback
}

func GetConfigFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(GetConfig(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func GetConfigBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(GetConfig(key))
	if err != nil {
		return fallback
	}
	return v
}

func GetConfigDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(GetConfig(key))
	if err != nil {
		return fallback
	}
	return v
}
