package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Webhook    WebhookConfig
	Sheets     SheetsConfig
	S3         S3Config
	Redis      RedisConfig
	Validation ValidationConfig
	Upload     UploadConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// WebhookConfig holds the outbound workflow-automation endpoint settings.
// URL is required; submissions fail immediately without it.
type WebhookConfig struct {
	URL       string
	Token     string
	SourceTag string
	Timeout   time.Duration
}

// SheetsConfig points at the spreadsheet range that backs the store list.
// When XLSXPath is set the local file takes precedence over the API.
type SheetsConfig struct {
	SheetID   string
	SheetName string
	APIKey    string
	BaseURL   string
	XLSXPath  string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StoreValidationMode controls whether an unknown store name blocks a
// submission (strict), is only logged (advisory), or ignored (off).
type StoreValidationMode string

const (
	StoreValidationOff      StoreValidationMode = "off"
	StoreValidationAdvisory StoreValidationMode = "advisory"
	StoreValidationStrict   StoreValidationMode = "strict"
)

type ValidationConfig struct {
	StoreMode       StoreValidationMode
	StoreFailClosed bool
	MinBusinessDays int
	StoreCacheTTL   time.Duration
}

type UploadConfig struct {
	FailClosed  bool
	MaxFiles    int
	MaxFileSize int64
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Webhook: WebhookConfig{
			URL:       getEnv("N8N_WEBHOOK_URL", ""),
			Token:     getEnv("N8N_WEBHOOK_TOKEN", ""),
			SourceTag: getEnv("WEBHOOK_SOURCE_TAG", "portal-contestacoes-api"),
			Timeout:   parseDuration(getEnv("WEBHOOK_TIMEOUT", "30s"), 30*time.Second),
		},
		Sheets: SheetsConfig{
			SheetID:   getEnv("GOOGLE_SHEET_ID", ""),
			SheetName: getEnv("GOOGLE_SHEET_NAME", "Lojas"),
			APIKey:    getEnv("GOOGLE_API_KEY", ""),
			BaseURL:   getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4/spreadsheets"),
			XLSXPath:  getEnv("STORES_XLSX_PATH", ""),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "sa-east-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Validation: ValidationConfig{
			StoreMode:       parseStoreMode(getEnv("STORE_VALIDATION_MODE", "strict")),
			StoreFailClosed: parseBool(getEnv("STORE_VALIDATION_FAIL_CLOSED", "false")),
			MinBusinessDays: parseInt(getEnv("MIN_BUSINESS_DAYS", "3"), 3),
			StoreCacheTTL:   parseDuration(getEnv("STORE_CACHE_TTL", "1h"), time.Hour),
		},
		Upload: UploadConfig{
			FailClosed:  parseBool(getEnv("UPLOAD_FAIL_CLOSED", "false")),
			MaxFiles:    parseInt(getEnv("UPLOAD_MAX_FILES", "5"), 5),
			MaxFileSize: parseInt64(getEnv("UPLOAD_MAX_FILE_SIZE", "10485760"), 10<<20),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseInt64(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func parseStoreMode(s string) StoreValidationMode {
	switch StoreValidationMode(s) {
	case StoreValidationOff, StoreValidationAdvisory, StoreValidationStrict:
		return StoreValidationMode(s)
	default:
		log.Printf("Invalid store validation mode %s, using strict", s)
		return StoreValidationStrict
	}
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
