package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // "auto" (default) or "drop"
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration

	// Server
	ServerPort         string
	CORSAllowedOrigins []string

	// Redis page snapshot store
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	SnapshotTTL   time.Duration

	// Session tokens
	JWTSecretKey string
	JWTExpiry    time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool

	// Object store for tour images
	S3Bucket           string
	S3Region           string
	S3Endpoint         string // optional, for S3-compatible providers
	AssetNamespace     string
	AssetPublicBaseURL string
	UploadMaxBytes     int64

	// Outbound email
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	NotifyEmail  string

	// Admin bootstrap
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	cfg := &Config{
		EnvType: strings.ToUpper(envType),

		DBHost:          getEnvRequired(prefix + "DB_HOST"),
		DBUser:          getEnvRequired(prefix + "DB_USER"),
		DBPassword:      getEnvRequired(prefix + "DB_PASSWORD"),
		DBName:          getEnvRequired(prefix + "DB_NAME"),
		DBPort:          getEnv(prefix+"DB_PORT", "3306"),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", "auto"),
		DBMaxOpenConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  time.Duration(getEnvAsInt("DB_CONN_LIFETIME_MINUTES", 60)) * time.Minute,

		ServerPort:         getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:     getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort:     getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		SnapshotTTL:   time.Duration(getEnvAsInt("SNAPSHOT_TTL_SECONDS", 300)) * time.Second,

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "tumaini-secret-key-change-in-production"),
		JWTExpiry:    time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		CookieName:   getEnv("SESSION_COOKIE_NAME", "admin_token"),
		CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
		CookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", strings.ToUpper(envType) == "SERVER"),

		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Region:           getEnv("S3_REGION", "af-south-1"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		AssetNamespace:     getEnv("ASSET_NAMESPACE", "tumaini-tours"),
		AssetPublicBaseURL: strings.TrimRight(getEnv("ASSET_PUBLIC_BASE_URL", ""), "/"),
		UploadMaxBytes:     int64(getEnvAsInt("UPLOAD_MAX_BYTES", 10<<20)),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@tumaini.example"),
		NotifyEmail:  getEnv("NOTIFY_EMAIL", ""),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
	}

	if cfg.AssetPublicBaseURL == "" && cfg.S3Bucket != "" {
		cfg.AssetPublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return cfg
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=UTC"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsLocal reports whether the service runs in the LOCAL environment.
func (c *Config) IsLocal() bool {
	return c.EnvType == "LOCAL"
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
