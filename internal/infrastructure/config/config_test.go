package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setLocalDB(t *testing.T) {
	t.Setenv("LOCAL_DB_HOST", "localhost")
	t.Setenv("LOCAL_DB_USER", "tumaini")
	t.Setenv("LOCAL_DB_PASSWORD", "secret")
	t.Setenv("LOCAL_DB_NAME", "tumaini")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	setLocalDB(t)
	t.Setenv("S3_BUCKET", "tumaini-assets")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://tumaini.example, ,http://localhost:3000")

	cfg := LoadConfig()

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "auto", cfg.DBMigrationMode)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DBConnLifetime)
	assert.Equal(t, "admin_token", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://tumaini.example", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://tumaini-assets.s3.eu-west-1.amazonaws.com", cfg.AssetPublicBaseURL)
}

func TestLoadConfig_MySQLRequiresCredentials(t *testing.T) {
	t.Setenv("ENV_TYPE", "SERVER")
	t.Setenv("SERVER_DB_HOST", "")

	assert.Panics(t, func() { LoadConfig() })
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DBUser: "tumaini", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "tours"}

	assert.Equal(t, "tumaini:pw@tcp(db:3306)/tours?charset=utf8mb4&parseTime=True&loc=UTC", cfg.GetDSN())
}
