package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds settings for the signature image bucket.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds dispatch notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	NotifyTo    string `mapstructure:"notify_to"`
}

// CatalogConfig holds the local category-config store settings.
type CatalogConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the TABLERO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "tablero")
	v.SetDefault("db.password", "tablero_secret")
	v.SetDefault("db.name", "tablero_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "tablero")

	// S3 defaults
	v.SetDefault("s3.region", "sa-east-1")
	v.SetDefault("s3.bucket", "tablero-firmas")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "sa-east-1")
	v.SetDefault("email.from_address", "avisos@tablero.local")
	v.SetDefault("email.from_name", "Tablero")
	v.SetDefault("email.notify_to", "")

	// Catalog defaults
	v.SetDefault("catalog.dir", ".")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "TABLERO_SERVER_PORT",
		"server.read_timeout":   "TABLERO_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "TABLERO_SERVER_WRITE_TIMEOUT",
		"server.environment":    "TABLERO_SERVER_ENVIRONMENT",
		"db.host":               "TABLERO_DB_HOST",
		"db.port":               "TABLERO_DB_PORT",
		"db.user":               "TABLERO_DB_USER",
		"db.password":           "TABLERO_DB_PASSWORD",
		"db.name":               "TABLERO_DB_NAME",
		"db.sslmode":            "TABLERO_DB_SSLMODE",
		"db.max_open":           "TABLERO_DB_MAX_OPEN",
		"db.max_idle":           "TABLERO_DB_MAX_IDLE",
		"jwt.secret":            "TABLERO_JWT_SECRET",
		"jwt.access_expiry":     "TABLERO_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "TABLERO_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "TABLERO_JWT_ISSUER",
		"s3.region":             "TABLERO_S3_REGION",
		"s3.bucket":             "TABLERO_S3_BUCKET",
		"s3.endpoint":           "TABLERO_S3_ENDPOINT",
		"s3.access_key":         "TABLERO_S3_ACCESS_KEY",
		"s3.secret_key":         "TABLERO_S3_SECRET_KEY",
		"log.level":             "TABLERO_LOG_LEVEL",
		"log.format":            "TABLERO_LOG_FORMAT",
		"cors.allowed_origins":  "TABLERO_CORS_ALLOWED_ORIGINS",
		"email.provider":        "TABLERO_EMAIL_PROVIDER",
		"email.region":          "TABLERO_EMAIL_REGION",
		"email.from_address":    "TABLERO_EMAIL_FROM_ADDRESS",
		"email.from_name":       "TABLERO_EMAIL_FROM_NAME",
		"email.notify_to":       "TABLERO_EMAIL_NOTIFY_TO",
		"catalog.dir":           "TABLERO_CATALOG_DIR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TABLERO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TABLERO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		NotifyTo:    v.GetString("email.notify_to"),
	}
	cfg.Catalog = CatalogConfig{
		Dir: v.GetString("catalog.dir"),
	}

	return cfg, nil
}
