package config

import (
	"fmt"  // Error wrapping
	"time" // Durations for OTP and cookies

	"github.com/caarlos0/env/v11" // Typed environment parsing
	"github.com/joho/godotenv"    // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string `env:"APP_PORT" envDefault:"4000"`       // Application port
	IsProd    bool   `env:"IS_PROD" envDefault:"false"`       // Is production environment
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`      // Logrus level name
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`     // JWT signing key, never hardcoded
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`  // Directory for event images

	DB     Database `envPrefix:"DB_"`     // MySQL settings
	Redis  Redis    `envPrefix:"REDIS_"`  // Redis settings
	SMTP   SMTP     `envPrefix:"SMTP_"`   // Mail settings
	OTP    OTP      `envPrefix:"OTP_"`    // One-time password settings
	Cookie Cookie   `envPrefix:"COOKIE_"` // Session cookie settings

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,https://event-management-website-frontend.vercel.app"`
}

// Database holds MySQL connection parameters
type Database struct {
	User     string `env:"USER" envDefault:"root"`      // Database user
	Password string `env:"PASSWORD"`                    // Database password
	Host     string `env:"HOST" envDefault:"127.0.0.1"` // Database host
	Port     string `env:"PORT" envDefault:"3306"`      // Database port
	Name     string `env:"NAME" envDefault:"events"`    // Database name
}

// DSN builds the Data Source Name for the MySQL driver
func (d Database) DSN() string {
	return d.User + ":" + d.Password + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Name + "?charset=utf8mb4&parseTime=true"
}

// Redis holds Redis connection parameters
type Redis struct {
	Addr string `env:"ADDR" envDefault:"127.0.0.1:6379"` // Redis server address
	Pass string `env:"PASS"`                             // Redis password
	DB   int    `env:"DB" envDefault:"0"`                // Redis database number
}

// SMTP holds the outgoing mail credentials
type SMTP struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port int    `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM"` // Defaults to User when empty
}

// OTP holds one-time password settings
type OTP struct {
	TTL            time.Duration `env:"TTL" envDefault:"10m"`            // Lifetime of an issued code
	ResendCooldown time.Duration `env:"RESEND_COOLDOWN" envDefault:"1m"` // Minimum gap between sends per email, 0 disables
}

// Cookie holds session cookie settings
type Cookie struct {
	Secure   bool          `env:"SECURE" envDefault:"true"` // Required for SameSite=None over https
	Domain   string        `env:"DOMAIN"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"` // Lifetime of issued session tokens
}

// LoadConfig loads configuration from a .env file and environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User // Send from the authenticated account
	}
	return cfg, nil
}
