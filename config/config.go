package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingCredentials is returned when neither a Drive API key nor a
// service-account credentials file is configured.
var ErrMissingCredentials = errors.New("missing GOOGLE_DRIVE_API_KEY or GOOGLE_APPLICATION_CREDENTIALS")

// ErrMissingRootFolder is returned when the root property folder is not
// configured.
var ErrMissingRootFolder = errors.New("missing GOOGLE_DRIVE_FOLDER_ID")

// Config holds all application configuration loaded from environment
// variables and the optional agency.yaml profile.
type Config struct {
	// Drive access: either an API key (public folders) or a Service
	// Account credentials file. The credentials file wins if both are set.
	DriveAPIKey     string
	CredentialsFile string

	// RootFolderID is the Drive folder whose child folders are listings.
	RootFolderID string

	CacheTTL        time.Duration
	MaxConcurrency  int
	RefreshCron     string
	RefreshInterval time.Duration

	Port   string
	Agency Agency
}

// Agency is the contact profile shown to visitors, loaded from
// agency.yaml with env overrides.
type Agency struct {
	Name     string `yaml:"name"`
	WhatsApp string `yaml:"whatsapp"`
	Email    string `yaml:"email"`
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DriveAPIKey:     os.Getenv("GOOGLE_DRIVE_API_KEY"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		RootFolderID:    os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),

		CacheTTL:        getEnvDuration("CACHE_TTL", 5*time.Minute),
		MaxConcurrency:  getEnvInt("MAX_CONCURRENCY", 5),
		RefreshCron:     os.Getenv("REFRESH_CRON"),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 5*time.Minute),

		Port: getEnv("PORT", "8080"),
	}

	cfg.loadAgencyProfile()

	if phone := os.Getenv("WHATSAPP_PHONE"); phone != "" {
		cfg.Agency.WhatsApp = phone
	}

	return cfg
}

// Validate checks the configuration required before any Drive call can
// be made. A validation failure is fatal for the whole service.
func (c *Config) Validate() error {
	if c.DriveAPIKey == "" && c.CredentialsFile == "" {
		return ErrMissingCredentials
	}
	if c.RootFolderID == "" {
		return ErrMissingRootFolder
	}
	return nil
}

// loadAgencyProfile reads the optional agency.yaml next to the binary.
// A missing file is fine; defaults stay empty.
func (c *Config) loadAgencyProfile() {
	data, err := os.ReadFile("agency.yaml")
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, &c.Agency)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
