package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

var ErrUnknownSessionBackend = errors.New("unknown session backend")

// Session store backends
const (
	SessionBackendPostgres = "postgres"
	SessionBackendBBolt    = "bbolt"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	CallFlow CallFlowConfig
	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
	VoiceIt  VoiceItConfig
	Twilio   TwilioConfig
	Server   ServerConfig
}

// AppConfig holds the public identity of the service
type AppConfig struct {
	// Name is the base path of the status and webhook endpoints
	Name string
	// CallbackPhoneNumber is the dispatcher number calls are transferred back to
	CallbackPhoneNumber string
}

// CallFlowConfig holds the spoken prompt settings
type CallFlowConfig struct {
	Phrase            string
	ContentLanguage   string
	SayVoice          string
	RecordMaxLength   int
	VerifiedFreshness time.Duration
	ReplayTTL         time.Duration
}

// SessionConfig selects where caller sessions live
type SessionConfig struct {
	Backend   string
	BBoltPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds the replay cache connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// VoiceItConfig holds the biometrics provider credentials
type VoiceItConfig struct {
	APIKey   string
	APIToken string
	BaseURL  string
}

// TwilioConfig holds webhook signature validation settings
type TwilioConfig struct {
	AuthToken     string
	PublicBaseURL string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               int
	CORSAllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return fromEnv()
}

// LoadSessionOnly reads just the settings needed to open the session store.
// Used by the operator tooling, which never talks to Twilio or VoiceIt.
func LoadSessionOnly() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// the file is optional for tooling
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}
	if err := loadSession(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	var err error

	// App configuration
	cfg.App.Name = strings.Trim(getEnvWithDefault("APP_NAME", "twilioserver"), "/")
	if cfg.App.CallbackPhoneNumber, err = requireEnv("CALLBACK_PHONE_NUMBER"); err != nil {
		return nil, err
	}

	// Call flow configuration
	if cfg.CallFlow.Phrase, err = requireEnv("PHRASE"); err != nil {
		return nil, err
	}
	cfg.CallFlow.ContentLanguage = getEnvWithDefault("CONTENT_LANGUAGE", "en-US")
	cfg.CallFlow.SayVoice = getEnvWithDefault("SAY_VOICE", "alice")
	if cfg.CallFlow.RecordMaxLength, err = getIntWithDefault("RECORD_MAX_LENGTH", 5); err != nil {
		return nil, err
	}
	freshness, err := getIntWithDefault("VERIFIED_FRESHNESS_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cfg.CallFlow.VerifiedFreshness = time.Duration(freshness) * time.Second
	replayTTL, err := getIntWithDefault("REPLAY_TTL_SECONDS", 600)
	if err != nil {
		return nil, err
	}
	cfg.CallFlow.ReplayTTL = time.Duration(replayTTL) * time.Second

	// Session store configuration
	if err := loadSession(cfg); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// VoiceIt configuration
	if cfg.VoiceIt.APIKey, err = requireEnv("VIAPIKEY"); err != nil {
		return nil, err
	}
	if cfg.VoiceIt.APIToken, err = requireEnv("VIAPITOKEN"); err != nil {
		return nil, err
	}
	cfg.VoiceIt.BaseURL = getEnvWithDefault("VOICEIT_BASE_URL", "https://api.voiceit.io")

	// Twilio configuration
	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Twilio.PublicBaseURL = strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func loadSession(cfg *Config) error {
	var err error

	cfg.Session.Backend = getEnvWithDefault("SESSION_BACKEND", SessionBackendPostgres)
	switch cfg.Session.Backend {
	case SessionBackendPostgres:
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return err
		}
	case SessionBackendBBolt:
		cfg.Session.BBoltPath = getEnvWithDefault("BBOLT_PATH", "sessions.db")
	default:
		return fmt.Errorf("SESSION_BACKEND=%q: %w", cfg.Session.Backend, ErrUnknownSessionBackend)
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
