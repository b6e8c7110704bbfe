package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Trace   TraceConfig
	Stub    StubConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
}

// APIConfig controls how the client reaches the backend. Host is the value
// inspected to pick between the local and the remote base URL.
type APIConfig struct {
	Host          string
	LocalBaseURL  string
	RemoteBaseURL string
	Timeout       time.Duration // 0 = no timeout
}

type StorageConfig struct {
	Driver      string // "file", "redis" or "memory"
	FilePath    string
	RedisURL    string
	RedisPrefix string
}

type TraceConfig struct {
	Enabled  bool
	Endpoint string
}

// StubConfig drives cmd/stubserver. The two flags stand in for a reachable
// Ollama daemon and a configured cloud key.
type StubConfig struct {
	Port               string
	CorsAllowedOrigins string
	OllamaAvailable    bool
	CloudConfigured    bool
}

const (
	DefaultLocalBaseURL  = "http://127.0.0.1:5000/api"
	DefaultRemoteBaseURL = "https://study-wise-production-eaa1.up.railway.app/api"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", filepath.Join(defaultStateDir(), "logs", "studywise.log")),
		},
		API: APIConfig{
			Host:          getEnv("STUDYWISE_HOST", "localhost"),
			LocalBaseURL:  getEnv("STUDYWISE_LOCAL_URL", DefaultLocalBaseURL),
			RemoteBaseURL: getEnv("STUDYWISE_REMOTE_URL", DefaultRemoteBaseURL),
			Timeout:       getEnvAsDuration("STUDYWISE_HTTP_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "file"),
			FilePath:    getEnv("STORAGE_FILE", filepath.Join(defaultStateDir(), "storage.json")),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			RedisPrefix: getEnv("STORAGE_REDIS_PREFIX", "studywise:"),
		},
		Trace: TraceConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Stub: StubConfig{
			Port:               getEnv("STUB_PORT", "5000"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5500, http://127.0.0.1:5500"),
			OllamaAvailable:    getEnvAsBool("STUB_OLLAMA_AVAILABLE", false),
			CloudConfigured:    getEnvAsBool("STUB_CLOUD_CONFIGURED", false),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studywise"
	}
	return filepath.Join(home, ".studywise")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("30s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
