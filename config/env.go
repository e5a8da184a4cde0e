package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL     = "http://localhost:3000/api"
	defaultAppName        = "labelsight"
	defaultAppEnv         = "local"
	defaultTimeoutSeconds = 60
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json, the .env file and process environment variables,
// in that order of increasing precedence. It is safe to call from anywhere;
// the files are only read once.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

// APIBaseURL returns the base URL of the label-inspection backend.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

func AppName() string {
	_ = Load()
	return get("APP_NAME", defaultAppName)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// HTTPTimeout is the per-request timeout for backend calls.
func HTTPTimeout() time.Duration {
	_ = Load()
	raw := get("HTTP_TIMEOUT_SECONDS", "")
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaultTimeoutSeconds * time.Second
}

// CredentialsFile is where the bearer tokens and the current-user snapshot
// are persisted between runs.
func CredentialsFile() string {
	_ = Load()
	if path := get("CREDENTIALS_FILE", ""); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".labelsight", "credentials.json")
}

// Set overrides a config value at runtime. Intended for tests.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(key)] = value
	mu.Unlock()
}

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL":         defaultAPIBaseURL,
		"APP_NAME":             defaultAppName,
		"APP_ENV":              defaultAppEnv,
		"HTTP_TIMEOUT_SECONDS": "",
		"CREDENTIALS_FILE":     "",
	}
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		return err
	}

	// Process environment wins over both files.
	for key := range loaded {
		if v, ok := os.LookupEnv(key); ok {
			loaded[key] = v
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	for key, val := range env {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = val
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if v, ok := values[key]; ok && v != "" {
		return v
	}
	return fallback
}
