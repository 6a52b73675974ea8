// Package config provides YAML-based configuration management for the document Q&A server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the root YAML configuration structure
type AppConfig struct {
	// Server configuration
	Server ServerConfig `yaml:"server"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Completion API configuration
	Completion CompletionConfig `yaml:"completion"`

	// Logging options
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port              int    `yaml:"port"`
	BindAddress       string `yaml:"bind_address"`
	EnableCORS        bool   `yaml:"enable_cors"`
	AllowOrigins      string `yaml:"allow_origins"`
	ReadTimeout       int    `yaml:"read_timeout_seconds"`
	WriteTimeout      int    `yaml:"write_timeout_seconds"`
	IdleTimeout       int    `yaml:"idle_timeout_seconds"`
	BodyLimit         string `yaml:"body_limit"`
	EnableCompression bool   `yaml:"enable_compression"`
	CompressionLevel  int    `yaml:"compression_level"`
}

// StorageConfig contains document storage settings
type StorageConfig struct {
	UploadDirectory   string `yaml:"upload_directory"`
	MaxUploadBytes    int64  `yaml:"max_upload_bytes"`
	RestrictFileNames bool   `yaml:"restrict_file_names"`
}

// CompletionConfig selects and configures the external completion API.
type CompletionConfig struct {
	Provider       string `yaml:"provider"` // "openai", "gemini" or "anthropic"
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	APIKeyEnv      string `yaml:"api_key_env"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// APIKey is read once from APIKeyEnv at load time and never written back.
	APIKey string `yaml:"-"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level                string `yaml:"level"`
	Format               string `yaml:"format"` // "console" or "json"
	EnableRequestLogging bool   `yaml:"enable_request_logging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:              8000,
			BindAddress:       "0.0.0.0",
			EnableCORS:        true,
			AllowOrigins:      "*",
			ReadTimeout:       30,
			WriteTimeout:      180,
			IdleTimeout:       120,
			BodyLimit:         "100M",
			EnableCompression: true,
			CompressionLevel:  5,
		},
		Storage: StorageConfig{
			UploadDirectory:   "uploaded_documents",
			MaxUploadBytes:    100_000_000,
			RestrictFileNames: false,
		},
		Completion: CompletionConfig{
			Provider:       "openai",
			Model:          DefaultModel("openai"),
			MaxTokens:      200,
			APIKeyEnv:      "OPENAI_API_KEY",
			TimeoutSeconds: 120,
		},
		Logging: LoggingConfig{
			Level:                "info",
			Format:               "console",
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file is created with the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		// The model follows the provider unless the file names one
		config.Completion.Model = ""
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyDefaults()

	// Apply environment variable overrides
	config.applyEnvironmentOverrides()

	// Resolve relative paths
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save saves the configuration to a YAML file
func (c *AppConfig) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Document Q&A server configuration\n# This file is auto-generated on first run\n\n")
	content := append(header, output...)

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultModel returns the model used when the config names a provider but no model.
func DefaultModel(provider string) string {
	switch strings.ToLower(provider) {
	case "gemini":
		return "gemini-2.0-flash"
	case "anthropic", "claude":
		return "claude-sonnet-4-20250514"
	default:
		return "text-davinci-003"
	}
}

// applyDefaults fills zero values left by a partial config file
func (c *AppConfig) applyDefaults() {
	def := DefaultConfig()
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = def.Server.BodyLimit
	}
	if c.Storage.UploadDirectory == "" {
		c.Storage.UploadDirectory = def.Storage.UploadDirectory
	}
	if c.Storage.MaxUploadBytes <= 0 {
		c.Storage.MaxUploadBytes = def.Storage.MaxUploadBytes
	}
	if c.Completion.Provider == "" {
		c.Completion.Provider = def.Completion.Provider
	}
	if c.Completion.Model == "" {
		c.Completion.Model = DefaultModel(c.Completion.Provider)
	}
	if c.Completion.MaxTokens <= 0 {
		c.Completion.MaxTokens = def.Completion.MaxTokens
	}
	if c.Completion.APIKeyEnv == "" {
		c.Completion.APIKeyEnv = def.Completion.APIKeyEnv
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	// PORT override
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	// UPLOAD_DIR override
	if uploadDir := os.Getenv("UPLOAD_DIR"); uploadDir != "" {
		c.Storage.UploadDirectory = uploadDir
	}

	// Credential for the completion API, read once at startup
	c.Completion.APIKey = os.Getenv(c.Completion.APIKeyEnv)
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if !filepath.IsAbs(c.Storage.UploadDirectory) {
		c.Storage.UploadDirectory = filepath.Join(configDir, c.Storage.UploadDirectory)
	}
}

// GetUploadDir returns the uploads directory path
func (c *AppConfig) GetUploadDir() string {
	return c.Storage.UploadDirectory
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	if err := os.MkdirAll(c.Storage.UploadDirectory, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Storage.UploadDirectory, err)
	}
	return nil
}
