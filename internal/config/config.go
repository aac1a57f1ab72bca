package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Frontend    FrontendConfig    `mapstructure:"frontend"`
	CORS        CORSConfig        `mapstructure:"cors"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // "debug" or "release"
}

// DebugMode reports whether the server should run with verbose router
// output.
func (s ServerConfig) DebugMode() bool {
	return strings.EqualFold(s.Mode, "debug")
}

// HuggingFaceConfig defines the text-generation upstream.
type HuggingFaceConfig struct {
	APIToken string `mapstructure:"api_token"`
	APIURL   string `mapstructure:"api_url"`
	Model    string `mapstructure:"model"`
	// Timeout bounds the single generation attempt per request.
	// Parsed from a duration string ("30s", "1m").
	Timeout time.Duration `mapstructure:"timeout"`
}

type FrontendConfig struct {
	IndexPath string `mapstructure:"index_path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set the path to look for the config file in
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS,
	// huggingface.api_token -> HUGGINGFACE_API_TOKEN
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	// Every key gets a default so the matching environment variable is
	// picked up even without a config file.
	viper.SetDefault("server.address", ":5000")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("huggingface.api_token", "")
	viper.SetDefault("huggingface.api_url", "https://api-inference.huggingface.co/models/")
	viper.SetDefault("huggingface.model", "microsoft/DialoGPT-medium")
	viper.SetDefault("huggingface.timeout", "30s")
	viper.SetDefault("frontend.index_path", "frontend/index.html")
	viper.SetDefault("cors.allowed_origins", []string{"*"})

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// The config file is optional; environment variables and defaults can
	// carry the whole configuration.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	// Viper parses the timeout duration string directly into the
	// time.Duration field.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
