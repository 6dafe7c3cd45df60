// Package appconfig loads the service configuration from config/app.yaml.
package appconfig

import (
	"fmt"
	"os"

	"smart_performance/pkg/core/agent"

	"gopkg.in/yaml.v2"
)

const DefaultPath = "config/app.yaml"

type Config struct {
	ListenAddr string           `yaml:"listen_addr"`
	Agent      agent.Config     `yaml:",inline"`
	Credential CredentialConfig `yaml:"credential"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

type CredentialConfig struct {
	EnvVar         string `yaml:"env_var"`
	Store          string `yaml:"store"` // file, redis, postgres, none
	Key            string `yaml:"key"`
	FilePath       string `yaml:"file_path"`
	RedisAddr      string `yaml:"redis_addr"`
	DatabaseURLEnv string `yaml:"database_url_env"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	File string `yaml:"file"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Agent: agent.Config{
			ActiveProvider: agent.ProviderGemini,
		},
		Credential: CredentialConfig{
			EnvVar:         "GEMINI_API_KEY",
			Store:          "file",
			Key:            "GEMINI_API_KEY",
			DatabaseURLEnv: "DATABASE_URL",
		},
		Log: LogConfig{Mode: "dev"},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
	}
}

// Load reads path on top of Default. A missing file yields the defaults and
// os.ErrNotExist so the caller can warn.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
	if c.Agent.ActiveProvider == "" {
		c.Agent.ActiveProvider = def.Agent.ActiveProvider
	}
	if c.Credential.EnvVar == "" {
		c.Credential.EnvVar = def.Credential.EnvVar
	}
	if c.Credential.Key == "" {
		c.Credential.Key = def.Credential.Key
	}
	if c.Credential.Store == "" {
		c.Credential.Store = def.Credential.Store
	}
	if c.Credential.DatabaseURLEnv == "" {
		c.Credential.DatabaseURLEnv = def.Credential.DatabaseURLEnv
	}
	if c.Log.Mode == "" {
		c.Log.Mode = def.Log.Mode
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = def.CORS.AllowOrigins
	}
}
