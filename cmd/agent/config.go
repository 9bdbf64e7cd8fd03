package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"myrendezvous/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envPort         = "RENDEZVOUS_PORT"
	envHostname     = "RENDEZVOUS_HOSTNAME"
	envRandomIDs    = "RENDEZVOUS_RANDOM_IDS"
	envAgentArgs    = "RENDEZVOUS_AGENT_ARGS"
	envRedisAddr    = "REDIS_ADDR"
	envPublishTTLMs = "PUBLISH_TTL_MS"
	envConfigPath   = "CONFIG_PATH"
)

// Config is the agent process configuration. The port override is kept raw: a malformed value is
// reported by the activation as a configuration error.
type Config struct {
	Agent     domain.AgentConfig
	AgentArgs string
	// RedisAddr enables address publication when set.
	RedisAddr string
}

// yamlConfig is the optional file at CONFIG_PATH. Every field is optional; environment variables win.
type yamlConfig struct {
	Port         *string           `yaml:"port"`
	Hostname     *string           `yaml:"hostname"`
	RandomIDs    *bool             `yaml:"random_ids"`
	AgentArgs    *string           `yaml:"agent_args"`
	RedisAddr    *string           `yaml:"redis_addr"`
	PublishTTLMs *int              `yaml:"publish_ttl_ms"`
	Environment  map[string]string `yaml:"environment"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg yamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadConfig builds the configuration from defaults, then the YAML file at CONFIG_PATH (if set),
// then environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		Agent: domain.AgentConfig{
			RandomIDs:   true,
			PublishTTL:  30 * time.Second,
			Environment: domain.Environment{},
		},
	}

	if v := os.Getenv(envConfigPath); v != "" {
		path, err := filepath.Abs(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envConfigPath, err)
		}
		file, err := loadYAMLConfig(path)
		if err != nil {
			return nil, err
		}
		if err := applyYAML(config, file); err != nil {
			return nil, err
		}
	}

	if v, ok := os.LookupEnv(envPort); ok {
		config.Agent.PortOverride = v
	}
	if v, ok := os.LookupEnv(envHostname); ok {
		config.Agent.HostnameOverride = v
	}
	if v := os.Getenv(envRandomIDs); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envRandomIDs, err)
		}
		config.Agent.RandomIDs = b
	}
	if v, ok := os.LookupEnv(envAgentArgs); ok {
		config.AgentArgs = v
	}
	if v := os.Getenv(envRedisAddr); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv(envPublishTTLMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envPublishTTLMs, err)
		}
		if ms <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", envPublishTTLMs, ms)
		}
		config.Agent.PublishTTL = time.Duration(ms) * time.Millisecond
	}

	return config, nil
}

func applyYAML(config *Config, file *yamlConfig) error {
	if file.Port != nil {
		config.Agent.PortOverride = *file.Port
	}
	if file.Hostname != nil {
		config.Agent.HostnameOverride = *file.Hostname
	}
	if file.RandomIDs != nil {
		config.Agent.RandomIDs = *file.RandomIDs
	}
	if file.AgentArgs != nil {
		config.AgentArgs = *file.AgentArgs
	}
	if file.RedisAddr != nil {
		config.RedisAddr = *file.RedisAddr
	}
	if file.PublishTTLMs != nil {
		if *file.PublishTTLMs <= 0 {
			return fmt.Errorf("publish_ttl_ms must be positive, got %d", *file.PublishTTLMs)
		}
		config.Agent.PublishTTL = time.Duration(*file.PublishTTLMs) * time.Millisecond
	}
	for k, v := range file.Environment {
		config.Agent.Environment[k] = v
	}
	return nil
}
