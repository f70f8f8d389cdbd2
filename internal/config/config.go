package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Version string       `mapstructure:"version" yaml:"version"`
	Log     LogConfig    `mapstructure:"log" yaml:"log"`
	Server  ServerConfig `mapstructure:"server" yaml:"server"`
	// Agent is nil when the file has no agent section.
	Agent *AgentConfig `mapstructure:"agent" yaml:"agent,omitempty"`
}

// AgentConfig configures the completion agent whose prompt is rendered.
type AgentConfig struct {
	Instruction string `mapstructure:"instruction" json:"instruction,omitempty" yaml:"instruction,omitempty"`
	// Prompt is nil when no prompt template is configured.
	Prompt *AgentPromptConfig `mapstructure:"prompt" json:"prompt,omitempty" yaml:"prompt,omitempty"`
}

// AgentPromptConfig holds the prompt template of the agent.
type AgentPromptConfig struct {
	FirstPrompt string `mapstructure:"first_prompt" json:"first_prompt" yaml:"first_prompt"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// ServerConfig configures the HTTP render API.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

var (
	globalConfig *Config
	configPath   string
	mu           sync.RWMutex
)

// agentEnvKeys are bound explicitly; an unset variable leaves Agent nil.
var agentEnvKeys = []string{"agent.instruction", "agent.prompt.first_prompt"}

// Load reads configuration. Precedence: env > file > defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	SetDefaults()

	viper.SetEnvPrefix("COTPROMPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// The agent section has no defaults, so AutomaticEnv cannot see its keys.
	for _, key := range agentEnvKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if path != "" {
		expandedPath, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		configPath = expandedPath

		viper.SetConfigFile(expandedPath)
		if err := viper.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if !errors.As(err, &pathErr) && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	globalConfig = &cfg
	return &cfg, nil
}

// GetConfig returns the last loaded configuration.
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}

// Path returns the path of the last loaded configuration file.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return configPath
}

// SaveTo writes cfg as YAML to path, creating parent directories.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Reset clears loaded state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	configPath = ""
	viper.Reset()
}
