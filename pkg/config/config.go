/*
Package config manages the TOML config for wordlearn hosts.

The completer itself has no settings; everything here shapes how the menu CLI
and the IPC server call it:

	[server]
	max_limit = 64
	default_limit = 10
	min_prefix = 1
	max_prefix = 60

	[trainer]
	corpus_path = ""
	corpus_ext = ".txt"
	fold_prefix = true

	[cli]
	default_limit = 0
	default_min_len = 1
	default_max_len = 60
	show_scores = false
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultFileName is the config file name inside the config dir
const DefaultFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Trainer TrainerConfig `toml:"trainer"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	DefaultLimit int `toml:"default_limit"`
	MinPrefix    int `toml:"min_prefix"`
	MaxPrefix    int `toml:"max_prefix"`
}

// TrainerConfig holds the startup corpus and how prefixes are matched.
type TrainerConfig struct {
	CorpusPath string `toml:"corpus_path"`
	CorpusExt  string `toml:"corpus_ext"`
	// FoldPrefix lowercases prefixes before lookup. Learned words are
	// always lowercase, so without it "Te" never matches.
	FoldPrefix bool `toml:"fold_prefix"`
}

// CliConfig holds menu cli options. A DefaultLimit of 0 prints every match.
type CliConfig struct {
	DefaultLimit  int  `toml:"default_limit"`
	DefaultMinLen int  `toml:"default_min_len"`
	DefaultMaxLen int  `toml:"default_max_len"`
	ShowScores    bool `toml:"show_scores"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			DefaultLimit: 10,
			MinPrefix:    1,
			MaxPrefix:    60,
		},
		Trainer: TrainerConfig{
			CorpusPath: "",
			CorpusExt:  ".txt",
			FoldPrefix: true,
		},
		CLI: CliConfig{
			DefaultLimit:  0,
			DefaultMinLen: 1,
			DefaultMaxLen: 60,
			ShowScores:    false,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	if defaultPath == "" {
		log.Warn("No default config path. Using built-in defaults...")
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Values missing from the file keep
// their defaults; a file that fails to decode as a whole is parsed section
// by section instead.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps every well-typed value it can find
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tables, err := utils.DecodeTOMLTables(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.Table(tables, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.Table(tables, "trainer"); ok {
		extractTrainerConfig(section, &config.Trainer)
	}
	if section, ok := utils.Table(tables, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.sanitize()
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

func extractTrainerConfig(data map[string]any, trainer *TrainerConfig) {
	if val, ok := utils.Extract[string](data, "corpus_path"); ok {
		trainer.CorpusPath = val
	}
	if val, ok := utils.Extract[string](data, "corpus_ext"); ok {
		trainer.CorpusExt = val
	}
	if val, ok := utils.Extract[bool](data, "fold_prefix"); ok {
		trainer.FoldPrefix = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt(data, "default_min_len"); ok {
		cli.DefaultMinLen = val
	}
	if val, ok := utils.ExtractInt(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.Extract[bool](data, "show_scores"); ok {
		cli.ShowScores = val
	}
}

// sanitize resets values that would make every request fail
func (c *Config) sanitize() {
	defaults := DefaultConfig()

	if c.Server.MaxLimit < 1 {
		log.Warnf("Invalid server.max_limit %d, using %d", c.Server.MaxLimit, defaults.Server.MaxLimit)
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.DefaultLimit < 1 || c.Server.DefaultLimit > c.Server.MaxLimit {
		c.Server.DefaultLimit = min(defaults.Server.DefaultLimit, c.Server.MaxLimit)
	}
	if c.Server.MinPrefix < 0 {
		c.Server.MinPrefix = 0
	}
	if c.Server.MaxPrefix < c.Server.MinPrefix {
		log.Warnf("server.max_prefix %d below min_prefix %d, using %d", c.Server.MaxPrefix, c.Server.MinPrefix, defaults.Server.MaxPrefix)
		c.Server.MaxPrefix = max(defaults.Server.MaxPrefix, c.Server.MinPrefix)
	}
	if c.CLI.DefaultLimit < 0 {
		c.CLI.DefaultLimit = 0
	}
	if c.CLI.DefaultMinLen < 0 {
		c.CLI.DefaultMinLen = 0
	}
	if c.CLI.DefaultMaxLen < c.CLI.DefaultMinLen {
		c.CLI.DefaultMaxLen = max(defaults.CLI.DefaultMaxLen, c.CLI.DefaultMinLen)
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
