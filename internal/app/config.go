package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/devharbor/netward/internal/domain"
)

// Config holds the application configuration. It is read once at startup
// and never mutated afterwards; everything downstream receives copies.
type Config struct {
	Network struct {
		Bridge     string   `mapstructure:"bridge"`
		Proxy      string   `mapstructure:"proxy"`
		Reserved   []string `mapstructure:"reserved"`
		Ceiling    int      `mapstructure:"ceiling"`
		PruneBatch int      `mapstructure:"prune_batch"`
	} `mapstructure:"network"`

	Reconcile struct {
		Concurrency int `mapstructure:"concurrency"`
	} `mapstructure:"reconcile"`

	Bootstrap struct {
		Project      string   `mapstructure:"project"`
		Service      string   `mapstructure:"service"`
		Instance     string   `mapstructure:"instance"`
		Image        string   `mapstructure:"image"`
		Cmd          []string `mapstructure:"cmd"`
		ArtifactPath string   `mapstructure:"artifact_path"`
		CertsDir     string   `mapstructure:"certs_dir"`
		Privileged   bool     `mapstructure:"privileged"`
	} `mapstructure:"bootstrap"`

	Events struct {
		BufferSize int `mapstructure:"buffer_size"`
	} `mapstructure:"events"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// initConfig loads configuration from file.
func initConfig(configPath string) (Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("network.bridge", "netward_bridge")
	v.SetDefault("network.proxy", "netward_proxy")
	v.SetDefault("network.reserved", []string{"bridge", "host", "none"})
	v.SetDefault("network.ceiling", 32)
	v.SetDefault("network.prune_batch", 5)
	v.SetDefault("reconcile.concurrency", 4)
	v.SetDefault("bootstrap.project", "netward")
	v.SetDefault("bootstrap.service", "ca")
	v.SetDefault("bootstrap.instance", "1")
	v.SetDefault("bootstrap.image", "netward/ca-setup:latest")
	v.SetDefault("bootstrap.artifact_path", "~/.netward/certs/netwardCA.crt")
	v.SetDefault("bootstrap.certs_dir", "~/.netward/certs")
	v.SetDefault("events.buffer_size", 100)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("netward")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.netward")
		v.AddConfigPath("/etc/netward")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("NETWARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// Validate checks the configuration for values the services cannot work with.
func (c Config) Validate() error {
	if c.Network.Bridge == "" {
		return fmt.Errorf("%w: network.bridge must not be empty", domain.ErrInvalidConfig)
	}
	if c.Network.Ceiling <= 0 {
		return fmt.Errorf("%w: network.ceiling must be positive", domain.ErrInvalidConfig)
	}
	if c.Network.PruneBatch <= 0 {
		return fmt.Errorf("%w: network.prune_batch must be positive", domain.ErrInvalidConfig)
	}
	if c.Reconcile.Concurrency <= 0 {
		return fmt.Errorf("%w: reconcile.concurrency must be positive", domain.ErrInvalidConfig)
	}
	if c.Bootstrap.Project == "" || c.Bootstrap.Service == "" || c.Bootstrap.Instance == "" {
		return fmt.Errorf("%w: bootstrap project, service and instance must be set", domain.ErrInvalidConfig)
	}
	if c.Bootstrap.ArtifactPath == "" {
		return fmt.Errorf("%w: bootstrap.artifact_path must not be empty", domain.ErrInvalidConfig)
	}
	return nil
}
