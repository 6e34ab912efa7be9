package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the API server configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Storage    StorageConfig    `mapstructure:"storage"`
	JWKS       JWKSConfig       `mapstructure:"jwks"`
	Mail       MailConfig       `mapstructure:"mail"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// ChainConfig contains EVM test-network client settings used for minting
// passes and reading wallet balances
type ChainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ChainID         int64         `mapstructure:"chain_id"`
	PassContract    string        `mapstructure:"pass_contract"`
	MasterSeed      string        `mapstructure:"master_seed"`
	FaucetURL       string        `mapstructure:"faucet_url"`
	ExplorerBaseURL string        `mapstructure:"explorer_base_url"`
	GasLimit        uint64        `mapstructure:"gas_limit"`
	MintTimeout     time.Duration `mapstructure:"mint_timeout"`
}

// StorageConfig contains settings for the content-addressed storage gateway
// used for pass metadata and image uploads
type StorageConfig struct {
	PrimaryURL      string        `mapstructure:"primary_url"`
	FallbackURLs    []string      `mapstructure:"fallback_urls"`
	Retries         int           `mapstructure:"retries"`
	Timeout         time.Duration `mapstructure:"timeout"`
	DefaultImageURI string        `mapstructure:"default_image_uri"`
	ImagePath       string        `mapstructure:"image_path"`
}

// JWKSConfig contains JWKS configuration for JWT validation.
// When URL is empty the server authenticates via session-table lookups only.
type JWKSConfig struct {
	URL    string `mapstructure:"url"`
	Issuer string `mapstructure:"issuer"`
}

// MailConfig contains the registration-confirmation mail pipeline settings
type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	AMQPURL  string `mapstructure:"amqp_url"`
	Queue    string `mapstructure:"queue"`
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.database", "tikket")

	// Chain defaults
	viper.SetDefault("chain.chain_id", 11155111)
	viper.SetDefault("chain.gas_limit", 300000)
	viper.SetDefault("chain.mint_timeout", "90s")
	viper.SetDefault("chain.explorer_base_url", "https://sepolia.etherscan.io")

	// Storage defaults
	viper.SetDefault("storage.primary_url", "https://node1.irys.xyz")
	viper.SetDefault("storage.fallback_urls", []string{
		"https://node2.irys.xyz",
		"https://uploader.irys.xyz",
		"https://devnet.irys.xyz",
	})
	viper.SetDefault("storage.retries", 3)
	viper.SetDefault("storage.timeout", "20s")

	// Mail defaults
	viper.SetDefault("mail.enabled", false)
	viper.SetDefault("mail.queue", "registration.confirmations")
	viper.SetDefault("mail.smtp_port", 587)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Chain.RPCURL == "" {
		return fmt.Errorf("chain.rpc_url is required")
	}
	if config.Chain.PassContract == "" {
		return fmt.Errorf("chain.pass_contract is required")
	}
	if config.Chain.MasterSeed == "" {
		return fmt.Errorf("chain.master_seed is required")
	}
	if config.Storage.PrimaryURL == "" {
		return fmt.Errorf("storage.primary_url is required")
	}
	if config.Mail.Enabled {
		if config.Mail.AMQPURL == "" {
			return fmt.Errorf("mail.amqp_url is required when mail is enabled")
		}
		if config.Mail.SMTPHost == "" {
			return fmt.Errorf("mail.smtp_host is required when mail is enabled")
		}
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
