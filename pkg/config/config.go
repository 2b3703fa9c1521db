package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Environment variables that override secrets from the config file.
const (
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvRedisPassword    = "REDIS_PASSWORD"
	EnvFlowRPCURL       = "FLOW_RPC_URL"
)

// APIServerConfig represents the verification API server configuration
type APIServerConfig struct {
	Server       ServerConfig       `yaml:"server"`
	Logging      LoggingConfig      `yaml:"logging"`
	Monitoring   MonitoringConfig   `yaml:"monitoring"`
	Verification VerificationConfig `yaml:"verification"`
	Store        StoreConfig        `yaml:"store"`
	Flare        FlareConfig        `yaml:"flare"`
	Flow         FlowConfig         `yaml:"flow"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// Address returns host:port for net.Listen.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MonitoringConfig contains metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// VerificationConfig tunes the mocked verification pipeline
type VerificationConfig struct {
	// FailureProbability is the chance a mock verification is rejected
	// when the caller did not force success.
	FailureProbability float64 `yaml:"failure_probability" default:"0.3" validate:"gte=0,lte=1"`
	// GasAmount is the simulated Flare gas bridged for Flow wallets, in C2FLR.
	GasAmount        string `yaml:"gas_amount" default:"0.001" validate:"required,numeric"`
	Validators       int    `yaml:"validators" default:"7" validate:"min=1"`
	SourceChain      string `yaml:"source_chain" default:"flow" validate:"required"`
	DestinationChain string `yaml:"destination_chain" default:"flare-coston2" validate:"required"`
}

// StoreConfig selects and configures the verification store
type StoreConfig struct {
	Driver   string         `yaml:"driver" default:"memory" validate:"oneof=memory postgres redis"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"social_verifier"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Address   string `yaml:"address" default:"localhost:6379"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix" default:"flare-verification:"`
}

// FlareConfig describes the Flare network targeted by attestations
type FlareConfig struct {
	ChainID         int64  `yaml:"chain_id" default:"114"`
	ChainName       string `yaml:"chain_name" default:"Flare Testnet Coston2"`
	CurrencyName    string `yaml:"currency_name" default:"Coston2 Flare"`
	CurrencySymbol  string `yaml:"currency_symbol" default:"C2FLR"`
	RPCURL          string `yaml:"rpc_url" default:"https://coston2-api.flare.network/ext/C/rpc"`
	ExplorerURL     string `yaml:"explorer_url" default:"https://coston2-explorer.flare.network"`
	FDCHub          string `yaml:"fdc_hub" default:"0x3e52461Be1e4feFbF1CB98C0189f14cb96608C56"`
	FDCVerification string `yaml:"fdc_verification" default:"0x07f96C4Eb1Ff75e0e626169A9D7C278d46655Bc3"`
	ContractAddress string `yaml:"contract_address"`
}

// FlowConfig describes the Flow EVM endpoint used for agent reads
type FlowConfig struct {
	RPCURL        string        `yaml:"rpc_url"`
	VaultContract string        `yaml:"vault_contract"`
	Symbol        string        `yaml:"symbol" default:"FLOW"`
	Decimals      int32         `yaml:"decimals" default:"18"`
	CallTimeout   time.Duration `yaml:"call_timeout" default:"10s"`
}

// ClientConfig holds settings for the wizard client
type ClientConfig struct {
	APIURL       string        `yaml:"api_url" default:"http://localhost:3000" validate:"required,url"`
	WalletRPCURL string        `yaml:"wallet_rpc_url"`
	TestMode     string        `yaml:"test_mode" default:"success" validate:"oneof=success random"`
	Timeout      time.Duration `yaml:"timeout" default:"30s"`
	Flare        FlareConfig   `yaml:"flare"`
}

// LoadAPIServer loads API server configuration from file.
// An empty path yields the defaults.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	cfg := &APIServerConfig{}
	if err := load(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := validateAPIServer(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadClient loads wizard client configuration from file.
// An empty path yields the defaults.
func LoadClient(configPath string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := load(configPath, cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// load applies struct defaults, then overlays the YAML file if one is given.
func load(configPath string, out any) error {
	if err := defaults.Set(out); err != nil {
		return fmt.Errorf("failed to set config defaults: %w", err)
	}
	if configPath == "" {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *APIServerConfig) {
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Store.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		cfg.Store.Redis.Password = v
	}
	if v := os.Getenv(EnvFlowRPCURL); v != "" {
		cfg.Flow.RPCURL = v
	}
}

func validateAPIServer(cfg *APIServerConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	switch cfg.Store.Driver {
	case StorePostgres:
		if cfg.Store.Database.Host == "" {
			return errors.New("store.database.host is required for the postgres driver")
		}
	case StoreRedis:
		if cfg.Store.Redis.Address == "" {
			return errors.New("store.redis.address is required for the redis driver")
		}
	}

	if cfg.Flow.VaultContract != "" && cfg.Flow.RPCURL == "" {
		return errors.New("flow.rpc_url is required when flow.vault_contract is set")
	}
	return nil
}
