package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadAPIServer_Defaults(t *testing.T) {
	cfg, err := LoadAPIServer("")
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("expected read timeout 15s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Verification.FailureProbability != 0.3 {
		t.Fatalf("expected failure probability 0.3, got %v", cfg.Verification.FailureProbability)
	}
	if cfg.Verification.GasAmount != "0.001" {
		t.Fatalf("expected gas amount 0.001, got %q", cfg.Verification.GasAmount)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.Store.Driver)
	}
	if cfg.Flare.ChainID != 114 {
		t.Fatalf("expected Coston2 chain id 114, got %d", cfg.Flare.ChainID)
	}
}

func TestLoadAPIServer_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8088
  read_timeout: 5s
verification:
  failure_probability: 0
store:
  driver: redis
  redis:
    address: redis:6379
`)

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Server.Port != 8088 {
		t.Fatalf("expected port 8088, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Verification.FailureProbability != 0 {
		t.Fatalf("expected explicit zero failure probability to survive, got %v", cfg.Verification.FailureProbability)
	}
	if cfg.Store.Redis.Address != "redis:6379" {
		t.Fatalf("expected redis address override, got %q", cfg.Store.Redis.Address)
	}
	if cfg.Store.Redis.KeyPrefix != "flare-verification:" {
		t.Fatalf("expected default key prefix to remain, got %q", cfg.Store.Redis.KeyPrefix)
	}
}

func TestLoadAPIServer_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"probability": "verification:\n  failure_probability: 1.5\n",
		"driver":      "store:\n  driver: sqlite\n",
		"log level":   "logging:\n  level: loud\n",
		"vault":       "flow:\n  vault_contract: \"0x01\"\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadAPIServer(writeConfig(t, body)); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoadAPIServer_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvDatabasePassword, "s3cret")
	t.Setenv(EnvFlowRPCURL, "http://flow.local")

	cfg, err := LoadAPIServer("")
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Store.Database.Password != "s3cret" {
		t.Fatalf("expected password from env, got %q", cfg.Store.Database.Password)
	}
	if cfg.Flow.RPCURL != "http://flow.local" {
		t.Fatalf("expected flow rpc from env, got %q", cfg.Flow.RPCURL)
	}
	if !strings.Contains(cfg.Store.Database.GetConnectionString(), "password=s3cret") {
		t.Fatalf("connection string missing password: %s", cfg.Store.Database.GetConnectionString())
	}
}

func TestLoadAPIServer_MissingFile(t *testing.T) {
	if _, err := LoadAPIServer(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient("")
	if err != nil {
		t.Fatalf("LoadClient() failed: %v", err)
	}
	if cfg.APIURL != "http://localhost:3000" {
		t.Fatalf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.TestMode != "success" {
		t.Fatalf("expected success test mode, got %q", cfg.TestMode)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "nope", Format: "json"}, "verification-api"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "console", OutputPath: "stderr"}, "verification-api")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) || !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("expected warn level logger")
	}

	cli, err := NewCLILogger(false)
	if err != nil {
		t.Fatalf("NewCLILogger() failed: %v", err)
	}
	if cli.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("CLI logger must be quiet below warn")
	}

	verbose, err := NewCLILogger(true)
	if err != nil {
		t.Fatalf("NewCLILogger(verbose) failed: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("verbose CLI logger must log debug")
	}
}

func TestExampleConfigsLoad(t *testing.T) {
	t.Setenv(EnvFlowRPCURL, "")

	server, err := LoadAPIServer("../../config.example.yaml")
	if err != nil {
		t.Fatalf("LoadAPIServer(example) failed: %v", err)
	}
	if server.Store.Driver != StoreMemory || server.Flow.VaultContract != "" {
		t.Fatalf("unexpected example server config %+v", server)
	}

	client, err := LoadClient("../../config.client.example.yaml")
	if err != nil {
		t.Fatalf("LoadClient(example) failed: %v", err)
	}
	if client.APIURL != "http://localhost:3000" || client.Flare.CurrencySymbol != "C2FLR" {
		t.Fatalf("unexpected example client config %+v", client)
	}
}
