package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SessionSignKey signs and verifies credentialed session tokens.
	SessionSignKey string
	// SessionIssuer is the issuer claim of session tokens.
	SessionIssuer string
	// SessionDuration is the session lifetime.
	SessionDuration time.Duration
	// Mode is the identity mode, [ModeLocal] or [ModeRemote].
	Mode string
	// Version is shown in the dashboard footer.
	Version string
}

// ClientAdapter holds hosted backend settings used by the client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the hosted backend.
	HTTPAddress string
	// APIKey is sent with every backend request.
	APIKey string
	// EmailDomain is appended to usernames for the identity provider.
	EmailDomain string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RetryAttempts is the total number of attempts for idempotent calls.
	RetryAttempts uint
	// RetryBaseDelay is the first retry delay.
	RetryBaseDelay time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
	// Driver is the database/sql driver name.
	Driver string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the leaderboard is reconciled.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// DefaultClientConfig returns the values used for every setting left empty
// by all configuration sources. The session sign key has no default.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		App: ClientApp{
			SessionIssuer:   "studytrack",
			SessionDuration: 30 * 24 * time.Hour,
			Mode:            ModeLocal,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8090",
			EmailDomain:    "studytrack.app",
			RequestTimeout: 10 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: 500 * time.Millisecond,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "studytrack.db", Driver: DriverModernc},
		},
		Workers: ClientWorkers{SyncInterval: 5 * time.Minute},
	}
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionSignKey:  cfg.App.SessionSignKey,
			SessionIssuer:   cfg.App.SessionIssuer,
			SessionDuration: cfg.App.SessionDuration,
			Mode:            cfg.App.Mode,
			Version:         cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIKey:         cfg.Adapter.APIKey,
			EmailDomain:    cfg.Adapter.EmailDomain,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryAttempts:  cfg.Adapter.RetryAttempts,
			RetryBaseDelay: cfg.Adapter.RetryBaseDelay,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	if err := mergo.Merge(clientCfg, DefaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error applying client defaults: %w", err)
	}

	return clientCfg, clientCfg.validate()
}

// EmulatorConfig is the runtime view used by the backend emulator binary.
type EmulatorConfig struct {
	// HTTPAddress is the host:port to listen on.
	HTTPAddress string
	// SignKey signs identity tokens.
	SignKey string
	// APIKey, when set, is required on every request.
	APIKey string
}

// GetEmulatorConfig builds and validates the emulator view of the merged
// structured configuration.
func GetEmulatorConfig(args []string) (*EmulatorConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	emuCfg := &EmulatorConfig{
		HTTPAddress: cfg.Emulator.HTTPAddress,
		SignKey:     cfg.Emulator.SignKey,
		APIKey:      cfg.Adapter.APIKey,
	}
	if emuCfg.HTTPAddress == "" {
		emuCfg.HTTPAddress = "localhost:8090"
	}

	return emuCfg, emuCfg.validate()
}
