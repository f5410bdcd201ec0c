package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		SessionSignKey  string   `json:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
		Mode            string   `json:"mode"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		APIKey         string   `json:"api_key"`
		EmailDomain    string   `json:"email_domain"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryAttempts  uint     `json:"retry_attempts"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"adapter,omitempty"`

	Emulator struct {
		HTTPAddress string `json:"http_address"`
		SignKey     string `json:"sign_key"`
	} `json:"emulator,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:  jsonCfg.App.SessionSignKey,
			SessionIssuer:   jsonCfg.App.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			Mode:            jsonCfg.App.Mode,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			APIKey:         jsonCfg.Adapter.APIKey,
			EmailDomain:    jsonCfg.Adapter.EmailDomain,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryAttempts:  jsonCfg.Adapter.RetryAttempts,
			RetryBaseDelay: time.Duration(jsonCfg.Adapter.RetryBaseDelay),
		},
		Emulator: Emulator{
			HTTPAddress: jsonCfg.Emulator.HTTPAddress,
			SignKey:     jsonCfg.Emulator.SignKey,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
