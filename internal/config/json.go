package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		IdentityAddress string   `json:"identity_address"`
		DocStoreAddress string   `json:"docstore_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		Timeout       Duration `json:"timeout"`
		RememberMeTTL Duration `json:"remember_me_ttl"`
		CacheTTL      Duration `json:"cache_ttl"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Keys struct {
			Dir string `json:"dir"`
		} `json:"keys,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
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
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			IdentityAddress: jsonCfg.Adapter.IdentityAddress,
			DocStoreAddress: jsonCfg.Adapter.DocStoreAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			Timeout:       time.Duration(jsonCfg.Session.Timeout),
			RememberMeTTL: time.Duration(jsonCfg.Session.RememberMeTTL),
			CacheTTL:      time.Duration(jsonCfg.Session.CacheTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Keys: Keys{
				Dir: jsonCfg.Storage.Keys.Dir,
			},
		},
		Workers:      Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		JSONFilePath: "",
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
