package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
// Booleans are pointers so that an explicit false can be told apart from an
// absent key.
type StructuredJSONConfig struct {
	App struct {
		Production *bool `json:"production,omitempty"`
		Debug      *bool `json:"debug,omitempty"`
	} `json:"app,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			PoolSize        int      `json:"pool_size"`
			MaxOverflow     int      `json:"max_overflow"`
			ConnMaxIdleTime Duration `json:"conn_max_idle_time"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		Origins string `json:"origins"`
	} `json:"cors,omitempty"`

	RateLimit struct {
		Enabled           *bool  `json:"enabled,omitempty"`
		Guest             string `json:"guest"`
		Strategy          string `json:"strategy"`
		TrustForwardedFor *bool  `json:"trust_forwarded_for,omitempty"`
	} `json:"rate_limit,omitempty"`
}

// parseJSON reads the JSON config file. Besides the config to merge it
// returns an override that writes the explicitly set booleans after the
// merge, since merging skips false values.
func parseJSON(jsonFilePath string) (*StructuredConfig, func(*StructuredConfig), error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Production: boolValue(jsonCfg.App.Production),
			Debug:      boolValue(jsonCfg.App.Debug),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				PoolSize:        jsonCfg.Storage.DB.PoolSize,
				MaxOverflow:     jsonCfg.Storage.DB.MaxOverflow,
				ConnMaxIdleTime: time.Duration(jsonCfg.Storage.DB.ConnMaxIdleTime),
			},
			Redis: Redis{
				URL: jsonCfg.Storage.Redis.URL,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		CORS: CORS{
			Origins: jsonCfg.CORS.Origins,
		},
		RateLimit: RateLimit{
			Enabled:           boolValue(jsonCfg.RateLimit.Enabled),
			Guest:             jsonCfg.RateLimit.Guest,
			Strategy:          jsonCfg.RateLimit.Strategy,
			TrustForwardedFor: boolValue(jsonCfg.RateLimit.TrustForwardedFor),
		},
		JSONFilePath: "",
	}

	return cfg, jsonCfg.applyBools, nil
}

// applyBools copies every boolean present in the file onto cfg.
func (j *StructuredJSONConfig) applyBools(cfg *StructuredConfig) {
	setBool(&cfg.App.Production, j.App.Production)
	setBool(&cfg.App.Debug, j.App.Debug)
	setBool(&cfg.RateLimit.Enabled, j.RateLimit.Enabled)
	setBool(&cfg.RateLimit.TrustForwardedFor, j.RateLimit.TrustForwardedFor)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
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
