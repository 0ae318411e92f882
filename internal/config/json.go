package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	Auth struct {
		AdminUser         string   `json:"admin_user"`
		AdminPasswordHash string   `json:"admin_password_hash"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir           string `json:"dir"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Gateway struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		UploadBucket   string   `json:"upload_bucket"`
	} `json:"gateway,omitempty"`

	Geo struct {
		LocationURL    string   `json:"location_url"`
		IPURL          string   `json:"ip_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"geo,omitempty"`

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
		Auth: Auth{
			AdminUser:         jsonCfg.Auth.AdminUser,
			AdminPasswordHash: jsonCfg.Auth.AdminPasswordHash,
			TokenSignKey:      jsonCfg.Auth.TokenSignKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Dir:           jsonCfg.Storage.Files.Dir,
				PublicBaseURL: jsonCfg.Storage.Files.PublicBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Gateway: Gateway{
			HTTPAddress:    jsonCfg.Gateway.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
			UploadBucket:   jsonCfg.Gateway.UploadBucket,
		},
		Geo: Geo{
			LocationURL:    jsonCfg.Geo.LocationURL,
			IPURL:          jsonCfg.Geo.IPURL,
			RequestTimeout: time.Duration(jsonCfg.Geo.RequestTimeout),
		},
		Workers:      Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
