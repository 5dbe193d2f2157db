package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		MaxAttachmentSize int64    `json:"max_attachment_size"`
		CodeTTL           Duration `json:"code_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Endpoint  string   `json:"endpoint"`
			AccessKey string   `json:"access_key"`
			SecretKey string   `json:"secret_key"`
			Bucket    string   `json:"bucket"`
			UseSSL    bool     `json:"use_ssl"`
			URLTTL    Duration `json:"url_ttl"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		APIKey    string `json:"api_key"`
		APISecret string `json:"api_secret"`
		FromEmail string `json:"from_email"`
		FromName  string `json:"from_name"`
		Mode      string `json:"mode"`
	} `json:"mail,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
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
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			MaxAttachmentSize: jsonCfg.App.MaxAttachmentSize,
			CodeTTL:           time.Duration(jsonCfg.App.CodeTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Endpoint:  jsonCfg.Storage.Blob.Endpoint,
				AccessKey: jsonCfg.Storage.Blob.AccessKey,
				SecretKey: jsonCfg.Storage.Blob.SecretKey,
				Bucket:    jsonCfg.Storage.Blob.Bucket,
				UseSSL:    jsonCfg.Storage.Blob.UseSSL,
				URLTTL:    time.Duration(jsonCfg.Storage.Blob.URLTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			APIKey:    jsonCfg.Mail.APIKey,
			APISecret: jsonCfg.Mail.APISecret,
			FromEmail: jsonCfg.Mail.FromEmail,
			FromName:  jsonCfg.Mail.FromName,
			Mode:      jsonCfg.Mail.Mode,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PurgeInterval: time.Duration(jsonCfg.Workers.PurgeInterval),
		},
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
