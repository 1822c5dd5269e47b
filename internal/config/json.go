package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver   string `json:"driver"`
		DynamoDB struct {
			TableName string `json:"table_name"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			PageSize  int32  `json:"page_size"`
		} `json:"dynamodb,omitempty"`
		DB struct {
			DSN       string `json:"dsn"`
			TableName string `json:"table_name"`
			Migrate   bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Driver         string   `json:"driver"`
		ProcessorName  string   `json:"processor_name"`
		ProcessorURL   string   `json:"processor_url"`
		Region         string   `json:"region"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		Mode           string   `json:"mode"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			Name:        jsonCfg.App.Name,
			Version:     jsonCfg.App.Version,
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DynamoDB: DynamoDB{
				TableName: jsonCfg.Storage.DynamoDB.TableName,
				Region:    jsonCfg.Storage.DynamoDB.Region,
				Endpoint:  jsonCfg.Storage.DynamoDB.Endpoint,
				PageSize:  jsonCfg.Storage.DynamoDB.PageSize,
			},
			DB: DB{
				DSN:       jsonCfg.Storage.DB.DSN,
				TableName: jsonCfg.Storage.DB.TableName,
				Migrate:   jsonCfg.Storage.DB.Migrate,
			},
		},
		Adapter: Adapter{
			Driver:         jsonCfg.Adapter.Driver,
			ProcessorName:  jsonCfg.Adapter.ProcessorName,
			ProcessorURL:   jsonCfg.Adapter.ProcessorURL,
			Region:         jsonCfg.Adapter.Region,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			Mode:           jsonCfg.Server.Mode,
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
