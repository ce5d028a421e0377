// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Environment   string   `json:"environment"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		HTTPSAddress     string   `json:"https_address"`
		HTTPSPort        int      `json:"https_port"`
		TLSCertFile      string   `json:"tls_cert_file"`
		TLSKeyFile       string   `json:"tls_key_file"`
		RedirectHTTPS    bool     `json:"redirect_https"`
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		ShutdownTimeout  Duration `json:"shutdown_timeout"`
		ReadinessTimeout Duration `json:"readiness_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
			Environment:   jsonCfg.App.Environment,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			HTTPSAddress:     jsonCfg.Server.HTTPSAddress,
			HTTPSPort:        jsonCfg.Server.HTTPSPort,
			TLSCertFile:      jsonCfg.Server.TLSCertFile,
			TLSKeyFile:       jsonCfg.Server.TLSKeyFile,
			RedirectHTTPS:    jsonCfg.Server.RedirectHTTPS,
			GRPCAddress:      jsonCfg.Server.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:  time.Duration(jsonCfg.Server.ShutdownTimeout),
			ReadinessTimeout: time.Duration(jsonCfg.Server.ReadinessTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
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
