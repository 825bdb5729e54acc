package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration
// file. It is decoded separately from [StructuredConfig] so that the
// file format can stay stable while the in-memory layout evolves.
type StructuredJSONConfig struct {
	Server struct {
		Port           int      `json:"port"`
		Debug          bool     `json:"debug"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	ConfigServer struct {
		URL   string `json:"url"`
		Token string `json:"token"`
	} `json:"config_server,omitempty"`

	Registry struct {
		Host              string `json:"host"`
		Port              string `json:"port"`
		Namespace         string `json:"namespace"`
		Weight            int    `json:"weight"`
		HealthPath        string `json:"health_path"`
		HeartbeatInterval int    `json:"heartbeat_interval"`
	} `json:"registry,omitempty"`

	MySQL struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DB       string `json:"db"`
		User     string `json:"user"`
		Password string `json:"password"`
	} `json:"mysql,omitempty"`

	App struct {
		SecretKey         string `json:"secret_key"`
		SigningKey        string `json:"signing_key"`
		AdminUser         string `json:"admin_user"`
		AdminPasswordHash string `json:"admin_password_hash"`
		Version           string `json:"version"`
	} `json:"app,omitempty"`
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
		Server: Server{
			Port:           jsonCfg.Server.Port,
			Debug:          jsonCfg.Server.Debug,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		ConfigServer: ConfigServer{
			URL:   jsonCfg.ConfigServer.URL,
			Token: jsonCfg.ConfigServer.Token,
		},
		Registry: Registry{
			Host:              jsonCfg.Registry.Host,
			Port:              jsonCfg.Registry.Port,
			Namespace:         jsonCfg.Registry.Namespace,
			Weight:            jsonCfg.Registry.Weight,
			HealthPath:        jsonCfg.Registry.HealthPath,
			HeartbeatInterval: jsonCfg.Registry.HeartbeatInterval,
		},
		MySQL: MySQLEnv{
			Host:     jsonCfg.MySQL.Host,
			Port:     jsonCfg.MySQL.Port,
			DB:       jsonCfg.MySQL.DB,
			User:     jsonCfg.MySQL.User,
			Password: jsonCfg.MySQL.Password,
		},
		App: App{
			SecretKey:         jsonCfg.App.SecretKey,
			SigningKey:        jsonCfg.App.SigningKey,
			AdminUser:         jsonCfg.App.AdminUser,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			Version:           jsonCfg.App.Version,
		},
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
