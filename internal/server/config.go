package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ServerConfig represents the complete referee server configuration
type ServerConfig struct {
	Server  ServerSettings   `hcl:"server,block"`
	Session *SessionSettings `hcl:"session,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SessionSettings controls session lifecycle housekeeping
type SessionSettings struct {
	IdleTimeoutSeconds  int `hcl:"idle_timeout_seconds,optional"`
	ReapIntervalSeconds int `hcl:"reap_interval_seconds,optional"`
	MaxSessions         int `hcl:"max_sessions,optional"`
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Session: &SessionSettings{
			IdleTimeoutSeconds:  300,
			ReapIntervalSeconds: 60,
			MaxSessions:         1024,
		},
	}
}

// LoadServerConfig loads server configuration from an HCL file. A missing
// file yields the defaults.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Session == nil {
		config.Session = DefaultServerConfig().Session
	}
	if config.Session.IdleTimeoutSeconds == 0 {
		config.Session.IdleTimeoutSeconds = 300
	}
	if config.Session.ReapIntervalSeconds == 0 {
		config.Session.ReapIntervalSeconds = 60
	}
	if config.Session.MaxSessions == 0 {
		config.Session.MaxSessions = 1024
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Session.IdleTimeoutSeconds < 1 {
		return fmt.Errorf("session idle timeout must be positive, got %d", c.Session.IdleTimeoutSeconds)
	}
	if c.Session.ReapIntervalSeconds < 1 {
		return fmt.Errorf("session reap interval must be positive, got %d", c.Session.ReapIntervalSeconds)
	}
	if c.Session.MaxSessions < 1 {
		return fmt.Errorf("max sessions must be positive, got %d", c.Session.MaxSessions)
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// IdleTimeout returns the session idle timeout as a duration.
func (c *ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.Session.IdleTimeoutSeconds) * time.Second
}

// ReapInterval returns the session reap interval as a duration.
func (c *ServerConfig) ReapInterval() time.Duration {
	return time.Duration(c.Session.ReapIntervalSeconds) * time.Second
}
