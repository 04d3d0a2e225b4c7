package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseClientFlags(t *testing.T) {
	cfg, err := parseClientFlags([]string{
		"-a", "http://api.local:9000",
		"-request-timeout", "5s",
		"-log-file", "/tmp/console.log",
		"-config", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://api.local:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/console.log", cfg.App.LogFile)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseClientFlags_Empty(t *testing.T) {
	cfg, err := parseClientFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseServerFlags(t *testing.T) {
	cfg, err := parseServerFlags([]string{
		"-a", "127.0.0.1:8081",
		"-driver", "pgx",
		"-d", "postgres://u:p@localhost/db",
		"-request-timeout", "1m",
		"-c", "server.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "server.json", cfg.JSONFilePath)
}

func TestParseServerFlags_InvalidAddress(t *testing.T) {
	_, err := parseServerFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)
}

func TestParseServerFlags_UnknownFlag(t *testing.T) {
	_, err := parseServerFlags([]string{"-unknown"})
	assert.Error(t, err)
}
