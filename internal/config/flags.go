package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// flagParser turns command-line arguments into a partial [StructuredConfig].
type flagParser func(args []string) (*StructuredConfig, error)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseClientFlags parses the console flags.
//
// Flags:
//
//	-a remote API base URL (e.g. http://localhost:8080)
//	-request-timeout outbound request timeout (e.g. "15s")
//	-log-file console log file path
//	-c/-config json file path with configs
func parseClientFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var apiAddress, logFile, jsonConfigPath string
	var requestTimeout time.Duration

	fs.StringVar(&apiAddress, "a", "", "Remote API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogFile: logFile},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseServerFlags parses the API server flags.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g. "30s")
//	-driver database driver: sqlite3 or pgx
//	-d database DSN
//	-c/-config json file path with configs
func parseServerFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var driver, databaseDSN, jsonConfigPath string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
