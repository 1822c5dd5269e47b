package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
// Only flags present on the command line produce non-zero fields.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-mode inbound transport (lambda, http)
//	-storage-driver record store driver (dynamodb, postgres, sqlite)
//	-table DynamoDB table name
//	-dynamodb-endpoint custom DynamoDB endpoint
//	-d database DSN
//	-migrate run embedded SQL migrations on startup
//	-adapter-driver processor transport (lambda, http)
//	-processor-name downstream function name
//	-processor-url downstream HTTP endpoint
//	-dispatch-timeout single dispatch timeout (e.g., "5s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverMode string
	var storageDriver, tableName, dynamoEndpoint string
	var databaseDSN string
	var migrate bool
	var adapterDriver, processorName, processorURL string
	var dispatchTimeout, requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverMode, "mode", "", "Inbound transport (lambda, http)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Record store driver (dynamodb, postgres, sqlite)")
	fs.StringVar(&tableName, "table", "", "DynamoDB units table name")
	fs.StringVar(&dynamoEndpoint, "dynamodb-endpoint", "", "Custom DynamoDB endpoint")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Run embedded SQL migrations on startup")
	fs.StringVar(&adapterDriver, "adapter-driver", "", "Processor transport (lambda, http)")
	fs.StringVar(&processorName, "processor-name", "", "Downstream processor function name")
	fs.StringVar(&processorURL, "processor-url", "", "Downstream processor URL")
	fs.DurationVar(&dispatchTimeout, "dispatch-timeout", 0, "Dispatch timeout (e.g., 5s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			Driver: storageDriver,
			DynamoDB: DynamoDB{
				TableName: tableName,
				Endpoint:  dynamoEndpoint,
			},
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Adapter: Adapter{
			Driver:         adapterDriver,
			ProcessorName:  processorName,
			ProcessorURL:   processorURL,
			RequestTimeout: dispatchTimeout,
		},
		Server: Server{
			Mode:           serverMode,
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces. It validates the port range,
// checks IP correctness unless host is empty or "localhost", and returns an
// error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
