package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a hosted backend base URL
//	-api-key hosted backend API key
//	-email-domain identity email domain
//	-request-timeout outbound request timeout (e.g., "10s")
//	-retry-attempts attempts for idempotent backend calls
//	-retry-delay first retry backoff delay (e.g., "200ms")
//	-d local database DSN
//	-driver local database driver (sqlite | sqlite3)
//	-mode identity mode (local | remote)
//	-session-sign-key session token signing key
//	-session-duration session lifetime (e.g., "720h")
//	-e emulator listen address in format [host]:[port]
//	-sync-interval leaderboard reconciliation period
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var emulatorAddress NetAddress
	var adapterAddress, apiKey, emailDomain string
	var requestTimeout, retryDelay, sessionDuration, syncInterval time.Duration
	var retryAttempts uint
	var databaseDSN, driver, mode, sessionSignKey, jsonConfigPath string

	fs := flag.NewFlagSet("studytrack", flag.ContinueOnError)
	fs.StringVar(&adapterAddress, "a", "", "Hosted backend base URL")
	fs.StringVar(&apiKey, "api-key", "", "Hosted backend API key")
	fs.StringVar(&emailDomain, "email-domain", "", "Identity email domain")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.UintVar(&retryAttempts, "retry-attempts", 0, "Attempts for idempotent backend calls")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "First retry backoff delay (e.g., 200ms)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&driver, "driver", "", "Local database driver (sqlite | sqlite3)")
	fs.StringVar(&mode, "mode", "", "Identity mode (local | remote)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	fs.Var(&emulatorAddress, "e", "Emulator net address host:port")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Leaderboard reconciliation period")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionDuration: sessionDuration,
			Mode:            mode,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			APIKey:         apiKey,
			EmailDomain:    emailDomain,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryBaseDelay: retryDelay,
		},
		Emulator: Emulator{
			HTTPAddress: emulatorAddress.String(),
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
