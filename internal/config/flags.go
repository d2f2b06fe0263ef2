package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-identity-address identity provider address in format [host]:[port]
//	-docstore-address document store address in format [host]:[port]
//	-d local database DSN
//	-keys-dir directory for the persisted secret-key file
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-timeout inactivity lock timeout (e.g., "15m")
//	-remember-me-ttl persisted secret key lifetime (e.g., "720h")
//	-cache-ttl decrypted cache freshness window (e.g., "5m")
//	-refresh-interval background refresh interval (e.g., "1m")
//	-hash-key fingerprint hash key
func ParseFlags() *StructuredConfig {
	var identityAddress, docStoreAddress NetAddress
	var databaseDSN string
	var keysDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sessionTimeout time.Duration
	var rememberMeTTL time.Duration
	var cacheTTL time.Duration
	var refreshInterval time.Duration
	var hashKey string

	flag.Var(&identityAddress, "identity-address", "Identity provider address host:port")
	flag.Var(&docStoreAddress, "docstore-address", "Document store address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&keysDir, "keys-dir", "", "Directory for the persisted secret-key file")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Inactivity lock timeout (e.g., 15m)")
	flag.DurationVar(&rememberMeTTL, "remember-me-ttl", 0, "Persisted secret key lifetime (e.g., 720h)")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Decrypted cache freshness window (e.g., 5m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m)")
	flag.StringVar(&hashKey, "hash-key", "", "Fingerprint hash key")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Adapter: Adapter{
			IdentityAddress: identityAddress.String(),
			DocStoreAddress: docStoreAddress.String(),
			RequestTimeout:  requestTimeout,
		},
		Session: Session{
			Timeout:       sessionTimeout,
			RememberMeTTL: rememberMeTTL,
			CacheTTL:      cacheTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Keys: Keys{
				Dir: keysDir,
			},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
