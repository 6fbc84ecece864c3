package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a [StructuredConfig].
//
// Flags:
//
//	-a                   HTTP listen address [host]:port
//	-grpc-address        gRPC health listen address [host]:port
//	-d                   database DSN
//	-redis               Redis URL of the leaderboard
//	-c / -config         JSON config file path
//	-env                 environment (development, production)
//	-log-level           log level
//	-token-sign-key      token signing key
//	-token-issuer        token issuer
//	-token-duration      token lifetime (e.g. 15m)
//	-password-hash-cost  bcrypt cost
//	-request-timeout     request timeout (e.g. 30s)
func parseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var databaseDSN, redisURL string
	var jsonConfigPath string
	var environment, logLevel string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var passwordHashCost int

	fs := flag.NewFlagSet("sudoku-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP listen address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address [host]:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis", "", "Redis URL of the leaderboard")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Environment: development or production")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 15m, 1h)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			Environment:      environment,
			LogLevel:         logLevel,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{RedisURL: redisURL},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP address.
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

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
