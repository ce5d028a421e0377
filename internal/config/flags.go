// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-https-address https server address in format [host]:[port]
//	-https-port public https port used in redirects
//	-tls-cert / -tls-key PEM files for the https listener
//	-redirect-https redirect plain http requests to https
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env environment name
//	-app-version application version
//	-log-level log level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-readiness-timeout timeout of each readiness check
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("validations-api", flag.ContinueOnError)

	var httpAddress, httpsAddress, grpcAddress NetAddress
	var httpsPort int
	var tlsCert, tlsKey string
	var redirectHTTPS bool
	var databaseDSN string
	var jsonConfigPath string
	var environment, appVersion, logLevel string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, shutdownTimeout, readinessTimeout time.Duration

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&httpsAddress, "https-address", "HTTPS net address host:port")
	fs.IntVar(&httpsPort, "https-port", 0, "Public HTTPS port used in redirects")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS key file")
	fs.BoolVar(&redirectHTTPS, "redirect-https", false, "Redirect plain HTTP requests to HTTPS")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Environment name (development, production)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&readinessTimeout, "readiness-timeout", 0, "Timeout of each readiness check")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:   environment,
			Version:       appVersion,
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:      httpAddress.String(),
			HTTPSAddress:     httpsAddress.String(),
			HTTPSPort:        httpsPort,
			TLSCertFile:      tlsCert,
			TLSKeyFile:       tlsKey,
			RedirectHTTPS:    redirectHTTPS,
			GRPCAddress:      grpcAddress.String(),
			RequestTimeout:   requestTimeout,
			ShutdownTimeout:  shutdownTimeout,
			ReadinessTimeout: readinessTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or a valid IP address.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
