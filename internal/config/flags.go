// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// flagBindings keeps the flag targets that need post-processing after the
// flag set has been parsed.
type flagBindings struct {
	cfg         *StructuredConfig
	httpAddress NetAddress
	grpcAddress NetAddress
}

// BindFlags registers all configuration flags on fs and returns a function
// that, once fs has been parsed, yields the config holding the flag values.
//
// Flags:
//
//	-a/--address          server address in format [host]:[port]
//	--grpc-address        grpc server address in format [host]:[port]
//	--remote              remote instance address for the remote command
//	-d/--dsn              settings database DSN
//	-b/--bundle-file      bundle metadata file
//	--commit-file         commit record file
//	--name                fallback display name
//	-c/--config           json file path with configs
//	--request-timeout     inbound request timeout (e.g. "30s", "1m")
//	--remote-timeout      outbound request timeout
//	--log-level           minimum log level
//	--log-file            log file of the terminal UI
func BindFlags(fs *pflag.FlagSet) func() *StructuredConfig {
	b := &flagBindings{cfg: &StructuredConfig{}}
	cfg := b.cfg

	fs.VarP(&b.httpAddress, "address", "a", "Net address host:port")
	fs.Var(&b.grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote instance address")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Settings database DSN")
	fs.StringVarP(&cfg.App.BundleFile, "bundle-file", "b", "", "Bundle metadata file (YAML or JSON)")
	fs.StringVar(&cfg.App.CommitFile, "commit-file", "", "Commit record file (YAML or JSON)")
	fs.StringVar(&cfg.App.Name, "name", "", "Fallback application display name")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file of the terminal UI")

	return func() *StructuredConfig {
		cfg.Server.HTTPAddress = b.httpAddress.String()
		cfg.Server.GRPCAddress = b.grpcAddress.String()
		return cfg
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
