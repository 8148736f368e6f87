// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and an
// optional JSON file.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the HTTP server's listening address (ip:port).
	Port string `json:"server_address"`

	// FilePath is the path to the JSON lines storage file.
	FilePath string `json:"file_storage_path"`

	// DatabaseDSN holds the PostgreSQL connection string. It takes
	// precedence over FilePath.
	DatabaseDSN string `json:"database_dsn"`

	// EnablePprof starts the pprof server on localhost:6060.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS serves HTTP on :443 with autocert certificates.
	EnableHTTPS bool `json:"enable_https"`

	// TrustedSubnet is the CIDR allowed to read internal stats.
	TrustedSubnet string `json:"trusted_subnet"`

	// GRPCPort is the gRPC listening port, 0 disables gRPC.
	GRPCPort int `json:"grpc_port"`

	LogLevel string `json:"log_level"`

	// JWTSecret signs user tokens.
	JWTSecret string `json:"jwt_secret"`

	// Config is the path of the JSON configuration file.
	Config string `json:"-"`
}

// Parse reads the process arguments and environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:], os.Getenv)
}

// ParseArgs builds Options from args and getenv. Environment variables win
// over flags, flags win over the JSON file named by -c or CONFIG.
func ParseArgs(args []string, getenv func(string) string) (*Options, error) {
	options := &Options{}

	fs := flag.NewFlagSet("links", flag.ContinueOnError)
	fs.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&options.FilePath, "f", "", "path to storage file")
	fs.StringVar(&options.DatabaseDSN, "d", "", "db address")
	fs.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	fs.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	fs.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet in CIDR notation")
	fs.IntVar(&options.GRPCPort, "g", 3200, "grpc port")
	fs.StringVar(&options.LogLevel, "l", "info", "log level")
	fs.StringVar(&options.JWTSecret, "k", "supersecretkey", "jwt signing key")
	fs.StringVar(&options.Config, "c", "", "path to json config")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c := getenv("CONFIG"); c != "" {
		options.Config = c
	}

	if options.Config != "" {
		if err := options.applyFile(fs); err != nil {
			return nil, err
		}
	}

	if err := options.applyEnv(getenv); err != nil {
		return nil, err
	}

	return options, nil
}

// applyFile fills every option that was not given on the command line.
func (o *Options) applyFile(fs *flag.FlagSet) error {
	data, err := os.ReadFile(o.Config)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var file Options
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", o.Config, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["a"] && file.Port != "" {
		o.Port = file.Port
	}
	if !set["f"] && file.FilePath != "" {
		o.FilePath = file.FilePath
	}
	if !set["d"] && file.DatabaseDSN != "" {
		o.DatabaseDSN = file.DatabaseDSN
	}
	if !set["p"] {
		o.EnablePprof = o.EnablePprof || file.EnablePprof
	}
	if !set["s"] {
		o.EnableHTTPS = o.EnableHTTPS || file.EnableHTTPS
	}
	if !set["t"] && file.TrustedSubnet != "" {
		o.TrustedSubnet = file.TrustedSubnet
	}
	if !set["g"] && file.GRPCPort != 0 {
		o.GRPCPort = file.GRPCPort
	}
	if !set["l"] && file.LogLevel != "" {
		o.LogLevel = file.LogLevel
	}
	if !set["k"] && file.JWTSecret != "" {
		o.JWTSecret = file.JWTSecret
	}

	return nil
}

func (o *Options) applyEnv(getenv func(string) string) error {
	if serverAddress := getenv("SERVER_ADDRESS"); serverAddress != "" {
		o.Port = serverAddress
	}

	if storagePath := getenv("FILE_STORAGE_PATH"); storagePath != "" {
		o.FilePath = storagePath
	}

	if dsn := getenv("DATABASE_DSN"); dsn != "" {
		o.DatabaseDSN = dsn
	}

	if enableHTTPS := getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			return fmt.Errorf("ENABLE_HTTPS: %w", err)
		}
		o.EnableHTTPS = httpsMode
	}

	if subnet := getenv("TRUSTED_SUBNET"); subnet != "" {
		o.TrustedSubnet = subnet
	}

	if port := getenv("GRPC_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("GRPC_PORT: %w", err)
		}
		o.GRPCPort = p
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		o.LogLevel = level
	}

	if secret := getenv("JWT_SECRET"); secret != "" {
		o.JWTSecret = secret
	}

	return nil
}
