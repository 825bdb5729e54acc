package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-port server listen port
//	-config-server-url remote configuration service base URL
//	-config-server-token remote configuration service token
//	-secret-key admin token signing key
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debug enable debug logging
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, argsFunc())
}

// argsFunc is swapped in tests to avoid consuming the test binary's flags.
var argsFunc = func() []string { return os.Args[1:] }

// parseFlags binds the configuration flags on fs and parses args into a
// StructuredConfig. Split out from [ParseFlags] so tests can run it
// against a fresh [flag.FlagSet].
func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var port int
	var debug bool
	var requestTimeout time.Duration
	var configServerURL string
	var configServerToken string
	var secretKey string
	var jsonConfigPath string

	fs.IntVar(&port, "port", 0, "HTTP server port")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&configServerURL, "config-server-url", "", "Remote config service base URL")
	fs.StringVar(&configServerToken, "config-server-token", "", "Remote config service token")
	fs.StringVar(&secretKey, "secret-key", "", "Admin token signing key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Server: Server{
			Port:           port,
			Debug:          debug,
			RequestTimeout: requestTimeout,
		},
		ConfigServer: ConfigServer{
			URL:   configServerURL,
			Token: configServerToken,
		},
		App: App{
			SecretKey: secretKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}
