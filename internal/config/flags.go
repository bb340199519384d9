package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (sqlite path or postgres URL)
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-log-file client log file path
//	-submitter simulated | remote
//	-submit-delay simulated submission latency (e.g. "1500ms")
//	-navigate-delay pause before navigating after success (e.g. "2s")
//	-submit-timeout bound on one submission attempt (e.g. "10s")
//	-forms-dir directory with YAML form definitions
//	-server-url intake server base URL used by the client
//	-request-timeout server request timeout (e.g. "30s")
//	-adapter-timeout client request timeout (e.g. "10s")
//
// Duration flags set to 0 are indistinguishable from unset ones and keep the
// value of later sources or the default.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var logLevel, logFile string
	var submitter string
	var submitDelay, navigateDelay, submitTimeout time.Duration
	var formsDir string
	var serverURL string
	var requestTimeout, adapterTimeout time.Duration

	fs := flag.NewFlagSet("form-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&submitter, "submitter", "", "Submitter: simulated or remote")
	fs.DurationVar(&submitDelay, "submit-delay", 0, "Simulated submission delay, below the timeout (e.g., 1500ms; 0 keeps the default)")
	fs.DurationVar(&navigateDelay, "navigate-delay", 0, "Delay before navigation (e.g., 2s; 0 keeps the default, use 1ms for none)")
	fs.DurationVar(&submitTimeout, "submit-timeout", 0, "Submission timeout (e.g., 10s; 0 keeps the default)")
	fs.StringVar(&formsDir, "forms-dir", "", "Directory with YAML form definitions")
	fs.StringVar(&serverURL, "server-url", "", "Intake server URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Forms: Forms{
			Submitter:      submitter,
			SubmitDelay:    submitDelay,
			NavigateDelay:  navigateDelay,
			SubmitTimeout:  submitTimeout,
			DefinitionsDir: formsDir,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: adapterTimeout,
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
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
