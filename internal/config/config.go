package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// EnvPrefix prefixes every environment override, e.g. URL_SHORTENER_HTTP_SERVER_PORT.
const EnvPrefix = "URL_SHORTENER"

type Config struct {
	Env        string     `yaml:"env" envconfig:"ENV"`
	BaseURL    string     `yaml:"base_url" envconfig:"BASE_URL"`
	HTTPServer HTTPServer `yaml:"http_server" envconfig:"HTTP_SERVER"`
	Log        Log        `yaml:"log" envconfig:"LOG"`
	Telemetry  Telemetry  `yaml:"telemetry" envconfig:"TELEMETRY"`
	CORS       CORS       `yaml:"cors" envconfig:"CORS"`
}

type HTTPServer struct {
	Port           int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" envconfig:"CERT_FILE"`
	KeyFile        string        `yaml:"key_file" envconfig:"KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Log struct {
	Level   string `yaml:"level" envconfig:"LEVEL"`
	JSON    bool   `yaml:"json" envconfig:"JSON"`
	Concise bool   `yaml:"concise" envconfig:"CONCISE"`
}

var defaultLog = Log{
	Level:   "info",
	Concise: true,
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps Level to a slog.Level, falling back to info.
func (l *Log) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

type Telemetry struct {
	Enabled     bool          `yaml:"enabled" envconfig:"ENABLED"`
	Endpoint    string        `yaml:"endpoint" envconfig:"ENDPOINT"`
	ServiceName string        `yaml:"service_name" envconfig:"SERVICE_NAME"`
	Interval    time.Duration `yaml:"interval" envconfig:"INTERVAL"`
}

var defaultTelemetry = Telemetry{
	Endpoint:    "http://localhost:4318",
	ServiceName: "url-shortener",
	Interval:    15 * time.Second,
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
}

var defaultCORS = CORS{
	AllowedOrigins: []string{"https://*", "http://*"},
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to apply environment overrides: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("unknown env %q", c.Env))
	}

	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}

	if c.HTTPServer.Port <= 0 {
		errs = append(errs, fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port))
	}

	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}

	if c.Env == EnvProd && (c.HTTPServer.CertFile == "" || c.HTTPServer.KeyFile == "") {
		errs = append(errs, errors.New("http_server.cert_file and http_server.key_file are required in prod"))
	}

	if c.Telemetry.Enabled && c.Telemetry.Interval <= 0 {
		errs = append(errs, fmt.Errorf("invalid telemetry.interval %s", c.Telemetry.Interval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080"
	cfg.HTTPServer = defaultHTTPServer
	cfg.Log = defaultLog
	cfg.Telemetry = defaultTelemetry
	cfg.CORS = defaultCORS
}
