package connector

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/pipelined/connector/log"
	"github.com/pipelined/connector/metric"
)

// CachingEnv is the environment variable which overrides the caching
// default, see ConfigFromEnv.
const CachingEnv = "CONNECTOR_CACHING"

// Logger is a global interface for connector loggers.
type Logger = log.Logger

// Config is passed to connectors when they are built. The values are
// resolved at build time and not checked afterwards.
type Config struct {
	// Caching is used by outputs which don't specify caching explicitly.
	Caching bool
	// Logger receives debug messages about graph changes and errors that
	// cannot be returned during propagation.
	Logger Logger
	// Metrics are optional. Nil disables metering.
	Metrics *metric.Metrics
}

// DefaultConfig returns config with caching enabled and silent logger.
func DefaultConfig() Config {
	return Config{
		Caching: true,
		Logger:  defaultLogger,
	}
}

// fileConfig is the yaml representation of Config.
type fileConfig struct {
	Caching *bool `yaml:"caching"`
	Debug   bool  `yaml:"debug"`
	Log     bool  `yaml:"log"`
}

// LoadConfig reads yaml config file. Missing values are taken from
// DefaultConfig:
//	caching: false
//	log: true
//	debug: true
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return cfg, fmt.Errorf("invalid config %v: %w", path, err)
	}
	if fc.Caching != nil {
		cfg.Caching = *fc.Caching
	}
	if fc.Log || fc.Debug {
		cfg.Logger = log.New(fc.Debug)
	}
	return cfg, nil
}

// ConfigFromEnv overrides caching with CONNECTOR_CACHING environment
// variable if it's set to a valid boolean.
func ConfigFromEnv(cfg Config) Config {
	if caching, err := strconv.ParseBool(os.Getenv(CachingEnv)); err == nil {
		cfg.Caching = caching
	}
	return cfg
}

type silentLogger struct{}

func (silentLogger) Debug(args ...interface{}) {}

func (silentLogger) Info(args ...interface{}) {}

func (silentLogger) Error(args ...interface{}) {}

var defaultLogger silentLogger
