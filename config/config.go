// Package config holds the toolkit runtime configuration: the default
// time zone and the logging setup. Values come from an optional YAML
// file overridden by KTB_-prefixed environment variables.
package config

import (
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/karatsuba/toolkit/chrono"
	"github.com/karatsuba/toolkit/logzer"
)

var (
	// EnvPrefix defines name prefix for environment variables
	EnvPrefix = "KTB_"
	// ConfigEnv defines environment variable for config file path,
	// overrides the ConfigName
	ConfigEnv = "KTB_CONFIG"
	// ConfigName defines default filename for look in work directory
	// if ConfigEnv is empty
	ConfigName = "ktb_config.yaml"
)

// LogLevel defines levels in logrus-style
type LogLevel int

// Enum levels
const (
	Error LogLevel = iota
	Warn
	Info
	Debug
	Trace
)

func (l LogLevel) String() string {
	return [...]string{"Error", "Warn", "Info", "Debug", "Trace"}[l]
}

// Config defines the toolkit configuration,
// see defaults() for the baseline values
type Config struct {
	// TimeZone is the default zone for calendar values constructed
	// without an explicit zone; empty keeps the system local zone
	TimeZone string `env:"TIMEZONE" yaml:"timeZone"`

	// LogFile accepts file path to log instead of stdout
	LogFile        string `env:"LOGFILE" yaml:"logFile"`
	LogFileMaxSize int64  `env:"LOGFILEMAXSIZE" yaml:"logFileMaxSize"`
	// Log files are rotated count times before being removed.
	// If count is 0, old versions are removed rather than rotated.
	LogFileRotate int      `env:"LOGFILEROTATE" yaml:"logFileRotate"`
	LogLevel      LogLevel `env:"LOGLEVEL" yaml:"logLevel"`
	LogColors     bool     `env:"LOGCOLORS" yaml:"logColors"`
	LogTimeFormat string   `env:"LOGTIMEFORMAT" yaml:"logTimeFormat"`
}

var (
	once sync.Once
	cfg  *Config
)

func defaults() Config {
	return Config{
		LogLevel:       Info,
		LogFileMaxSize: 10 * 1024 * 1024,
		LogFileRotate:  5,
		LogTimeFormat:  time.RFC3339,
	}
}

// GetConfig implements Singleton pattern
func GetConfig() *Config {
	once.Do(func() {
		c := defaults()
		if err := c.loadFile(configPath()); err != nil {
			log.Warn().Err(err).Msg("could not load config file")
		}
		if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
			log.Warn().Err(err).Msg("could not parse environment")
		}
		cfg = &c
		cfg.initLogger()
		cfg.applyTimeZone()
	})
	return cfg
}

func configPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return ConfigName
	}
	return wd + string(os.PathSeparator) + ConfigName
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyTimeZone() {
	if c.TimeZone == "" {
		return
	}
	if err := chrono.SetDefaultZone(c.TimeZone); err != nil {
		log.Warn().Err(err).Str("timeZone", c.TimeZone).
			Msg("could not apply default time zone")
	}
}

func (c *Config) initLogger() {
	if c.LogLevel > Trace {
		c.LogLevel = Trace
	}
	lvl := [...]zerolog.Level{3, 2, 1, 0, -1}[c.LogLevel]
	opts := []logzer.Option{
		logzer.WithColors(c.LogColors),
		logzer.WithLevel(lvl),
		logzer.WithTimeFormat(c.LogTimeFormat),
	}
	if c.LogFile != "" {
		opts = append(opts, logzer.WithLogFile(&logzer.LogFile{
			FilePath: c.LogFile,
			MaxSize:  c.LogFileMaxSize,
			Rotate:   c.LogFileRotate,
		}))
	}

	w := logzer.NewLoggerWriter(opts...)
	log.Logger = zerolog.New(w).
		With().Timestamp().Caller().
		Logger()
	/* set as standard logger output */
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}
