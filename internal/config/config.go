package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/cpumon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = LogLevelWarning
	DefaultVariant  = VariantDashboard

	defaultEnvPrefix = "CPUMON"
	configName       = "cpumon"
	configType       = "toml"
)

type Config struct {
	Variant  Variant  `mapstructure:"variant"`
	Window   int      `mapstructure:"window"`
	Bounds   string   `mapstructure:"bounds"`
	Monitor  bool     `mapstructure:"monitor"`
	LogLevel LogLevel `mapstructure:"log_level"`
	LogFile  string   `mapstructure:"log_file"`
	Debug    bool     `mapstructure:"debug"`
	Verbose  bool     `mapstructure:"verbose"`

	logLevelSet bool
}

// EffectiveLogLevel is the level to log at. Monitor mode writes its
// summaries at info, so it raises the default level unless one was set.
func (c *Config) EffectiveLogLevel() LogLevel {
	if c.Monitor && !c.logLevelSet {
		return LogLevelInfo
	}
	return c.LogLevel
}

// flag name -> config key
var flagKeys = map[string]string{
	"variant":   "variant",
	"window":    "window",
	"bounds":    "bounds",
	"monitor":   "monitor",
	"log-level": "log_level",
	"log-file":  "log_file",
	"debug":     "debug",
	"verbose":   "verbose",
}

// Load reads configuration from defaults, the config file, the
// environment and args, in increasing order of precedence.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	setDefaults(v)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := o.configPath
	if f := fs.Lookup("config"); f.Changed {
		path = f.Value.String()
	} else if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if err := readConfigFile(v, path, o.searchPaths); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	config.logLevelSet = fs.Lookup("log-level").Changed ||
		v.InConfig("log_level") ||
		os.Getenv(o.envPrefix+"_LOG_LEVEL") != "" ||
		config.Debug || config.Verbose

	if config.Debug {
		config.LogLevel = LogLevelDebug
	} else if config.Verbose && config.LogLevel == DefaultLogLevel {
		config.LogLevel = LogLevelInfo
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Window == 0 {
		config.Window = config.Variant.Window()
	}
	if config.Bounds == "" {
		config.Bounds = config.Variant.Bounds()
	}

	return config, nil
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.String("config", "", "Path to a TOML config file")
	fs.String("variant", string(DefaultVariant), "Display variant: minimal or dashboard")
	fs.Int("window", 0, "Number of samples shown (0 uses the variant default)")
	fs.String("bounds", "", "Y-axis bounds: fixed or dynamic (empty uses the variant default)")
	fs.Bool("monitor", false, "Log utilization instead of drawing a chart")
	fs.String("log-level", string(DefaultLogLevel), "Log level: debug, info, warning, error (monitor mode defaults to info)")
	fs.String("log-file", "", "Write logs to this file while the chart is shown")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")

	return fs
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("variant", string(DefaultVariant))
	v.SetDefault("window", 0)
	v.SetDefault("bounds", "")
	v.SetDefault("monitor", false)
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
}

func readConfigFile(v *viper.Viper, path string, searchPaths []string) error {
	errFactory := errors.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if searchPaths == nil {
		searchPaths = defaultSearchPaths()
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

func defaultSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, configName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", configName))
	}

	return append(paths, "/etc")
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !c.Variant.IsValid() {
		return errFactory.Wrap(errors.ErrInvalidConfig, errFactory.WithData(errors.ErrInvalidVariant, c.Variant))
	}
	if c.Window < 0 {
		return errFactory.Wrap(errors.ErrInvalidConfig, errFactory.WithData(errors.ErrInvalidWindow, c.Window))
	}
	switch c.Bounds {
	case "", BoundsFixed, BoundsDynamic:
	default:
		return errFactory.Wrap(errors.ErrInvalidConfig, errFactory.WithData(errors.ErrInvalidBounds, c.Bounds))
	}
	if !c.LogLevel.IsValid() {
		return errFactory.Wrap(errors.ErrInvalidConfig, errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel))
	}

	return nil
}
