package config

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath  string
	envPrefix   string
	searchPaths []string
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "CPUMON"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithSearchPaths replaces the directories searched for cpumon.toml
func WithSearchPaths(paths ...string) Option {
	return func(o *options) error {
		o.searchPaths = paths
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}

// Variant selects the display layout and its window size
type Variant string

const (
	// VariantMinimal is a bare 10-sample plot.
	VariantMinimal Variant = "minimal"
	// VariantDashboard is the 60-sample plot with captions.
	VariantDashboard Variant = "dashboard"
)

func (v Variant) IsValid() bool {
	return v == VariantMinimal || v == VariantDashboard
}

// Window returns the default number of samples shown
func (v Variant) Window() int {
	if v == VariantMinimal {
		return 10
	}
	return 60
}

// Bounds returns the default y-axis mode
func (v Variant) Bounds() string {
	if v == VariantMinimal {
		return BoundsDynamic
	}
	return BoundsFixed
}

const (
	BoundsFixed   = "fixed"
	BoundsDynamic = "dynamic"
)
