package errors

// Common error codes
const (
	// Configuration errors
	ErrInvalidConfig  ErrorCode = "invalid_configuration"
	ErrBindFlags      ErrorCode = "bind_flags_failed"
	ErrReadConfig     ErrorCode = "read_config_failed"
	ErrInvalidVariant ErrorCode = "invalid_variant"
	ErrInvalidBounds  ErrorCode = "invalid_bounds_mode"
	ErrInvalidWindow  ErrorCode = "invalid_window_size"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrOpenLogFile     ErrorCode = "open_log_file_failed"

	// Application errors
	ErrInitApp     ErrorCode = "init_app_failed"
	ErrMainLoop    ErrorCode = "main_loop_failed"
	ErrFrontend    ErrorCode = "frontend_failed"
	ErrSamplerLoop ErrorCode = "sampler_loop_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrReadConfig:      "Failed to read config file",
	ErrInvalidVariant:  "Invalid display variant",
	ErrInvalidBounds:   "Invalid bounds mode",
	ErrInvalidWindow:   "Invalid window size",
	ErrInvalidLogLevel: "Invalid log level",
	ErrOpenLogFile:     "Failed to open log file",
	ErrInitApp:         "Failed to initialize application",
	ErrMainLoop:        "Error in main loop",
	ErrFrontend:        "Frontend exited with error",
	ErrSamplerLoop:     "Sampler loop exited with error",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
