package config

const (
	defaultConfigPath      = "~/.config/photostrip/config.toml"
	projectConfigFile      = "photostrip.toml"
	defaultEnvFile         = ".env"
	defaultOutputDir       = "."
	defaultJPEGQuality     = 75
	defaultBackgroundAlpha = 175
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	outputExtension        = ".jpg"
	logFileName            = "photostrip.log"
)

// Environment variables that override file values when set.
const (
	EnvFont      = "PHOTOSTRIP_FONT"
	EnvOutputDir = "PHOTOSTRIP_OUTPUT_DIR"
	EnvLogLevel  = "PHOTOSTRIP_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Dir:         defaultOutputDir,
			JPEGQuality: defaultJPEGQuality,
		},
		Caption: Caption{
			BackgroundAlpha: defaultBackgroundAlpha,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
