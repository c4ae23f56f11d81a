package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"photostrip/internal/config"
	"photostrip/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig loads .env, then the configuration file, then applies the
// logging flags. Directories are not created here; compose creates the
// output directory when it writes.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := config.LoadEnvFile(""); err != nil {
			c.configErr = err
			return
		}
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if err := applyLogFlags(cfg, flagValue(c.logLevelFlag), flagValue(c.logFormatFlag)); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func applyLogFlags(cfg *config.Config, level, format string) error {
	if level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if format != "" {
		format = strings.ToLower(format)
		if format != "console" && format != "json" {
			return fmt.Errorf("--log-format must be console or json, got %q", format)
		}
		cfg.Logging.Format = format
	}
	return cfg.Validate()
}

// logger builds a run-scoped logger whose console output follows the
// command's stderr so tests can capture it.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config, runID string) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Console:  cmd.ErrOrStderr(),
		FilePath: cfg.LogFile(),
		RunID:    runID,
	})
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
