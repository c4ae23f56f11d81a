package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeCaption(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeOutput() error {
	if value, ok := os.LookupEnv(EnvOutputDir); ok && strings.TrimSpace(value) != "" {
		c.Output.Dir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	if c.Output.JPEGQuality == 0 {
		c.Output.JPEGQuality = defaultJPEGQuality
	}
	return nil
}

func (c *Config) normalizeCaption() error {
	if value, ok := os.LookupEnv(EnvFont); ok && strings.TrimSpace(value) != "" {
		c.Caption.FontPath = value
	}
	c.Caption.FontPath = strings.TrimSpace(c.Caption.FontPath)
	if c.Caption.FontPath == "" {
		return nil
	}
	var err error
	if c.Caption.FontPath, err = expandPath(c.Caption.FontPath); err != nil {
		return fmt.Errorf("caption.font_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Dir = strings.TrimSpace(c.Logging.Dir)
	if c.Logging.Dir == "" {
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
