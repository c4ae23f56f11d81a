package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCaption(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if c.Output.Dir == "" {
		return errors.New("output.dir must be set")
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("output.jpeg_quality must be between 1 and 100, got %d", c.Output.JPEGQuality)
	}
	return nil
}

func (c *Config) validateCaption() error {
	if c.Caption.BackgroundAlpha < 0 || c.Caption.BackgroundAlpha > 255 {
		return fmt.Errorf("caption.background_alpha must be between 0 and 255, got %d", c.Caption.BackgroundAlpha)
	}
	if c.Caption.FontPath == "" {
		return nil
	}
	info, err := os.Stat(c.Caption.FontPath)
	if err != nil {
		return fmt.Errorf("caption.font_path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("caption.font_path %q is a directory", c.Caption.FontPath)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
