package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutDir) == "" {
		c.Paths.OutDir = defaultOutDir
	}
	if c.Paths.OutDir, err = expandPath(c.Paths.OutDir); err != nil {
		return fmt.Errorf("paths.out_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() {
	c.Render.Width = clampInt(c.Render.Width, MinWidth, MaxWidth)
	c.Render.Height = clampInt(c.Render.Height, MinHeight, MaxHeight)
	c.Render.Frames = clampInt(c.Render.Frames, MinFrames, MaxFrames)

	c.Render.Color = normalizeHex(c.Render.Color, defaultColor)
	c.Render.Background = normalizeHex(c.Render.Background, defaultBackground)

	c.Render.Name = strings.TrimSpace(c.Render.Name)
	if c.Render.Name == "" {
		c.Render.Name = defaultName
	}

	c.Render.Timezone = strings.ToLower(strings.TrimSpace(c.Render.Timezone))
	if c.Render.Timezone == "" {
		c.Render.Timezone = defaultTimezone
	}

	if strings.TrimSpace(c.Render.PassedMessage) == "" {
		c.Render.PassedMessage = defaultPassedMessage
	}
}

// NormalizeRender re-applies the render clamps, color normalization, and
// validation. Commands call this after layering flag overrides on top of a
// loaded config so flags get the same silent-clamp behavior as the file.
func (c *Config) NormalizeRender() error {
	c.normalizeRender()
	return c.Validate()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func normalizeHex(value, fallback string) string {
	trimmed := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "#"))
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
