package config

const (
	defaultOutDir        = "."
	defaultLogDir        = "~/.local/share/tickdown/logs"
	defaultStateDir      = "~/.local/share/tickdown"
	defaultWidth         = 640
	defaultHeight        = 80
	defaultFrames        = 30
	defaultColor         = "ffe600"
	defaultBackground    = "000000"
	defaultName          = "default"
	defaultTimezone      = "uk"
	defaultPassedMessage = "Date has passed!"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Render bounds. Out-of-range values are clamped, not rejected. Note that the
// default height (80) sits below MinHeight, so the effective default canvas
// height is always 150; this mirrors the documented invocation defaults.
const (
	MinWidth  = 150
	MaxWidth  = 1000
	MinHeight = 150
	MaxHeight = 500
	MinFrames = 1
	MaxFrames = 90
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutDir:   defaultOutDir,
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Render: Render{
			Width:         defaultWidth,
			Height:        defaultHeight,
			Frames:        defaultFrames,
			Color:         defaultColor,
			Background:    defaultBackground,
			Name:          defaultName,
			Timezone:      defaultTimezone,
			PassedMessage: defaultPassedMessage,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
