package scene

// Config describes the scene's timing and camera.
type Config struct {
	FPS        float64 `yaml:"fps"`
	Background string  `yaml:"background"`
	// FrameWidth is the visible width in scene units.
	FrameWidth float64 `yaml:"frame_width"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

// DefaultConfig is 30 fps, 960x540 pixels, 14.2 units wide on black.
func DefaultConfig() Config {
	return Config{
		FPS:        30,
		Background: "#000000",
		FrameWidth: 14.2,
		Width:      960,
		Height:     540,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.Background == "" {
		c.Background = d.Background
	}
	if c.FrameWidth <= 0 {
		c.FrameWidth = d.FrameWidth
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}
