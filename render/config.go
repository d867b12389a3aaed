package render

// Config selects where and how often frames are written as images.
type Config struct {
	Dir       string `yaml:"dir"`
	Prefix    string `yaml:"prefix"`
	Every     int    `yaml:"every"`
	Thumbnail int    `yaml:"thumbnail"`
}

// Enabled reports whether PNG output was configured.
func (c Config) Enabled() bool {
	return c.Dir != ""
}

// WithDefaults fills in unset fields.
func (c Config) WithDefaults() Config {
	if c.Prefix == "" {
		c.Prefix = "frame"
	}
	if c.Every < 1 {
		c.Every = 1
	}
	if c.Thumbnail < 0 {
		c.Thumbnail = 0
	}
	return c
}
