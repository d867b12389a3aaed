package stream

import "time"

// Config describes the MQTT broker frames are streamed to.
type Config struct {
	Mqtt struct {
		URL      string        `yaml:"url"`
		Username string        `yaml:"username"`
		Password string        `yaml:"password"`
		ClientID string        `yaml:"client_id"`
		QoS      byte          `yaml:"qos"`
		Retain   bool          `yaml:"retain"`
		Timeout  time.Duration `yaml:"timeout"`
		Topics   struct {
			Frames  string `yaml:"frames"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
}

// Enabled reports whether a broker is configured.
func (c Config) Enabled() bool {
	return c.Mqtt.URL != ""
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "mathanim"
	}
	if c.Mqtt.Timeout <= 0 {
		c.Mqtt.Timeout = 2 * time.Second
	}
	if c.Mqtt.QoS > 2 {
		c.Mqtt.QoS = 2
	}
	if c.Mqtt.Topics.Frames == "" {
		c.Mqtt.Topics.Frames = "mathanim/frames"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "mathanim/control"
	}
	return c
}
