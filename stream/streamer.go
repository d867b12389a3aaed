package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/mathanim/internal/logging"
)

// ErrTimeout is returned when the broker does not acknowledge in time.
var ErrTimeout = errors.New("mqtt operation timed out")

// ControlMessage is sent by viewers on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

// Streamer publishes encoded frames over MQTT.
type Streamer struct {
	config Config
	client mqtt.Client
	skip   atomic.Bool
}

// NewStreamer creates a Streamer publishing through client.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config.WithDefaults()
	s.client = client
	return s
}

// RenderFrame publishes the binary encoding of f to the frames topic.
func (s *Streamer) RenderFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	m := s.config.Mqtt
	token := s.client.Publish(m.Topics.Frames, m.QoS, m.Retain, b)
	if !token.WaitTimeout(m.Timeout) {
		return fmt.Errorf("%w: publish frame %d to %s", ErrTimeout, f.Index, m.Topics.Frames)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame %d: %w", f.Index, err)
	}
	return nil
}

// Subscribe listens on the control topic. A message of type "skip" ends
// the current wait early.
func (s *Streamer) Subscribe() error {
	m := s.config.Mqtt
	token := s.client.Subscribe(m.Topics.Control, m.QoS, s.handleControl)
	if !token.WaitTimeout(m.Timeout) {
		return fmt.Errorf("%w: subscribe to %s", ErrTimeout, m.Topics.Control)
	}
	return token.Error()
}

func (s *Streamer) handleControl(_ mqtt.Client, msg mqtt.Message) {
	var c ControlMessage
	if err := json.Unmarshal(msg.Payload(), &c); err != nil {
		logging.Logger().Warn("bad control message", "topic", msg.Topic(), "err", err)
		return
	}
	logging.Logger().Info("control message", "type", c.Type)
	if c.Type == "skip" {
		s.skip.Store(true)
	}
}

// SkipRequested reports, once, whether a viewer asked to skip ahead. It
// fits as the stop condition of a wait.
func (s *Streamer) SkipRequested() bool {
	return s.skip.Swap(false)
}
