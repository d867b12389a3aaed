package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/mathanim/api"
	"github.com/matt-g-everett/mathanim/internal/logging"
	"github.com/matt-g-everett/mathanim/render"
	"github.com/matt-g-everett/mathanim/scene"
	"github.com/matt-g-everett/mathanim/script"
	"github.com/matt-g-everett/mathanim/stream"
)

type config struct {
	Scene   scene.Config  `yaml:"scene"`
	Render  render.Config `yaml:"render"`
	Stream  stream.Config `yaml:",inline"`
	Preview api.Config    `yaml:"preview"`
	Log     struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

type app struct {
	config     config
	log        *slog.Logger
	client     mqtt.Client
	streamer   *stream.Streamer
	preview    *api.Api
	controller *stream.Controller
}

func newApp() *app {
	a := new(app)
	a.config.Scene = scene.DefaultConfig()
	a.log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	return a
}

// readConfig loads the YAML config. A missing file is only an error when
// required is set.
func (a *app) readConfig(configPath string, required bool) error {
	f, err := os.Open(configPath)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&a.config); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	return nil
}

// setupLogging installs a text logger at the configured level, or at debug
// when verbose is set.
func (a *app) setupLogging(verbose bool) error {
	level, err := logging.ParseLevel(a.config.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	a.log = slog.New(handler)
	scene.SetLogger(a.log)
	mqtt.ERROR = slog.NewLogLogger(handler, slog.LevelError)
	mqtt.WARN = slog.NewLogLogger(handler, slog.LevelWarn)
	return nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.log.Info("Connected", "broker", a.config.Stream.Mqtt.URL)
	if err := a.streamer.Subscribe(); err != nil {
		a.log.Warn("control subscription failed", "err", err)
	}
}

// setupOutputs wires every configured renderer into the controller.
func (a *app) setupOutputs(ctx context.Context) error {
	sc := a.config.Scene.WithDefaults()
	raster, err := render.NewRasterizer(render.View{
		Width:      sc.Width,
		Height:     sc.Height,
		FrameWidth: sc.FrameWidth,
		Background: sc.Background,
	})
	if err != nil {
		return err
	}
	a.controller = stream.NewController()

	if a.config.Render.Enabled() {
		p, err := render.NewPNG(a.config.Render, raster)
		if err != nil {
			return err
		}
		a.controller.Add(p, 1)
	}

	if a.config.Preview.Enabled() {
		a.preview = api.NewApi(a.config.Preview, raster)
		a.controller.Add(a.preview, 1)
		go func() {
			if err := a.preview.Serve(ctx); err != nil {
				a.log.Error("preview server stopped", "err", err)
			}
		}()
	}

	if a.config.Stream.Enabled() {
		m := a.config.Stream.WithDefaults().Mqtt
		options := mqtt.NewClientOptions().
			AddBroker(m.URL).
			SetClientID(m.ClientID).
			SetUsername(m.Username).
			SetPassword(m.Password).
			SetKeepAlive(30 * time.Second).
			SetPingTimeout(5 * time.Second).
			SetOnConnectHandler(a.handleOnConnect)
		a.client = mqtt.NewClient(options)
		a.streamer = stream.NewStreamer(a.config.Stream, a.client)

		token := a.client.Connect()
		if !token.WaitTimeout(m.Timeout) {
			return fmt.Errorf("%w: connect to %s", stream.ErrTimeout, m.URL)
		}
		if err := token.Error(); err != nil {
			return err
		}
		a.controller.Add(a.streamer, 1)
	}

	if a.controller.Len() == 0 {
		a.log.Warn("no outputs configured, frames are discarded")
	}
	return nil
}

func (a *app) close() {
	if a.client != nil && a.client.IsConnected() {
		a.client.Disconnect(250)
	}
}

func (a *app) skip() func() bool {
	if a.streamer == nil {
		return nil
	}
	return a.streamer.SkipRequested
}

// run plays the script at path through every configured output.
func (a *app) run(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	s, err := script.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := a.setupOutputs(ctx); err != nil {
		return err
	}
	defer a.close()

	sc := scene.New(a.config.Scene, a.controller)
	start := time.Now()
	err = s.Run(ctx, sc, a.skip())
	a.log.Info("Finished", "frames", sc.FrameIndex(), "scene_time", sc.Time(), "elapsed", time.Since(start))
	return err
}
