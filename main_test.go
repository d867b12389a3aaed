package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testScript = `
mobjects:
  - name: box
    shape: square
  - name: row
    children:
      - {name: left, shape: dot}
      - {name: right, shape: dot, position: [1, 0]}
timeline:
  - play: create
    target: box
    run_time: 0.5
  - play: lagged_start_map
    target: row
    each: fade_in
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
scene:
  fps: 12
render:
  dir: out
  every: 3
mqtt:
  url: tcp://localhost:1883
  timeout: 5s
preview:
  addr: ":3000"
log:
  level: warn
`)
	a := newApp()
	if err := a.readConfig(path, true); err != nil {
		t.Fatalf("readConfig: %v", err)
	}
	c := a.config
	if c.Scene.FPS != 12 || c.Scene.Width != 960 {
		t.Errorf("scene = %+v", c.Scene)
	}
	if c.Render.Dir != "out" || c.Render.Every != 3 {
		t.Errorf("render = %+v", c.Render)
	}
	if c.Stream.Mqtt.URL != "tcp://localhost:1883" || c.Stream.Mqtt.Timeout != 5*time.Second {
		t.Errorf("mqtt = %+v", c.Stream.Mqtt)
	}
	if c.Preview.Addr != ":3000" || c.Log.Level != "warn" {
		t.Errorf("preview = %+v, log = %+v", c.Preview, c.Log)
	}
}

func TestReadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	a := newApp()
	if err := a.readConfig(missing, false); err != nil {
		t.Errorf("optional config: %v", err)
	}
	if err := a.readConfig(missing, true); err == nil {
		t.Error("required config missing but no error")
	}
}

func TestSetupLoggingRejectsLevel(t *testing.T) {
	a := newApp()
	a.config.Log.Level = "loud"
	if err := a.setupLogging(false); err == nil {
		t.Error("unknown level accepted")
	}
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	scriptPath := writeFile(t, dir, "scene.yaml", testScript)
	a := newApp()
	a.config.Scene.FPS = 4
	a.config.Scene.Width, a.config.Scene.Height = 64, 36
	a.config.Render.Dir = filepath.Join(dir, "frames")
	a.config.Render.Every = 2

	if err := a.run(context.Background(), scriptPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := filepath.Glob(filepath.Join(a.config.Render.Dir, "frame_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	// 0.5s create plus the 2s lagged fade at 4 fps is 10 frames.
	if len(files) != 5 {
		t.Errorf("%d frames written, want 5: %v", len(files), files)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.yaml", testScript)
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"inspect", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"box", "row", "left", "right", "Create(box)", "LaggedStartMap", "FadeIn(left)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestRateFuncsCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ratefuncs"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "there_and_back") {
		t.Errorf("missing there_and_back:\n%s", out.String())
	}
}
