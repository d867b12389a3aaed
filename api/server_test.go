package api

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/render"
	"github.com/matt-g-everett/mathanim/stream"
)

func newTestApi(t *testing.T, config Config) *Api {
	t.Helper()
	r, err := render.NewRasterizer(render.View{Width: 64, Height: 36, FrameWidth: 8, Background: "#101010"})
	if err != nil {
		t.Fatal(err)
	}
	return NewApi(config, r)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNoFrameYet(t *testing.T) {
	a := newTestApi(t, Config{})
	for _, path := range []string{"/frame", "/frame.png"} {
		if rec := get(t, a.Handler(), path); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
		}
	}
}

func TestFrameJSON(t *testing.T) {
	a := newTestApi(t, Config{})
	sq := mobject.Square(2)
	sq.SetName("box")
	if err := a.RenderFrame(stream.Capture(7, 0.25, []*mobject.Mobject{sq})); err != nil {
		t.Fatal(err)
	}

	rec := get(t, a.Handler(), "/frame")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /frame = %d", rec.Code)
	}
	var got stream.Frame
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Index != 7 || got.Time != 0.25 || len(got.Nodes) != 1 || got.Nodes[0].Name != "box" {
		t.Errorf("frame = %+v", got)
	}
	if len(got.Nodes[0].Points) != sq.PointCount() {
		t.Errorf("%d points, want %d", len(got.Nodes[0].Points), sq.PointCount())
	}
}

func TestFramePNG(t *testing.T) {
	a := newTestApi(t, Config{})
	_ = a.RenderFrame(stream.Capture(0, 0, []*mobject.Mobject{mobject.Circle(1)}))

	rec := get(t, a.Handler(), "/frame.png")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("GET /frame.png = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 36 {
		t.Errorf("image is %v", b)
	}
}

func TestWithoutRasterizer(t *testing.T) {
	a := NewApi(Config{}, nil)
	_ = a.RenderFrame(&stream.Frame{})
	if rec := get(t, a.Handler(), "/frame.png"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /frame.png = %d, want 404", rec.Code)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>preview</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApi(t, Config{Static: dir})
	rec := get(t, a.Handler(), "/")
	if rec.Code != http.StatusOK || rec.Body.String() != "<p>preview</p>" {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}
}

func TestLatestWins(t *testing.T) {
	a := NewApi(Config{}, nil)
	if a.Latest() != nil {
		t.Fatal("Latest before any frame")
	}
	f1, f2 := &stream.Frame{Index: 1}, &stream.Frame{Index: 2}
	_ = a.RenderFrame(f1)
	_ = a.RenderFrame(f2)
	if a.Latest() != f2 {
		t.Errorf("Latest = %+v", a.Latest())
	}
}
