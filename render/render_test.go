package render

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
	"github.com/matt-g-everett/mathanim/stream"
)

var testView = View{Width: 160, Height: 90, FrameWidth: 16, Background: "#000000"}

func newTestRasterizer(t *testing.T) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer(testView)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	return r
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestNewRasterizerValidates(t *testing.T) {
	tests := []struct {
		name string
		view View
	}{
		{"zero width", View{Height: 10, FrameWidth: 1, Background: "#000000"}},
		{"zero frame", View{Width: 10, Height: 10, Background: "#000000"}},
		{"bad colour", View{Width: 10, Height: 10, FrameWidth: 1, Background: "black"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRasterizer(tt.view); err == nil {
				t.Errorf("NewRasterizer(%+v) succeeded", tt.view)
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	r := newTestRasterizer(t)
	tests := []struct {
		p    geom.Point
		x, y float64
	}{
		{geom.Origin, 80, 45},
		{geom.Pt(8, 0, 0), 160, 45},
		{geom.Pt(-8, 4.5, 0), 0, 0},
		{geom.Pt(1, -1, 3), 90, 55},
	}
	for _, tt := range tests {
		x, y := r.ToPixel(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("ToPixel(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestRasterizeFill(t *testing.T) {
	r := newTestRasterizer(t)
	sq := mobject.Square(4).SetFill(colorful.Color{R: 1}, 1)
	sq.SetStroke(mobject.White, 0)
	ring := mobject.Circle(1).Shift(geom.Pt(5, 0, 0))

	img, err := r.Rasterize(stream.Capture(0, 0, []*mobject.Mobject{sq, ring}))
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 90 {
		t.Fatalf("image is %v", b)
	}
	if c := nrgba(img, 80, 45); c.R < 240 || c.G > 15 || c.B > 15 {
		t.Errorf("centre of the square is %v, want red", c)
	}
	if c := nrgba(img, 5, 5); c.R > 15 || c.G > 15 || c.B > 15 {
		t.Errorf("corner is %v, want background", c)
	}
	// The ring is stroked only.
	if c := nrgba(img, 130, 45); c.R > 15 {
		t.Errorf("inside the ring is %v, want background", c)
	}
}

func TestPNGWritesEveryNth(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPNG(Config{Dir: dir, Every: 2, Thumbnail: 40}, newTestRasterizer(t))
	if err != nil {
		t.Fatalf("NewPNG: %v", err)
	}
	roots := []*mobject.Mobject{mobject.Square(2)}
	for i := 0; i < 5; i++ {
		if err := p.RenderFrame(stream.Capture(i, float64(i)/30, roots)); err != nil {
			t.Fatalf("RenderFrame(%d): %v", i, err)
		}
	}
	if p.Written() != 3 {
		t.Errorf("Written = %d, want 3", p.Written())
	}
	for i := 0; i < 5; i++ {
		_, err := os.Stat(p.Path(i))
		if want := i%2 == 0; want != (err == nil) {
			t.Errorf("frame %d on disk = %v, want %v", i, err == nil, want)
		}
	}
	if _, err := os.Stat(p.ThumbnailPath(4)); err != nil {
		t.Errorf("thumbnail missing: %v", err)
	}
}

func TestNewPNGNeedsDir(t *testing.T) {
	if _, err := NewPNG(Config{}, newTestRasterizer(t)); err == nil {
		t.Error("NewPNG without a directory succeeded")
	}
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 160, 90))
	got := Thumbnail(img, 32).Bounds()
	if got.Dx() != 32 || got.Dy() != 18 {
		t.Errorf("thumbnail is %v, want 32x18", got)
	}
	if Thumbnail(img, 0) != image.Image(img) {
		t.Error("zero width should return the source image")
	}
}
