package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/matt-g-everett/mathanim/internal/logging"
	"github.com/matt-g-everett/mathanim/stream"
)

// PNG writes frames as numbered PNG files.
type PNG struct {
	config  Config
	raster  *Rasterizer
	written int
}

// NewPNG creates the output directories and returns a renderer writing into
// them.
func NewPNG(config Config, raster *Rasterizer) (*PNG, error) {
	config = config.WithDefaults()
	if !config.Enabled() {
		return nil, errors.New("no output directory configured")
	}
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, err
	}
	if config.Thumbnail > 0 {
		if err := os.MkdirAll(filepath.Join(config.Dir, "thumbs"), 0o755); err != nil {
			return nil, err
		}
	}
	p := new(PNG)
	p.config = config
	p.raster = raster
	return p, nil
}

// Written returns the number of frames written so far.
func (p *PNG) Written() int { return p.written }

// Path returns the file frame index is written to.
func (p *PNG) Path(index int) string {
	return filepath.Join(p.config.Dir, fmt.Sprintf("%s_%05d.png", p.config.Prefix, index))
}

// ThumbnailPath returns the file the thumbnail of frame index is written to.
func (p *PNG) ThumbnailPath(index int) string {
	return filepath.Join(p.config.Dir, "thumbs", fmt.Sprintf("%s_%05d.png", p.config.Prefix, index))
}

// RenderFrame rasterizes every Nth frame and writes it out.
func (p *PNG) RenderFrame(f *stream.Frame) error {
	if f.Index%p.config.Every != 0 {
		return nil
	}
	img, err := p.raster.Rasterize(f)
	if err != nil {
		logging.Logger().Warn("frame drawn with errors", "frame", f.Index, "err", err)
	}
	if err := writePNG(p.Path(f.Index), img); err != nil {
		return err
	}
	if p.config.Thumbnail > 0 {
		if err := writePNG(p.ThumbnailPath(f.Index), Thumbnail(img, p.config.Thumbnail)); err != nil {
			return err
		}
	}
	p.written++
	logging.Logger().Debug("frame written", "frame", f.Index, "path", p.Path(f.Index))
	return nil
}

// Thumbnail scales img down to width pixels, keeping the aspect ratio.
func Thumbnail(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 {
		return img
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, img)
}

// EncodePNG writes img to w with fast compression.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
