package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mathanim/geom"
	"github.com/matt-g-everett/mathanim/mobject"
)

// ErrShortFrame is returned when decoding a truncated frame.
var ErrShortFrame = errors.New("frame data too short")

// Node is one mobject of a frame.
type Node struct {
	ID     uuid.UUID     `json:"id"`
	Parent uuid.UUID     `json:"parent"`
	Depth  int           `json:"depth"`
	Name   string        `json:"name,omitempty"`
	Points []geom.Point  `json:"points"`
	Style  mobject.Style `json:"-"`
	Stroke Paint         `json:"stroke"`
	Fill   Paint         `json:"fill"`
}

// Paint is a flattened colour, opacity and width.
type Paint struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Width   float64 `json:"width,omitempty"`
}

// Frame is a read-only snapshot of the displayed mobject trees.
type Frame struct {
	Index int     `json:"index"`
	Time  float64 `json:"time"`
	Nodes []Node  `json:"nodes"`
}

// Capture walks roots in order and copies every node's points and style.
func Capture(index int, t float64, roots []*mobject.Mobject) *Frame {
	f := new(Frame)
	f.Index = index
	f.Time = t
	for _, root := range roots {
		var parent uuid.UUID
		if p := root.Parent(); p != nil {
			parent = p.ID()
		}
		_ = root.Walk(func(m *mobject.Mobject, depth int) error {
			n := Node{
				ID:     m.ID(),
				Depth:  depth,
				Name:   m.Name(),
				Points: m.Points(),
				Style:  m.Style(),
			}
			if depth == 0 {
				n.Parent = parent
			} else {
				n.Parent = m.Parent().ID()
			}
			n.Stroke = Paint{Color: n.Style.StrokeColor.Clamped().Hex(), Opacity: n.Style.StrokeOpacity, Width: n.Style.StrokeWidth}
			n.Fill = Paint{Color: n.Style.FillColor().Clamped().Hex(), Opacity: n.Style.FillOpacity}
			f.Nodes = append(f.Nodes, n)
			return nil
		})
	}
	return f
}

const (
	frameHeaderSize = 4 + 8 + 2
	nodeHeaderSize  = 16 + 16 + 2 + 4
	pointSize       = 3 * 4
	nodeStyleSize   = 4 + 4 + 4
)

// MarshalBinary encodes the frame in little endian: index, time, node
// count, then per node its IDs, depth, points as float32 triples, stroke
// RGBA and width, and fill RGBA.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.Nodes) > math.MaxUint16 {
		return nil, fmt.Errorf("frame %d has %d nodes, at most %d fit", f.Index, len(f.Nodes), math.MaxUint16)
	}
	size := frameHeaderSize
	for _, n := range f.Nodes {
		size += nodeHeaderSize + len(n.Points)*pointSize + nodeStyleSize
	}
	data = make([]byte, 0, size)
	data = binary.LittleEndian.AppendUint32(data, uint32(f.Index))
	data = binary.LittleEndian.AppendUint64(data, math.Float64bits(f.Time))
	data = binary.LittleEndian.AppendUint16(data, uint16(len(f.Nodes)))
	for _, n := range f.Nodes {
		data = append(data, n.ID[:]...)
		data = append(data, n.Parent[:]...)
		data = binary.LittleEndian.AppendUint16(data, uint16(n.Depth))
		data = binary.LittleEndian.AppendUint32(data, uint32(len(n.Points)))
		for _, p := range n.Points {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(p.X)))
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(p.Y)))
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(p.Z)))
		}
		r, g, b := n.Style.StrokeColor.Clamped().RGB255()
		data = append(data, r, g, b, opacityByte(n.Style.StrokeOpacity))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(n.Style.StrokeWidth)))
		r, g, b = n.Style.FillColor().Clamped().RGB255()
		data = append(data, r, g, b, opacityByte(n.Style.FillOpacity))
	}
	return data, nil
}

// UnmarshalBinary decodes data written by MarshalBinary. Names are not part
// of the encoding; colours come back quantised to 8 bits.
func (f *Frame) UnmarshalBinary(data []byte) error {
	r := reader{data: data}
	index := r.uint32()
	t := math.Float64frombits(r.uint64())
	count := int(r.uint16())
	if r.err != nil {
		return r.err
	}
	nodes := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		var n Node
		copy(n.ID[:], r.bytes(16))
		copy(n.Parent[:], r.bytes(16))
		n.Depth = int(r.uint16())
		points := int(r.uint32())
		if r.err == nil && points*pointSize > len(r.data)-r.off {
			return fmt.Errorf("%w: node %d claims %d points", ErrShortFrame, i, points)
		}
		n.Points = make([]geom.Point, points)
		for j := range n.Points {
			n.Points[j] = geom.Pt(float64(r.float32()), float64(r.float32()), float64(r.float32()))
		}
		style := mobject.DefaultStyle()
		stroke := r.bytes(4)
		style.StrokeWidth = float64(r.float32())
		fill := r.bytes(4)
		if r.err != nil {
			return r.err
		}
		style.StrokeColor = rgb255(stroke)
		style.StrokeOpacity = float64(stroke[3]) / 255
		style.FillColors = []colorful.Color{rgb255(fill)}
		style.FillOpacity = float64(fill[3]) / 255
		n.Style = style
		n.Stroke = Paint{Color: style.StrokeColor.Hex(), Opacity: style.StrokeOpacity, Width: style.StrokeWidth}
		n.Fill = Paint{Color: style.FillColor().Hex(), Opacity: style.FillOpacity}
		nodes = append(nodes, n)
	}
	f.Index = int(index)
	f.Time = t
	f.Nodes = nodes
	return nil
}

func opacityByte(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

func rgb255(b []byte) colorful.Color {
	return colorful.Color{R: float64(b[0]) / 255, G: float64(b[1]) / 255, B: float64(b[2]) / 255}
}

// reader reads little endian values and remembers the first short read.
type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil || r.off+n > len(r.data) {
		if r.err == nil {
			r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortFrame, n, r.off, len(r.data))
		}
		return make([]byte, n)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) uint16() uint16   { return binary.LittleEndian.Uint16(r.bytes(2)) }
func (r *reader) uint32() uint32   { return binary.LittleEndian.Uint32(r.bytes(4)) }
func (r *reader) uint64() uint64   { return binary.LittleEndian.Uint64(r.bytes(8)) }
func (r *reader) float32() float32 { return math.Float32frombits(r.uint32()) }
