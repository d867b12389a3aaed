package stream

// Renderer turns frames into output. Renderers must not keep references to
// mobjects; a Frame already holds copies.
type Renderer interface {
	RenderFrame(f *Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Frame) error

// RenderFrame calls fn(f).
func (fn RendererFunc) RenderFrame(f *Frame) error {
	return fn(f)
}
