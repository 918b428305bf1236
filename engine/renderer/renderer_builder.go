package renderer

// RendererOption is a functional option for configuring a Renderer via
// NewRenderer.
type RendererOption func(r *renderer)

// WithBackend is an option builder that supplies a custom backend instead of
// constructing the bundled one for the backend type.
//
// Parameters:
//   - backend: the backend to use
//
// Returns:
//   - RendererOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithBackgroundColor is an option builder that sets the initial clear color.
//
// Parameters:
//   - red, green, blue: clear color channels in [0, 1]
//
// Returns:
//   - RendererOption: a function that applies the color option to a renderer
func WithBackgroundColor(red, green, blue float32) RendererOption {
	return func(r *renderer) {
		r.backgroundColor = [3]float32{red, green, blue}
	}
}
