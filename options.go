package textmesh

// DefaultBezierSteps is the default number of straight segments each curved
// outline segment is subdivided into. Higher values trade triangle count for
// smoother glyph silhouettes.
const DefaultBezierSteps = 4

// Option configures a Mesher during creation.
//
// Example:
//
//	// Default pipeline
//	m := textmesh.New("font.ttf", 48)
//
//	// Smoother curves, custom tessellation backend
//	m := textmesh.New("font.ttf", 48,
//	    textmesh.WithBezierSteps(8),
//	    textmesh.WithTessellator(myTess))
type Option func(*mesherOptions)

// mesherOptions holds optional configuration for Mesher creation.
type mesherOptions struct {
	bezierSteps int
	tessellator PolygonTessellator
}

// defaultMesherOptions returns the default mesher options.
func defaultMesherOptions() mesherOptions {
	return mesherOptions{
		bezierSteps: DefaultBezierSteps,
		tessellator: nil, // Will be set to the libtess2 backend if nil
	}
}

// WithBezierSteps sets the number of subdivision steps used to approximate
// curved outline segments. Values below 1 are ignored.
func WithBezierSteps(n int) Option {
	return func(o *mesherOptions) {
		if n >= 1 {
			o.bezierSteps = n
		}
	}
}

// WithTessellator sets a custom tessellation backend for the Mesher.
// Use this for dependency injection of alternative tessellators or test
// doubles.
func WithTessellator(t PolygonTessellator) Option {
	return func(o *mesherOptions) {
		o.tessellator = t
	}
}
