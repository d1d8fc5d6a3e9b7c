package textmesh

// Mesher converts text runs into extruded 3D meshes using one font at one
// size. A Mesher owns its OutlineSource and PolygonTessellator; both carry
// mutable state across characters, so concurrent Generate calls on the same
// instance must be serialized externally.
type Mesher struct {
	source OutlineSource
	tess   PolygonTessellator

	bezierSteps int
	ready       bool

	// loggedFailures guards once-per-kind logging of soft per-glyph
	// failures.
	loggedFailures map[string]struct{}
}

// New creates a Mesher for the font file at fontPath with the given pixel
// size. The returned instance is never nil; if the font cannot be loaded it
// is marked not-ready and every Generate call fails with ErrNotReady until
// a successful SetFont.
func New(fontPath string, sizePx int, opts ...Option) *Mesher {
	m := newMesher(opts...)
	if err := m.SetFont(fontPath, sizePx); err != nil {
		Logger().Warn("textmesh: font initialization failed", "path", fontPath, "error", err)
	}
	return m
}

// NewFromSource creates a Mesher around an existing OutlineSource. The
// Mesher takes ownership of the source and closes it on Close or SetFont.
func NewFromSource(src OutlineSource, opts ...Option) *Mesher {
	m := newMesher(opts...)
	m.source = src
	m.ready = src != nil
	return m
}

func newMesher(opts ...Option) *Mesher {
	o := defaultMesherOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tessellator == nil {
		o.tessellator = NewLibtessTessellator()
	}
	return &Mesher{
		tess:           o.tessellator,
		bezierSteps:    o.bezierSteps,
		loggedFailures: make(map[string]struct{}),
	}
}

// SetFont replaces the Mesher's font, releasing the previous source first.
// On failure the instance is left not-ready.
func (m *Mesher) SetFont(fontPath string, sizePx int) error {
	m.release()
	src, err := NewFontSourceFromFile(fontPath, sizePx)
	if err != nil {
		return err
	}
	m.source = src
	m.ready = true
	return nil
}

// SetFontData replaces the Mesher's font from raw TTF/OTF data, releasing
// the previous source first. On failure the instance is left not-ready.
func (m *Mesher) SetFontData(data []byte, sizePx int) error {
	m.release()
	src, err := NewFontSource(data, sizePx)
	if err != nil {
		return err
	}
	m.source = src
	m.ready = true
	return nil
}

// release closes the current source, if any. Safe to call when no source is
// held.
func (m *Mesher) release() {
	if m.source != nil {
		if err := m.source.Close(); err != nil {
			Logger().Warn("textmesh: closing outline source failed", "error", err)
		}
		m.source = nil
	}
	m.ready = false
}

// Close releases the Mesher's resources. It is idempotent.
func (m *Mesher) Close() error {
	m.release()
	return nil
}

// Ready reports whether the Mesher has a usable font.
func (m *Mesher) Ready() bool {
	return m.ready
}

// SetBezierSteps sets the number of subdivision steps used to approximate
// curved outline segments. Values below 1 are ignored.
func (m *Mesher) SetBezierSteps(n int) {
	if n >= 1 {
		m.bezierSteps = n
	}
}

// BezierSteps returns the current curve subdivision step count.
func (m *Mesher) BezierSteps() int {
	return m.bezierSteps
}

// Generate lays out text starting at baseline position (x, y), extrudes it
// by depth along the z axis, and returns the resulting mesh. It fails with
// ErrNotReady when no font is loaded and with ErrNoContours when the text
// produced no outline geometry (e.g. empty or whitespace-only input).
func (m *Mesher) Generate(text string, x, y, depth float64) (*Mesh, error) {
	mesh := NewMesh()
	if err := m.GenerateInto(mesh, text, x, y, depth); err != nil {
		return nil, err
	}
	return mesh, nil
}

// GenerateInto is like Generate but writes into a caller-supplied mesh.
// The mesh is not touched on failure paths that occur before any geometry
// is produced.
func (m *Mesher) GenerateInto(mesh *Mesh, text string, x, y, depth float64) error {
	if !m.ready || m.source == nil {
		return ErrNotReady
	}

	characters := m.layout(text, x, y)
	return m.assemble(mesh, characters, depth)
}

// assemble runs classification, cap tessellation and extrusion over
// laid-out characters and emits the triangles into mesh.
func (m *Mesher) assemble(mesh *Mesh, characters []CharacterOutline, depth float64) error {
	total := 0
	for i := range characters {
		total += len(characters[i].Contours)
	}
	if total == 0 {
		return ErrNoContours
	}

	reoriented := false
	for ci := range characters {
		ch := &characters[ci]

		if normalizeFillConvention(ch) && !reoriented {
			reoriented = true
			Logger().Warn("textmesh: font uses counter-clockwise fill contours, reorienting",
				"char", string(ch.Character))
		}

		for i := range ch.Contours {
			contour := &ch.Contours[i]

			extrudeSideWalls(mesh, contour, depth)

			// Only fill contours produce caps; a character with only
			// counter-clockwise contours yields wall geometry alone.
			if !contour.Clockwise {
				continue
			}

			m.tess.BeginPolygon()
			m.tess.AddContour(*contour, WindingNonzero)
			for j := range ch.Contours {
				if j == i {
					continue
				}
				if isHoleOf(&ch.Contours[j], contour) {
					m.tess.AddContour(ch.Contours[j], WindingOdd)
				}
			}
			c, err := m.tess.EndPolygon()
			if err != nil {
				return err
			}
			extrudeCap(mesh, c, depth)
		}
	}
	return nil
}
