// Package textmesh turns a text string, a font, and an extrusion depth into
// a closed 3D triangle mesh of the glyph shapes.
//
// The pipeline has five stages:
//
//   - Outline extraction: each character is resolved to a glyph and its
//     curved outline is flattened into closed polygonal contours
//     (OutlineSource, default backend: golang.org/x/image/font/sfnt).
//   - Layout: characters are positioned along a baseline, applying advance
//     widths, kerning and the side-bearing hinting correction.
//   - Classification: for every fill contour, the hole contours nested
//     inside it are identified by winding direction and containment.
//   - Tessellation: each fill contour plus its holes is triangulated into a
//     flat cap (PolygonTessellator, default backend:
//     github.com/hajimehoshi/go-libtess2).
//   - Extrusion: side walls connect the z=0 rim to the z=depth rim, and the
//     caps are duplicated at both z levels with outward-facing normals.
//
// # Example usage
//
//	m := textmesh.New("Roboto-Regular.ttf", 48)
//	defer m.Close()
//
//	mesh, err := m.Generate("Hello", 0, 0, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mesh.WriteOBJ(os.Stdout)
//
// # Pluggable backends
//
// Outline extraction and tessellation are abstracted behind the
// OutlineSource and PolygonTessellator interfaces. NewFromSource and
// WithTessellator inject custom backends, which also makes the pipeline
// testable without a real font file or tessellation library:
//
//	m := textmesh.NewFromSource(mySource, textmesh.WithTessellator(myTess))
//
// # Concurrency
//
// A Mesher is single-threaded: pen position and kerning state are carried
// across characters, so concurrent Generate calls on one instance must be
// serialized externally. Separate Mesher instances are independent.
package textmesh
