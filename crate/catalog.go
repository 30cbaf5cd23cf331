package crate

import (
	"errors"
	"fmt"
)

var ErrInvalidTemplate = errors.New("invalid template")

// TemplateError describes which catalog template failed validation.
type TemplateError struct {
	Index  int
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %d: %s", e.Index, e.Reason)
}

func (e *TemplateError) Unwrap() error {
	return ErrInvalidTemplate
}

// Catalog is the configuration data the factory draws pieces from.
type Catalog struct {
	Templates [][]Vec3
	Palette   []Color
}

var defaultTemplates = [][]Vec3{
	{{0, 0, 0}},                                  // single
	{{0, 0, 0}, {1, 0, 0}},                       // line 2
	{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},            // line 3
	{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},            // small L
	{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, // square
	{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}, // T
	{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}, // S
	{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, // corner
}

var defaultPalette = []Color{
	"#4D148C",
	"#FF6600",
	"#2563EB",
	"#DC2626",
	"#16A34A",
	"#9333EA",
	"#D97706",
}

// DefaultCatalog returns the standard eight templates and seven colors.
func DefaultCatalog() Catalog {
	templates := make([][]Vec3, len(defaultTemplates))
	for i, t := range defaultTemplates {
		templates[i] = append([]Vec3(nil), t...)
	}
	return Catalog{
		Templates: templates,
		Palette:   append([]Color(nil), defaultPalette...),
	}
}

// Validate checks that every template is non-empty, anchored at the local
// origin, free of duplicates and face-connected, and that the palette has
// at least one color.
func (c Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("%w: empty catalog", ErrInvalidTemplate)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidTemplate)
	}
	for i, t := range c.Templates {
		if reason := checkTemplate(t); reason != "" {
			return &TemplateError{Index: i, Reason: reason}
		}
	}
	return nil
}

func checkTemplate(blocks []Vec3) string {
	if len(blocks) == 0 {
		return "no blocks"
	}

	seen := make(map[Vec3]bool, len(blocks))
	minX, minY, minZ := blocks[0].X, blocks[0].Y, blocks[0].Z
	for _, b := range blocks {
		if b.X < 0 || b.Y < 0 || b.Z < 0 {
			return fmt.Sprintf("negative offset %s", b)
		}
		if seen[b] {
			return fmt.Sprintf("duplicate offset %s", b)
		}
		seen[b] = true
		minX, minY, minZ = min(minX, b.X), min(minY, b.Y), min(minZ, b.Z)
	}
	if minX != 0 || minY != 0 || minZ != 0 {
		return fmt.Sprintf("not anchored at origin, min corner (%d,%d,%d)", minX, minY, minZ)
	}

	// flood fill from the first block across shared faces
	visited := map[Vec3]bool{blocks[0]: true}
	stack := []Vec3{blocks[0]}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range faceNeighbors {
			n := cur.Add(d)
			if seen[n] && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	if len(visited) != len(seen) {
		return "blocks are not contiguous"
	}
	return ""
}

var faceNeighbors = []Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}
