package crate

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

// IDSource returns a fresh identifier for every spawned piece.
type IDSource func() string

// Factory creates pieces by drawing a template and a color uniformly at
// random from its catalog.
type Factory struct {
	catalog Catalog
	rng     *rand.Rand
	ids     IDSource
}

// NewFactory validates the catalog and returns a factory. A nil rng uses a
// randomly seeded source; nil ids uses random UUIDs.
func NewFactory(catalog Catalog, rng *rand.Rand, ids IDSource) (*Factory, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("new factory: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if ids == nil {
		ids = uuid.NewString
	}
	return &Factory{catalog: catalog, rng: rng, ids: ids}, nil
}

// MustFactory is like NewFactory but panics on an invalid catalog.
func MustFactory(catalog Catalog, rng *rand.Rand, ids IDSource) *Factory {
	f, err := NewFactory(catalog, rng, ids)
	if err != nil {
		panic(err)
	}
	return f
}

// Next returns a new piece. The returned blocks never alias the catalog.
func (f *Factory) Next() Piece {
	template := f.catalog.Templates[f.rng.IntN(len(f.catalog.Templates))]
	color := f.catalog.Palette[f.rng.IntN(len(f.catalog.Palette))]

	return Piece{
		Blocks: slices.Clone(template),
		Color:  color,
		ID:     f.ids(),
	}
}

// SequentialIDs returns an IDSource producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
