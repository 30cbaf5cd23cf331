package crate_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/isopack/crate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := crate.DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Templates, 8)
	assert.Len(t, catalog.Palette, 7)
}

func TestCatalogValidateRejectsMalformedTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template []crate.Vec3
	}{
		{"empty", nil},
		{"negative", []crate.Vec3{{0, 0, 0}, {-1, 0, 0}}},
		{"duplicate", []crate.Vec3{{0, 0, 0}, {0, 0, 0}}},
		{"not anchored", []crate.Vec3{{1, 0, 0}, {2, 0, 0}}},
		{"floating", []crate.Vec3{{0, 0, 1}}},
		{"disconnected", []crate.Vec3{{0, 0, 0}, {2, 0, 0}}},
		{"diagonal only", []crate.Vec3{{0, 0, 0}, {1, 1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := crate.DefaultCatalog()
			catalog.Templates = append(catalog.Templates, tt.template)

			err := catalog.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, crate.ErrInvalidTemplate)

			var te *crate.TemplateError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, len(catalog.Templates)-1, te.Index)
		})
	}
}

func TestCatalogValidateEmpty(t *testing.T) {
	assert.ErrorIs(t, crate.Catalog{}.Validate(), crate.ErrInvalidTemplate)

	noColors := crate.DefaultCatalog()
	noColors.Palette = nil
	assert.ErrorIs(t, noColors.Validate(), crate.ErrInvalidTemplate)
}

func TestNewFactoryRejectsInvalidCatalog(t *testing.T) {
	_, err := crate.NewFactory(crate.Catalog{Templates: [][]crate.Vec3{{{0, 0, 0}, {5, 0, 0}}}, Palette: []crate.Color{"#000000"}}, nil, nil)
	assert.ErrorIs(t, err, crate.ErrInvalidTemplate)

	assert.Panics(t, func() {
		crate.MustFactory(crate.Catalog{}, nil, nil)
	})
}

func TestFactoryIsReproducibleWithSeed(t *testing.T) {
	a := crate.MustFactory(crate.DefaultCatalog(), rand.New(rand.NewPCG(7, 11)), crate.SequentialIDs("a"))
	b := crate.MustFactory(crate.DefaultCatalog(), rand.New(rand.NewPCG(7, 11)), crate.SequentialIDs("a"))

	for range 50 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFactoryAssignsFreshIDs(t *testing.T) {
	f := crate.MustFactory(crate.DefaultCatalog(), nil, nil)

	seen := make(map[string]bool)
	for range 100 {
		p := f.Next()
		_, err := uuid.Parse(p.ID)
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}

	seq := crate.MustFactory(crate.DefaultCatalog(), nil, crate.SequentialIDs("piece"))
	assert.Equal(t, "piece-1", seq.Next().ID)
	assert.Equal(t, "piece-2", seq.Next().ID)
}

func TestFactoryDrawsEveryTemplateAndColor(t *testing.T) {
	catalog := crate.DefaultCatalog()
	f := crate.MustFactory(catalog, rand.New(rand.NewPCG(1, 2)), crate.SequentialIDs("p"))

	templates := make(map[int]int)
	colors := make(map[crate.Color]int)
	for range 4000 {
		p := f.Next()
		idx := slices.IndexFunc(catalog.Templates, func(tmpl []crate.Vec3) bool {
			return slices.Equal(tmpl, p.Blocks)
		})
		require.GreaterOrEqual(t, idx, 0, "piece %v is not from the catalog", p.Blocks)
		templates[idx]++
		colors[p.Color]++
	}

	assert.Len(t, templates, len(catalog.Templates))
	assert.Len(t, colors, len(catalog.Palette))
}

func TestFactoryPiecesDoNotAliasCatalog(t *testing.T) {
	catalog := crate.DefaultCatalog()
	f := crate.MustFactory(catalog, rand.New(rand.NewPCG(3, 4)), crate.SequentialIDs("p"))

	for range 64 {
		p := f.Next()
		for i := range p.Blocks {
			p.Blocks[i].X += 100
		}
	}

	assert.Equal(t, crate.DefaultCatalog(), catalog)
}
