package discount

import (
	"errors"
	"testing"

	"bassik_backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	defs model.Discounts
	err  error
}

func (s stubCatalog) Catalog(_ model.Venue) (model.Discounts, error) {
	return s.defs, s.err
}

func TestFallbackCatalog(t *testing.T) {
	kiik := model.Venue{DTO: model.DTO{ID: 2}, Slug: "kiik69"}
	configured := model.Discounts{{VenueId: 2, Code: "kiik-configured", Active: true}}

	tests := []struct {
		name      string
		primary   stubCatalog
		wantCodes []string
	}{
		{
			name:      "configured rows win",
			primary:   stubCatalog{defs: configured},
			wantCodes: []string{"kiik-configured"},
		},
		{
			name:      "empty primary falls back to static list",
			primary:   stubCatalog{defs: model.Discounts{}},
			wantCodes: []string{"kiik-10-percent", "kiik-ladies-night"},
		},
		{
			name:      "unreachable primary falls back, never errors",
			primary:   stubCatalog{err: errors.New("connection refused")},
			wantCodes: []string{"kiik-10-percent", "kiik-ladies-night"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := FallbackCatalog{Primary: tt.primary, Fallback: StaticCatalog{}}
			defs, err := src.Catalog(kiik)
			require.NoError(t, err)

			codes := make([]string, 0, len(defs))
			for _, d := range defs {
				codes = append(codes, d.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestStaticCatalog(t *testing.T) {
	t.Run("unknown brand yields empty list", func(t *testing.T) {
		defs, err := StaticCatalog{}.Catalog(model.Venue{Slug: "nowhere"})
		require.NoError(t, err)
		assert.Empty(t, defs)
	})

	t.Run("definitions are stamped with the venue id", func(t *testing.T) {
		defs, err := StaticCatalog{}.Catalog(model.Venue{DTO: model.DTO{ID: 7}, Slug: "alehouse"})
		require.NoError(t, err)
		require.NotEmpty(t, defs)
		for _, d := range defs {
			assert.Equal(t, uint(7), d.VenueId)
		}
	})

	t.Run("callers cannot mutate the built-in table", func(t *testing.T) {
		defs, err := StaticCatalog{}.Catalog(model.Venue{Slug: "kiik69"})
		require.NoError(t, err)
		defs[0].Title = "mutated"

		again, err := StaticCatalog{}.Catalog(model.Venue{Slug: "kiik69"})
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again[0].Title)
	})

	t.Run("known brands", func(t *testing.T) {
		assert.True(t, KnownBrand("kiik69"))
		assert.False(t, KnownBrand("bassik"))
	})
}
