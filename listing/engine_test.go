package listing

import (
	"fmt"
	"testing"

	"github.com/Gothsec/centro-digital/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBusiness(name, category string, active bool) models.Business {
	return models.Business{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     name,
		Category: category,
		Active:   active,
	}
}

func makeBusinesses(n int) []models.Business {
	out := make([]models.Business, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, makeBusiness(fmt.Sprintf("Negocio %02d", i), "Retail", true))
	}
	return out
}

func TestMatchSearch(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Taller Mecánico", "Automotriz", true),
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty term matches everything", search: "", want: []string{"Café Luna", "Taller Mecánico"}},
		{name: "lowercase term", search: "café", want: []string{"Café Luna"}},
		{name: "uppercase term", search: "CAFÉ", want: []string{"Café Luna"}},
		{name: "partial word", search: "luna", want: []string{"Café Luna"}},
		{name: "no match", search: "panadería", want: []string{}},
		{name: "regex specials are literal", search: "café.*", want: []string{}},
		{name: "parens are literal", search: "(luna)", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Match(records, Filters{Search: tt.search}, nil)

			names := make([]string, 0, len(matched))
			for _, b := range matched {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMatchCategoryCaseInsensitive(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Bistro Sol", "Restaurantes", true),
	}

	assert.Len(t, Match(records, Filters{Category: "Cafés"}, nil), 1)
	assert.Len(t, Match(records, Filters{Category: "cafés"}, nil), 1)
	assert.Len(t, Match(records, Filters{Category: "CAFÉS"}, nil), 1)

	// Empty category is the "all categories" sentinel
	assert.Len(t, Match(records, Filters{}, nil), 2)
}

func TestMatchStatus(t *testing.T) {
	records := []models.Business{
		makeBusiness("Abierto", "Retail", true),
		makeBusiness("Cerrado", "Retail", false),
	}

	assert.Len(t, Match(records, Filters{Status: StatusAll}, nil), 2)

	active := Match(records, Filters{Status: StatusActive}, nil)
	require.Len(t, active, 1)
	assert.Equal(t, "Abierto", active[0].Name)

	inactive := Match(records, Filters{Status: StatusInactive}, nil)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Cerrado", inactive[0].Name)
}

func TestMatchFavoritesOnly(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Bistro Sol", "Restaurantes", true),
	}

	favs := FavoriteSet{records[1].ID.String(): {}}

	matched := Match(records, Filters{FavoritesOnly: true}, favs)
	require.Len(t, matched, 1)
	assert.Equal(t, "Bistro Sol", matched[0].Name)

	// A stale favorite id never matches and is harmless
	stale := FavoriteSet{"deleted-business": {}}
	assert.Empty(t, Match(records, Filters{FavoritesOnly: true}, stale))
}

func TestApplyIsPure(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Bistro Sol", "Restaurantes", true),
		makeBusiness("Taller Mecánico", "Automotriz", false),
	}
	filters := Filters{Search: "a", Status: StatusActive, Page: 1, PageSize: 8}
	favs := FavoriteSet{records[0].ID.String(): {}}

	first := Apply(records, filters, favs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Apply(records, filters, favs))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	records := makeBusinesses(5)

	result := Apply(records, Filters{}, nil)
	require.Len(t, result.Visible, 5)
	for i, b := range result.Visible {
		assert.Equal(t, records[i].ID, b.ID)
	}
}

func TestApplyEmptyCollection(t *testing.T) {
	result := Apply(nil, Filters{Search: "café"}, nil)
	assert.Empty(t, result.Visible)
	assert.Zero(t, result.Total)
	assert.False(t, result.HasMore())
}

func TestApplyActiveScenario(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Taller Mecánico", "Automotriz", false),
	}

	result := Apply(records, Filters{Status: StatusActive, Page: 1}, nil)
	require.Len(t, result.Visible, 1)
	assert.Equal(t, "Café Luna", result.Visible[0].Name)
	assert.Equal(t, 1, result.Total)
}

func TestApplyFavoritesOnlyEmptySet(t *testing.T) {
	records := []models.Business{
		makeBusiness("Café Luna", "Cafés", true),
		makeBusiness("Taller Mecánico", "Automotriz", false),
	}

	result := Apply(records, Filters{FavoritesOnly: true, Page: 1}, FavoriteSet{})
	assert.Empty(t, result.Visible)
	assert.False(t, result.HasMore())
}

func TestApplyWindowing(t *testing.T) {
	records := makeBusinesses(20)

	page1 := Apply(records, Filters{Page: 1, PageSize: 8}, nil)
	assert.Len(t, page1.Visible, 8)
	assert.Equal(t, 20, page1.Total)
	assert.True(t, page1.HasMore())

	page2 := Apply(records, Filters{Page: 2, PageSize: 8}, nil)
	assert.Len(t, page2.Visible, 16)
	assert.True(t, page2.HasMore())

	page3 := Apply(records, Filters{Page: 3, PageSize: 8}, nil)
	assert.Len(t, page3.Visible, 20)
	assert.False(t, page3.HasMore())

	// Growing the window past the end never exceeds the matching total
	page4 := Apply(records, Filters{Page: 4, PageSize: 8}, nil)
	assert.Len(t, page4.Visible, 20)
	assert.False(t, page4.HasMore())
}

func TestApplyWindowMonotonicity(t *testing.T) {
	records := makeBusinesses(30)

	previous := 0
	for page := 1; page <= 6; page++ {
		result := Apply(records, Filters{Page: page, PageSize: 8}, nil)
		assert.GreaterOrEqual(t, len(result.Visible), previous)
		assert.LessOrEqual(t, len(result.Visible), result.Total)
		previous = len(result.Visible)
	}
}

func TestApplyZeroValueFiltersDefaults(t *testing.T) {
	records := makeBusinesses(10)

	// Page 0 and PageSize 0 fall back to the first default-sized window
	result := Apply(records, Filters{}, nil)
	assert.Len(t, result.Visible, DefaultPageSize)
	assert.Equal(t, 10, result.Total)
}
