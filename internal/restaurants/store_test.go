package restaurants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	recs := []Record{
		{Name: "golden wok", PriceRange: "cheap", Area: "north", Food: "chinese",
			Phone: "01223 350688", Addr: "191 histon road", Postcode: "cb43hl",
			FoodQuality: "good", Crowdedness: "busy", LengthOfStay: "short"},
		{Name: "the gandhi", PriceRange: "cheap", Area: "centre", Food: "indian",
			FoodQuality: "great", Crowdedness: "low", LengthOfStay: "long"},
		{Name: "frankie and bennys", PriceRange: "expensive", Area: "south", Food: "italian",
			FoodQuality: "good", Crowdedness: "medium", LengthOfStay: "medium"},
		{Name: "little seoul", PriceRange: "moderate", Area: "centre", Food: "korean"},
	}
	for _, r := range recs {
		require.NoError(t, s.Insert(r))
	}
}

func TestLookupFilters(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	tests := []struct {
		name              string
		area, price, food string
		wantNames         []string
	}{
		{"all wildcards", Wildcard, Wildcard, Wildcard,
			[]string{"golden wok", "the gandhi", "frankie and bennys", "little seoul"}},
		{"by area", "centre", Wildcard, Wildcard, []string{"the gandhi", "little seoul"}},
		{"by price", Wildcard, "cheap", Wildcard, []string{"golden wok", "the gandhi"}},
		{"by food", Wildcard, Wildcard, "korean", []string{"little seoul"}},
		{"combined", "centre", "cheap", Wildcard, []string{"the gandhi"}},
		{"no match", "west", Wildcard, Wildcard, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Lookup(tt.area, tt.price, tt.food)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			if tt.wantNames == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wantNames, names)
			}
		})
	}
}

func TestDomainValues(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	area, price, food, err := s.DomainValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"centre", "north", "south"}, area)
	assert.Equal(t, []string{"cheap", "expensive", "moderate"}, price)
	assert.Equal(t, []string{"chinese", "indian", "italian", "korean"}, food)
}

func TestAugmentFillsOnlyEmptyTiers(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	// Deterministic choice: always the first tier.
	require.NoError(t, s.Augment(func(n int) int { return 0 }))

	recs, err := s.Lookup(Wildcard, Wildcard, "korean")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "mediocre", recs[0].FoodQuality)
	assert.Equal(t, "low", recs[0].Crowdedness)
	assert.Equal(t, "short", recs[0].LengthOfStay)

	// Pre-existing tiers are preserved.
	recs, err = s.Lookup(Wildcard, Wildcard, "chinese")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "good", recs[0].FoodQuality)
	assert.Equal(t, "busy", recs[0].Crowdedness)
}

func TestImportAndExportCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "restaurant_info.csv")
	writeFile(t, src, "restaurantname,pricerange,area,food,phone,addr,postcode\n"+
		"golden wok,cheap,north,chinese,01223 350688,191 histon road,cb43hl\n"+
		"the gandhi,cheap,centre,indian,,,\n")

	s := newTestStore(t)
	n, err := s.ImportCSV(src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := filepath.Join(dir, "expanded.csv")
	require.NoError(t, s.Augment(func(n int) int { return 1 }))
	require.NoError(t, s.ExportCSV(out))

	// No-overwrite: a second export with different data leaves the file alone.
	require.NoError(t, s.Insert(Record{Name: "late addition", PriceRange: "cheap", Area: "west", Food: "thai"}))
	require.NoError(t, s.ExportCSV(out))

	s2 := newTestStore(t)
	n, err = s2.ImportCSV(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := s2.Lookup(Wildcard, Wildcard, "chinese")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "good", recs[0].FoodQuality)
	assert.Equal(t, "medium", recs[0].Crowdedness)
	assert.Equal(t, "medium", recs[0].LengthOfStay)
	assert.Equal(t, "01223 350688", recs[0].Phone)
}
