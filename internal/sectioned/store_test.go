package sectioned

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name  string
	Email string
	Notes string
}

func initial(p person) string {
	if p.Name == "" {
		return "?"
	}
	return strings.ToUpper(p.Name[:1])
}

func byNamePolicy() Policy[string, person] {
	return Policy[string, person]{
		KeyOf:       initial,
		CompareKeys: Ascending[string](),
		CompareItems: By(func(p person) string {
			return strings.ToLower(p.Name)
		}, cmp.Compare[string]),
	}
}

func names(items []person) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	store := Build(nil, byNamePolicy())

	assert.Equal(t, 0, store.SectionCount())
	assert.Equal(t, 0, store.Len())
	assert.True(t, store.IsEmpty())
	assert.Empty(t, store.Keys())
}

func TestBuild_GroupsAndOrders(t *testing.T) {
	items := []person{
		{Name: "Bob"},
		{Name: "alice2"},
		{Name: "Carol"},
		{Name: "Alice"},
		{Name: "bea"},
	}

	store := Build(items, byNamePolicy())

	require.Equal(t, []string{"A", "B", "C"}, store.Keys())
	a, ok := store.Section(0)
	require.True(t, ok)
	assert.Equal(t, []string{"Alice", "alice2"}, names(a.Items))
	b, _ := store.Section(1)
	assert.Equal(t, []string{"bea", "Bob"}, names(b.Items))
	assert.Equal(t, len(items), store.Len())
}

func TestBuild_DescendingSections(t *testing.T) {
	policy := byNamePolicy()
	policy.CompareKeys = Descending(Ascending[string]())

	store := Build([]person{{Name: "Ann"}, {Name: "Zed"}, {Name: "Max"}}, policy)

	assert.Equal(t, []string{"Z", "M", "A"}, store.Keys())
}

func TestBuild_PartitionsInput(t *testing.T) {
	tests := []struct {
		name  string
		items []person
	}{
		{name: "single", items: []person{{Name: "Solo"}}},
		{name: "duplicates", items: []person{{Name: "Dup"}, {Name: "Dup"}, {Name: "dup"}}},
		{name: "mixed", items: []person{{Name: "x"}, {Name: ""}, {Name: "Y"}, {Name: "xavier"}, {Name: "1up"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Build(tt.items, byNamePolicy())

			seen := make(map[string]int)
			total := 0
			keys := make(map[string]bool)
			for _, sec := range store.Sections() {
				assert.False(t, keys[sec.Key], "duplicate section key %q", sec.Key)
				keys[sec.Key] = true
				for _, p := range sec.Items {
					assert.Equal(t, sec.Key, initial(p))
					seen[p.Name]++
					total++
				}
			}

			want := make(map[string]int)
			for _, p := range tt.items {
				want[p.Name]++
			}
			assert.Equal(t, want, seen)
			assert.Equal(t, len(tt.items), total)
			assert.Equal(t, len(tt.items), store.Len())
		})
	}
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	items := []person{{Name: "b"}, {Name: "a"}}

	Build(items, byNamePolicy())

	assert.Equal(t, []string{"b", "a"}, names(items))
}

func TestStore_ItemAt(t *testing.T) {
	store := Build([]person{{Name: "Ann"}, {Name: "Bo"}, {Name: "Abe"}}, byNamePolicy())

	tests := []struct {
		name    string
		want    string
		section int
		row     int
		ok      bool
	}{
		{name: "first", section: 0, row: 0, want: "Abe", ok: true},
		{name: "second row", section: 0, row: 1, want: "Ann", ok: true},
		{name: "second section", section: 1, row: 0, want: "Bo", ok: true},
		{name: "row past end", section: 1, row: 1},
		{name: "section past end", section: 5, row: 0},
		{name: "negative section", section: -1, row: 0},
		{name: "negative row", section: 0, row: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := store.ItemAt(tt.section, tt.row)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}

	assert.Equal(t, 2, store.RowCount(0))
	assert.Equal(t, 0, store.RowCount(9))
	assert.Equal(t, 1, store.IndexOf("B"))
	assert.Equal(t, -1, store.IndexOf("Q"))
}

func TestStore_NilSafe(t *testing.T) {
	var store *Store[string, person]

	assert.Equal(t, 0, store.SectionCount())
	assert.Equal(t, 0, store.Len())
	_, ok := store.ItemAt(0, 0)
	assert.False(t, ok)
	assert.Nil(t, store.Sections())
}
