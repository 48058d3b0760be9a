package browse

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// fixture mirrors the built-in store; redeclared so this package's tests
// don't depend on the recipe package.
func fixture() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Title: "Classic Pasta", Minutes: 25, Difficulty: domain.DifficultyEasy},
		{ID: 2, Title: "Chicken Curry", Minutes: 45, Difficulty: domain.DifficultyMedium},
		{ID: 3, Title: "Grilled Cheese", Minutes: 10, Difficulty: domain.DifficultyEasy},
		{ID: 4, Title: "Beef Steak", Minutes: 60, Difficulty: domain.DifficultyHard},
		{ID: 5, Title: "Veg Salad", Minutes: 15, Difficulty: domain.DifficultyEasy},
		{ID: 6, Title: "Fried Rice", Minutes: 30, Difficulty: domain.DifficultyMedium},
		{ID: 7, Title: "Chocolate Cake", Minutes: 90, Difficulty: domain.DifficultyHard},
		{ID: 8, Title: "Omelette", Minutes: 8, Difficulty: domain.DifficultyEasy},
	}
}

func ids(recipes []domain.Recipe) []int {
	out := make([]int, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func titles(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestApplyFilterIdentity(t *testing.T) {
	in := fixture()
	for _, f := range []domain.Filter{domain.FilterAll, "", "vegan", "EASY", "quick "} {
		t.Run(string(f), func(t *testing.T) {
			got := ApplyFilter(in, f)
			if diff := cmp.Diff(fixture(), got); diff != "" {
				t.Fatalf("filter %q changed the sequence (-want +got):\n%s", f, diff)
			}
		})
	}
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		filter domain.Filter
		want   []int
	}{
		{domain.FilterEasy, []int{1, 3, 5, 8}},
		{domain.FilterMedium, []int{2, 6}},
		{domain.FilterHard, []int{4, 7}},
		// 30 itself is not quick.
		{domain.FilterQuick, []int{1, 3, 5, 8}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			in := fixture()
			got := ApplyFilter(in, tt.filter)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(fixture(), in); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyFilterQuickIsStrict(t *testing.T) {
	in := []domain.Recipe{
		{ID: 1, Minutes: 29},
		{ID: 2, Minutes: 30},
		{ID: 3, Minutes: 31},
		{ID: 4, Minutes: 1},
	}
	got := ApplyFilter(in, domain.FilterQuick)
	if diff := cmp.Diff([]int{1, 4}, ids(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestApplyFilterNoMatch(t *testing.T) {
	got := ApplyFilter(fixture()[:1], domain.FilterHard)
	if got == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no recipes, got %v", got)
	}
}

func TestApplySortByName(t *testing.T) {
	in := fixture()
	got := ApplySort(in, domain.SortName)

	want := []string{
		"Beef Steak", "Chicken Curry", "Chocolate Cake", "Classic Pasta",
		"Fried Rice", "Grilled Cheese", "Omelette", "Veg Salad",
	}
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fixture(), in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestApplySortByNameUsesCollation(t *testing.T) {
	in := []domain.Recipe{
		{ID: 1, Title: "Zucchini Bread"},
		{ID: 2, Title: "Éclair"},
		{ID: 3, Title: "apple pie"},
		{ID: 4, Title: "Banana Split"},
	}
	got := ApplySort(in, domain.SortName)

	// Byte order would put "apple pie" after "Zucchini Bread" and "Éclair" last.
	want := []string{"apple pie", "Banana Split", "Éclair", "Zucchini Bread"}
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	c := collate.New(language.English)
	for i := 1; i < len(got); i++ {
		if c.CompareString(got[i-1].Title, got[i].Title) > 0 {
			t.Fatalf("%q sorted before %q", got[i-1].Title, got[i].Title)
		}
	}
}

func TestApplySortByTimeIsStable(t *testing.T) {
	in := []domain.Recipe{
		{ID: 1, Title: "A", Minutes: 20},
		{ID: 2, Title: "B", Minutes: 10},
		{ID: 3, Title: "C", Minutes: 20},
		{ID: 4, Title: "D", Minutes: 10},
		{ID: 5, Title: "E", Minutes: 5},
	}
	got := ApplySort(in, domain.SortTime)
	if diff := cmp.Diff([]int{5, 2, 4, 1, 3}, ids(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestApplySortByNameIsStable(t *testing.T) {
	in := []domain.Recipe{
		{ID: 1, Title: "Toast"},
		{ID: 2, Title: "Jam"},
		{ID: 3, Title: "Toast"},
	}
	got := ApplySort(in, domain.SortName)
	if diff := cmp.Diff([]int{2, 1, 3}, ids(got)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestApplySortIdempotent(t *testing.T) {
	for _, o := range []domain.Sort{domain.SortTime, domain.SortName} {
		t.Run(string(o), func(t *testing.T) {
			once := ApplySort(fixture(), o)
			twice := ApplySort(once, o)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("(-once +twice):\n%s", diff)
			}
		})
	}
}

func TestApplySortNoneIsIdentity(t *testing.T) {
	for _, o := range []domain.Sort{domain.SortNone, "", "rating"} {
		t.Run(string(o), func(t *testing.T) {
			got := ApplySort(fixture(), o)
			if diff := cmp.Diff(fixture(), got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySortDoesNotMutate(t *testing.T) {
	in := fixture()
	sorted := ApplySort(in, domain.SortTime)
	sorted[0].Title = "Changed"
	if in[7].Title != "Omelette" {
		t.Fatalf("sorted result aliases the input: %q", in[7].Title)
	}
}

func TestComputeVisible(t *testing.T) {
	tests := []struct {
		name string
		sel  domain.Selection
		want []string
	}{
		{
			name: "easy by name",
			sel:  domain.Selection{Filter: domain.FilterEasy, Sort: domain.SortName},
			want: []string{"Classic Pasta", "Grilled Cheese", "Omelette", "Veg Salad"},
		},
		{
			name: "quick by time",
			sel:  domain.Selection{Filter: domain.FilterQuick, Sort: domain.SortTime},
			want: []string{"Omelette", "Grilled Cheese", "Veg Salad", "Classic Pasta"},
		},
		{
			name: "hard by time",
			sel:  domain.Selection{Filter: domain.FilterHard, Sort: domain.SortTime},
			want: []string{"Beef Steak", "Chocolate Cake"},
		},
		{
			name: "defaults",
			sel:  domain.DefaultSelection(),
			want: titles(fixture()),
		},
		{
			name: "unknown tags",
			sel:  domain.Selection{Filter: "spicy", Sort: "rating"},
			want: titles(fixture()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fixture()
			got := ComputeVisible(store, tt.sel)
			if diff := cmp.Diff(tt.want, titles(got)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
			again := ComputeVisible(store, tt.sel)
			if !slices.Equal(got, again) {
				t.Fatal("same store and selection gave different results")
			}
		})
	}
}

func TestSorterLanguage(t *testing.T) {
	s := NewSorter(language.Swedish)
	if s.Language() != language.Swedish {
		t.Fatalf("got %s, want sv", s.Language())
	}

	// Swedish collates "ö" after "z"; English treats it as a variant of "o".
	in := []domain.Recipe{
		{ID: 1, Title: "Ölbröd"},
		{ID: 2, Title: "Zucchini"},
		{ID: 3, Title: "Omelett"},
	}
	if diff := cmp.Diff([]int{3, 2, 1}, ids(s.Apply(in, domain.SortName))); diff != "" {
		t.Fatalf("swedish (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3, 2}, ids(ApplySort(in, domain.SortName))); diff != "" {
		t.Fatalf("english (-want +got):\n%s", diff)
	}
}
