package fields

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestIsMember(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{
			name:     "common field",
			token:    "mean",
			expected: true,
		},
		{
			name:     "anime only field",
			token:    "num_episodes",
			expected: true,
		},
		{
			name:     "manga only field",
			token:    "serialization",
			expected: true,
		},
		{
			name:     "character field",
			token:    "biography",
			expected: true,
		},
		{
			name:     "unknown token",
			token:    "episode_count",
			expected: false,
		},
		{
			name:     "empty token",
			token:    "",
			expected: false,
		},
		{
			name:     "case sensitive",
			token:    "Mean",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMember(tt.token); got != tt.expected {
				t.Errorf("IsMember(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestEveryFieldHasACategory(t *testing.T) {
	for f, caps := range catalog {
		if caps == 0 {
			t.Errorf("Field %q has an empty capability set", f)
		}
	}
}

func TestOrderCoversCatalog(t *testing.T) {
	if len(order) != len(catalog) {
		t.Fatalf("order has %d entries, catalog has %d", len(order), len(catalog))
	}
	seen := make(map[Field]bool, len(order))
	for _, f := range order {
		if seen[f] {
			t.Errorf("Field %q appears twice in order", f)
		}
		seen[f] = true
		if !IsMember(string(f)) {
			t.Errorf("Field %q in order is not in catalog", f)
		}
	}
}

func TestAppliesTo(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		category Category
		expected bool
	}{
		{"mean applies to anime", Mean, CategoryAnime, true},
		{"mean applies to manga", Mean, CategoryManga, true},
		{"num_episodes is anime only", NumEpisodes, CategoryManga, false},
		{"num_episodes applies to anime", NumEpisodes, CategoryAnime, true},
		{"authors is manga only", Authors, CategoryAnime, false},
		{"authors applies to manga", Authors, CategoryManga, true},
		{"biography is character only", Biography, CategoryAnime, false},
		{"biography applies to character", Biography, CategoryCharacter, true},
		{"id applies to character", ID, CategoryCharacter, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.AppliesTo(tt.category); got != tt.expected {
				t.Errorf("%q.AppliesTo(%v) = %v, want %v", tt.field, tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategorySubsetsShareCommonFields(t *testing.T) {
	// The anime and manga subsets must both contain every field that is not
	// explicitly exclusive to the other category.
	animeOnly := map[Field]bool{
		NumEpisodes: true, StartSeason: true, Broadcast: true, Source: true,
		AverageEpisodeDuration: true, Rating: true, Studios: true, Statistics: true,
	}
	mangaOnly := map[Field]bool{
		Authors: true, NumChapters: true, NumVolumes: true, Serialization: true,
	}

	for _, f := range AllFor(CategoryAnime) {
		if mangaOnly[f] {
			t.Errorf("manga-only field %q leaked into the anime subset", f)
		}
	}
	for _, f := range AllFor(CategoryManga) {
		if animeOnly[f] {
			t.Errorf("anime-only field %q leaked into the manga subset", f)
		}
	}

	// Every common field must be present in both subsets.
	inManga := make(map[Field]bool)
	for _, f := range AllFor(CategoryManga) {
		inManga[f] = true
	}
	for _, f := range AllFor(CategoryAnime) {
		if animeOnly[f] {
			continue
		}
		if !inManga[f] {
			t.Errorf("common field %q missing from the manga subset", f)
		}
	}
}

func TestFilterFor(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		category Category
		tokens   []string
		expected []Field
	}{
		{
			name:     "unknown tokens are dropped",
			category: CategoryAnime,
			tokens:   []string{"mean", "bogus", "rank"},
			expected: []Field{Mean, Rank},
		},
		{
			name:     "wrong category fields are dropped",
			category: CategoryManga,
			tokens:   []string{"mean", "num_episodes", "authors"},
			expected: []Field{Mean, Authors},
		},
		{
			name:     "order preserved and duplicates kept",
			category: CategoryAnime,
			tokens:   []string{"rank", "mean", "rank"},
			expected: []Field{Rank, Mean, Rank},
		},
		{
			name:     "empty input",
			category: CategoryAnime,
			tokens:   nil,
			expected: []Field{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFor(tt.category, tt.tokens, logger)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FilterFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFilterForIsIdempotent(t *testing.T) {
	logger := zerolog.Nop()
	tokens := []string{"mean", "num_episodes", "authors", "unknown_token", "rank"}

	first := FilterFor(CategoryAnime, tokens, logger)
	second := FilterFor(CategoryAnime, tokens, logger)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("FilterFor() is not stable: %v vs %v", first, second)
	}
}

func TestDefaultsFor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
	}{
		{"anime defaults", CategoryAnime},
		{"manga defaults", CategoryManga},
		{"character defaults", CategoryCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := DefaultsFor(tt.category)
			if len(defaults) == 0 {
				t.Fatal("DefaultsFor() returned an empty set")
			}
			for _, f := range defaults {
				if !IsMember(string(f)) {
					t.Errorf("default %q is not a catalog member", f)
				}
				if !f.AppliesTo(tt.category) {
					t.Errorf("default %q does not apply to %v", f, tt.category)
				}
			}
		})
	}
}

func TestDefaultsForAnimeContent(t *testing.T) {
	got := DefaultsFor(CategoryAnime)
	want := []Field{Status, MediaType, Genres, Mean, NumEpisodes, StartSeason, Broadcast, Source}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultsFor(CategoryAnime) = %v, want %v", got, want)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		fields   []Field
		expected string
	}{
		{
			name:     "multiple fields",
			fields:   []Field{Mean, Rank, Status},
			expected: "mean,rank,status",
		},
		{
			name:     "single field",
			fields:   []Field{Mean},
			expected: "mean",
		},
		{
			name:     "empty",
			fields:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.fields); got != tt.expected {
				t.Errorf("Join() = %q, want %q", got, tt.expected)
			}
		})
	}
}
