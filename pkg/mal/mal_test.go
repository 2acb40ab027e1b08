package mal

import (
	"encoding/json"
	"testing"

	"github.com/kuromu/mal-client/pkg/fields"
)

func TestAnimeDecode(t *testing.T) {
	payload := `{
		"id": 16498,
		"title": "Shingeki no Kyojin",
		"main_picture": {"medium": "https://img.example/m.jpg", "large": "https://img.example/l.jpg"},
		"mean": 8.54,
		"status": "finished_airing",
		"num_episodes": 25,
		"start_season": {"year": 2013, "season": "spring"},
		"statistics": {
			"status": {"watching": "12345", "completed": "67890", "on_hold": "11", "dropped": "22", "plan_to_watch": "33"},
			"num_list_users": 80301
		},
		"related_anime": [
			{"node": {"id": 18397, "title": "Shingeki no Kyojin OVA"}, "relation_type": "side_story", "relation_type_formatted": "Side story"},
			{"node": {"id": 25777, "title": "Shingeki no Kyojin Season 2"}, "relation_type": "sequel", "relation_type_formatted": "Sequel"}
		],
		"recommendations": [
			{"node": {"id": 28623, "title": "Koutetsujou no Kabaneri"}, "num_recommendations": 21},
			{"node": {"id": 37779, "title": "Yakusoku no Neverland"}, "num_recommendations": 53}
		]
	}`

	var a Anime
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if a.ID != 16498 || a.Title != "Shingeki no Kyojin" {
		t.Errorf("decoded id/title = %d/%q", a.ID, a.Title)
	}
	if a.MainPictureURL() != "https://img.example/l.jpg" {
		t.Errorf("MainPictureURL() = %q, want large picture", a.MainPictureURL())
	}
	// String-encoded statistics counts decode to ints.
	if a.Statistics.Status.Watching != 12345 {
		t.Errorf("Statistics.Status.Watching = %d, want 12345", a.Statistics.Status.Watching)
	}
	if sequel := a.Sequel(); sequel == nil || sequel.ID != 25777 {
		t.Errorf("Sequel() = %+v, want id 25777", sequel)
	}
	if prequel := a.Prequel(); prequel != nil {
		t.Errorf("Prequel() = %+v, want nil", prequel)
	}
	if top := a.TopRecommendation(); top == nil || top.Node.ID != 37779 {
		t.Errorf("TopRecommendation() = %+v, want node id 37779", top)
	}
}

func TestPictureURLFallsBackToMedium(t *testing.T) {
	p := Picture{Medium: "https://img.example/m.jpg"}
	if p.URL() != "https://img.example/m.jpg" {
		t.Errorf("URL() = %q, want medium picture", p.URL())
	}
}

func TestAnimeListPageAverageScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected float64
	}{
		{"mixed scores skip unscored", []int{8, 0, 6}, 7},
		{"no scored entries", []int{0, 0}, 0},
		{"empty page", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &AnimeListPage{}
			for _, s := range tt.scores {
				page.Data = append(page.Data, AnimeListEntry{
					ListStatus: AnimeListStatusInfo{Score: s},
				})
			}
			if got := page.AverageScore(); got != tt.expected {
				t.Errorf("AverageScore() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPaging(t *testing.T) {
	p := Paging{Next: "https://api.myanimelist.net/v2/anime?offset=10"}
	if !p.HasNext() {
		t.Error("HasNext() = false, want true")
	}
	if p.HasPrevious() {
		t.Error("HasPrevious() = true, want false")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{"full date", "2013-04-07", 2013, 4, false},
		{"year and month", "2013-04", 2013, 4, false},
		{"year only", "2013", 2013, 1, false},
		{"empty", "", 0, 0, true},
		{"garbage", "next spring", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got.Year() != tt.wantYear || int(got.Month()) != tt.wantMonth {
				t.Errorf("ParseDate(%q) = %v, want year %d month %d", tt.input, got, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestIDFromPageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{"standard page url", "https://myanimelist.net/anime/16498/Shingeki_no_Kyojin", 16498, false},
		{"manga page url", "https://myanimelist.net/manga/2/Berserk", 2, false},
		{"non numeric segment", "https://myanimelist.net/anime/top/all", 0, true},
		{"no slashes", "16498", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDFromPageURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("IDFromPageURL(%q) succeeded, want error", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("IDFromPageURL(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("IDFromPageURL(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidListStatus(t *testing.T) {
	tests := []struct {
		name     string
		category fields.Category
		token    string
		expected bool
	}{
		{"anime watching", fields.CategoryAnime, "watching", true},
		{"anime completed", fields.CategoryAnime, "completed", true},
		{"manga reading", fields.CategoryManga, "reading", true},
		{"reading is not an anime status", fields.CategoryAnime, "reading", false},
		{"watching is not a manga status", fields.CategoryManga, "watching", false},
		{"unknown token", fields.CategoryAnime, "binging", false},
		{"character category has no statuses", fields.CategoryCharacter, "watching", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidListStatus(tt.category, tt.token); got != tt.expected {
				t.Errorf("ValidListStatus(%v, %q) = %v, want %v", tt.category, tt.token, got, tt.expected)
			}
		})
	}
}

func TestValidListSort(t *testing.T) {
	tests := []struct {
		name     string
		category fields.Category
		token    string
		expected bool
	}{
		{"anime sort by score", fields.CategoryAnime, "list_score", true},
		{"anime sort by title", fields.CategoryAnime, "anime_title", true},
		{"manga title sort is not an anime sort", fields.CategoryAnime, "manga_title", false},
		{"manga sort by title", fields.CategoryManga, "manga_title", true},
		{"unknown sort", fields.CategoryManga, "alphabetical", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidListSort(tt.category, tt.token); got != tt.expected {
				t.Errorf("ValidListSort(%v, %q) = %v, want %v", tt.category, tt.token, got, tt.expected)
			}
		})
	}
}

func TestValidRankingType(t *testing.T) {
	if !ValidRankingType(fields.CategoryAnime, "airing") {
		t.Error("airing should be a valid anime ranking type")
	}
	if ValidRankingType(fields.CategoryManga, "airing") {
		t.Error("airing should not be a valid manga ranking type")
	}
	if !ValidRankingType(fields.CategoryManga, "manhwa") {
		t.Error("manhwa should be a valid manga ranking type")
	}
}

func TestValidSeason(t *testing.T) {
	for _, s := range []string{"winter", "spring", "summer", "fall"} {
		if !ValidSeason(s) {
			t.Errorf("ValidSeason(%q) = false, want true", s)
		}
	}
	if ValidSeason("autumn") {
		t.Error(`ValidSeason("autumn") = true, want false`)
	}
}

func TestCharacterName(t *testing.T) {
	tests := []struct {
		name     string
		c        Character
		expected string
	}{
		{
			name:     "full name with alternative",
			c:        Character{FirstName: "Eren", LastName: "Yeager", AlternativeName: "Titan boy"},
			expected: "Eren Yeager (Titan boy)",
		},
		{
			name:     "first name only",
			c:        Character{FirstName: "Levi"},
			expected: "Levi",
		},
		{
			name:     "last name only",
			c:        Character{LastName: "Ackerman"},
			expected: "Ackerman",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Name(); got != tt.expected {
				t.Errorf("Name() = %q, want %q", got, tt.expected)
			}
		})
	}
}
