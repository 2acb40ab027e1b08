package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kuromu/mal-client/pkg/mal"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	c, err := New(Config{
		ClientID: "test-client-id",
		Delay:    time.Millisecond,
		BaseURL:  baseURL,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "valid config",
			config: Config{ClientID: "abc123"},
		},
		{
			name:        "missing client id",
			config:      Config{},
			expectError: true,
		},
		{
			name:        "negative delay",
			config:      Config{ClientID: "abc123", Delay: -time.Second},
			expectError: true,
		},
		{
			name:        "negative limit",
			config:      Config{ClientID: "abc123", Limit: -5},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("New() error = %v, want ErrInvalidConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Errorf("New() failed: %v", err)
			}
		})
	}
}

func TestAnimeSearch(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"node": {"id": 30230, "title": "Monogatari"}},
				{"node": {"id": 5081, "title": "Bakemonogatari"}}
			],
			"paging": {"next": "` + "http://example.invalid/v2/anime?offset=10" + `"}
		}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.AnimeSearch(context.Background(), "monogatari", Limit(10))
	if err != nil {
		t.Fatalf("AnimeSearch() failed: %v", err)
	}

	if gotReq.Header.Get("X-MAL-CLIENT-ID") != "test-client-id" {
		t.Errorf("X-MAL-CLIENT-ID = %q, want %q", gotReq.Header.Get("X-MAL-CLIENT-ID"), "test-client-id")
	}
	if gotReq.URL.Path != "/anime" {
		t.Errorf("path = %q, want /anime", gotReq.URL.Path)
	}

	q := gotReq.URL.Query()
	if q.Get("q") != "monogatari" {
		t.Errorf("q = %q, want %q", q.Get("q"), "monogatari")
	}
	if q.Get("limit") != "10" {
		t.Errorf("limit = %q, want %q", q.Get("limit"), "10")
	}
	if q.Get("fields") == "" {
		t.Error("fields parameter missing")
	}
	if q.Get("nsfw") != "" {
		t.Errorf("nsfw = %q, want unset", q.Get("nsfw"))
	}

	if len(page.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(page.Data))
	}
	if page.Data[0].Node.ID != 30230 {
		t.Errorf("Data[0].Node.ID = %d, want 30230", page.Data[0].Node.ID)
	}
	if !page.Paging.HasNext() {
		t.Error("HasNext() = false, want true")
	}
}

func TestAnimeSearch_QueryTooShort(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	_, err := c.AnimeSearch(context.Background(), "ab")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AnimeSearch() error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetAnime_InvalidID(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	for _, id := range []int{0, -1} {
		if _, err := c.GetAnime(context.Background(), id); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("GetAnime(%d) error = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestGetAnime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anime/30230" {
			t.Errorf("path = %q, want /anime/30230", r.URL.Path)
		}
		w.Write([]byte(`{"id": 30230, "title": "Monogatari Series: Second Season", "num_episodes": 26}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	anime, err := c.GetAnime(context.Background(), 30230)
	if err != nil {
		t.Fatalf("GetAnime() failed: %v", err)
	}
	if anime.ID != 30230 {
		t.Errorf("ID = %d, want 30230", anime.ID)
	}
	if anime.NumEpisodes != 26 {
		t.Errorf("NumEpisodes = %d, want 26", anime.NumEpisodes)
	}
}

func TestGetAnimeByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anime/16498" {
			t.Errorf("path = %q, want /anime/16498", r.URL.Path)
		}
		w.Write([]byte(`{"id": 16498, "title": "Shingeki no Kyojin"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	anime, err := c.GetAnimeByURL(context.Background(), "https://myanimelist.net/anime/16498/Shingeki_no_Kyojin")
	if err != nil {
		t.Fatalf("GetAnimeByURL() failed: %v", err)
	}
	if anime.ID != 16498 {
		t.Errorf("ID = %d, want 16498", anime.ID)
	}
}

func TestGetAnimeByURL_BadURL(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	_, err := c.GetAnimeByURL(context.Background(), "https://myanimelist.net/about")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetAnimeByURL() error = %v, want ErrInvalidArgument", err)
	}
}

func TestUpstreamErrorPropagated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "anime not found", "error": "not_found"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.GetAnime(context.Background(), 999999999)
	if err == nil {
		t.Fatal("GetAnime() should fail")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.ErrorClass != ErrorClassClient {
		t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, ErrorClassClient)
	}
	if apiErr.Message != "anime not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "anime not found")
	}
	if apiErr.Reason != "not_found" {
		t.Errorf("Reason = %q, want %q", apiErr.Reason, "not_found")
	}
}

func TestGetAnimeList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/xinil/animelist" {
			t.Errorf("path = %q, want /users/xinil/animelist", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "completed" {
			t.Errorf("status = %q, want completed", q.Get("status"))
		}
		if fields := q.Get("fields"); len(fields) < len(",list_status") ||
			fields[len(fields)-len(",list_status"):] != ",list_status" {
			t.Errorf("fields = %q, want ,list_status suffix", fields)
		}
		w.Write([]byte(`{
			"data": [
				{"node": {"id": 1}, "list_status": {"status": "completed", "score": 9}},
				{"node": {"id": 2}, "list_status": {"status": "completed", "score": 7}}
			],
			"paging": {}
		}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.GetAnimeList(context.Background(), "xinil", Status("completed"))
	if err != nil {
		t.Fatalf("GetAnimeList() failed: %v", err)
	}
	if len(page.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(page.Data))
	}
	if avg := page.AverageScore(); avg != 8 {
		t.Errorf("AverageScore() = %v, want 8", avg)
	}
}

func TestGetAnimeList_EmptyUsername(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	if _, err := c.GetAnimeList(context.Background(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetAnimeList(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetAnimeRanking_StampsType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ranking_type"); got != "airing" {
			t.Errorf("ranking_type = %q, want airing", got)
		}
		w.Write([]byte(`{"data": [{"node": {"id": 5}, "ranking": {"rank": 1}}], "paging": {}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.GetAnimeRanking(context.Background(), mal.AnimeRankingAiring)
	if err != nil {
		t.Fatalf("GetAnimeRanking() failed: %v", err)
	}
	if page.Type != mal.AnimeRankingAiring {
		t.Errorf("Type = %q, want %q", page.Type, mal.AnimeRankingAiring)
	}
}

func TestGetAnimeRanking_InvalidType(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	_, err := c.GetAnimeRanking(context.Background(), mal.AnimeRankingType("bystars"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetAnimeRanking() error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetSeasonalAnime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anime/season/2017/summer" {
			t.Errorf("path = %q, want /anime/season/2017/summer", r.URL.Path)
		}
		w.Write([]byte(`{"data": [], "paging": {}, "season": {"year": 2017, "season": "summer"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.GetSeasonalAnime(context.Background(), 2017, mal.SeasonSummer)
	if err != nil {
		t.Fatalf("GetSeasonalAnime() failed: %v", err)
	}
	if page.Season.Year != 2017 {
		t.Errorf("Season.Year = %d, want 2017", page.Season.Year)
	}
}

func TestGetSeasonalAnime_Invalid(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")
	ctx := context.Background()

	if _, err := c.GetSeasonalAnime(ctx, 2017, mal.Season("monsoon")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("invalid season error = %v, want ErrInvalidArgument", err)
	}
	if _, err := c.GetSeasonalAnime(ctx, 1900, mal.SeasonWinter); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("invalid year error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetTopics_NoFilter(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	if _, err := c.GetTopics(context.Background()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetTopics() error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("board_id") != "5" {
			t.Errorf("board_id = %q, want 5", q.Get("board_id"))
		}
		if _, ok := q["fields"]; ok {
			t.Errorf("forum request emitted fields = %q", q.Get("fields"))
		}
		w.Write([]byte(`{"data": [{"id": 1, "title": "Weekly episode discussion"}], "paging": {}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.GetTopics(context.Background(), BoardID(5))
	if err != nil {
		t.Fatalf("GetTopics() failed: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(page.Data))
	}
}

func TestNextPage(t *testing.T) {
	// Paging links are absolute and already include the API base path, the
	// way the real API emits them. The follow-up request must not prepend
	// the base a second time.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/anime" {
			t.Errorf("request path = %q, want /v2/anime", r.URL.Path)
		}
		switch r.URL.Query().Get("offset") {
		case "":
			t.Errorf("unexpected first-page request in paging test")
		case "10":
			w.Write([]byte(`{"data": [{"node": {"id": 11}}], "paging": {"previous": "x"}}`))
		default:
			t.Errorf("offset = %q, want 10", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/v2")

	cur := &mal.AnimeSearchPage{
		Paging: mal.Paging{Next: server.URL + "/v2/anime?offset=10&q=monogatari&limit=10"},
	}

	next, err := c.NextAnimeSearchPage(context.Background(), cur)
	if err != nil {
		t.Fatalf("NextAnimeSearchPage() failed: %v", err)
	}
	if len(next.Data) != 1 || next.Data[0].Node.ID != 11 {
		t.Errorf("unexpected next page contents: %+v", next.Data)
	}
}

func TestNextPage_NoMorePages(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	cur := &mal.AnimeSearchPage{}
	if _, err := c.NextAnimeSearchPage(context.Background(), cur); !errors.Is(err, ErrNoMorePages) {
		t.Errorf("NextAnimeSearchPage() error = %v, want ErrNoMorePages", err)
	}
}

func TestNSFWOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("nsfw"); got != "true" {
			t.Errorf("nsfw = %q, want true", got)
		}
		w.Write([]byte(`{"data": [], "paging": {}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	if _, err := c.AnimeSearch(context.Background(), "berserk", NSFW(true)); err != nil {
		t.Fatalf("AnimeSearch() failed: %v", err)
	}
}
