// Package endpoint defines the closed registry of MAL API v2 endpoints used
// by this client, excluding the ones that require user login.
package endpoint

import (
	"strings"

	"github.com/kuromu/mal-client/pkg/fields"
)

// Base is the root URL of the MAL API v2.
const Base = "https://api.myanimelist.net/v2"

// Descriptor describes a single logical endpoint: its path template,
// pagination limit and category flags. Descriptors are immutable data,
// defined once at package level.
type Descriptor struct {
	// Name identifies the endpoint in logs and metrics.
	Name string

	// Path is the path template below Base. Placeholders use {name} form.
	Path string

	// MaxLimit is the largest page size the API accepts for this endpoint.
	// Zero means the endpoint is not paginated.
	MaxLimit int

	// Anime and Manga mark which entity kind the endpoint serves.
	Anime bool
	Manga bool

	// List marks paginated personal list endpoints, which unconditionally
	// request the list_status payload.
	List bool

	// Forum marks forum endpoints.
	Forum bool

	// Character marks the character sub-entity endpoint.
	Character bool

	// MinQueryLen and MaxQueryLen bound the free-text query parameter.
	// Zero MaxQueryLen means the endpoint takes no query.
	MinQueryLen int
	MaxQueryLen int
}

// The closed endpoint set. Limits and flags follow the API documentation.
var (
	AnimeSearch = Descriptor{
		Name:        "anime_search",
		Path:        "/anime",
		MaxLimit:    100,
		Anime:       true,
		MinQueryLen: 3,
		MaxQueryLen: 64,
	}

	AnimeDetails = Descriptor{
		Name:  "anime_details",
		Path:  "/anime/{id}",
		Anime: true,
	}

	AnimeRanking = Descriptor{
		Name:     "anime_ranking",
		Path:     "/anime/ranking",
		MaxLimit: 500,
		Anime:    true,
	}

	AnimeSeasonal = Descriptor{
		Name:     "anime_seasonal",
		Path:     "/anime/season/{year}/{season}",
		MaxLimit: 500,
		Anime:    true,
	}

	AnimeCharacters = Descriptor{
		Name:      "anime_characters",
		Path:      "/anime/{id}/characters",
		MaxLimit:  100,
		Character: true,
	}

	MangaSearch = Descriptor{
		Name:        "manga_search",
		Path:        "/manga",
		MaxLimit:    100,
		Manga:       true,
		MinQueryLen: 3,
		MaxQueryLen: 64,
	}

	MangaDetails = Descriptor{
		Name:  "manga_details",
		Path:  "/manga/{id}",
		Manga: true,
	}

	MangaRanking = Descriptor{
		Name:     "manga_ranking",
		Path:     "/manga/ranking",
		MaxLimit: 500,
		Manga:    true,
	}

	UserAnimeList = Descriptor{
		Name:     "user_anime_list",
		Path:     "/users/{username}/animelist",
		MaxLimit: 1000,
		Anime:    true,
		List:     true,
	}

	UserMangaList = Descriptor{
		Name:     "user_manga_list",
		Path:     "/users/{username}/mangalist",
		MaxLimit: 1000,
		Manga:    true,
		List:     true,
	}

	ForumBoards = Descriptor{
		Name:  "forum_boards",
		Path:  "/forum/boards",
		Forum: true,
	}

	ForumTopics = Descriptor{
		Name:        "forum_topics",
		Path:        "/forum/topics",
		MaxLimit:    100,
		Forum:       true,
		MinQueryLen: 3,
		MaxQueryLen: 344,
	}

	ForumTopicDetail = Descriptor{
		Name:     "forum_topic_detail",
		Path:     "/forum/topic/{topic_id}",
		MaxLimit: 100,
		Forum:    true,
	}
)

// All returns every registered endpoint descriptor.
func All() []Descriptor {
	return []Descriptor{
		AnimeSearch, AnimeDetails, AnimeRanking, AnimeSeasonal,
		AnimeCharacters, MangaSearch, MangaDetails, MangaRanking,
		UserAnimeList, UserMangaList, ForumBoards, ForumTopics,
		ForumTopicDetail,
	}
}

// Category maps the endpoint to the field category its responses use.
func (d Descriptor) Category() fields.Category {
	switch {
	case d.Character:
		return fields.CategoryCharacter
	case d.Manga:
		return fields.CategoryManga
	default:
		return fields.CategoryAnime
	}
}

// IsPaginated reports whether the endpoint accepts limit/offset parameters.
func (d Descriptor) IsPaginated() bool {
	return d.MaxLimit > 0
}

// TakesQuery reports whether the endpoint accepts a free-text query.
func (d Descriptor) TakesQuery() bool {
	return d.MaxQueryLen > 0
}

// URL expands the path template with the given placeholder values.
// Placeholders without a value are left unexpanded.
func (d Descriptor) URL(placeholders map[string]string) string {
	path := d.Path
	for name, value := range placeholders {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	return path
}
