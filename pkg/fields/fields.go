// Package fields defines the closed vocabulary of requestable MAL API fields
// and their applicability to the different entity kinds.
package fields

import (
	"strings"

	"github.com/rs/zerolog"
)

// Category identifies the entity kind a request targets.
type Category int

const (
	// CategoryAnime targets anime entities and anime list entries.
	CategoryAnime Category = iota

	// CategoryManga targets manga entities and manga list entries.
	CategoryManga

	// CategoryCharacter targets anime character sub-entities.
	CategoryCharacter
)

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case CategoryAnime:
		return "anime"
	case CategoryManga:
		return "manga"
	case CategoryCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// Capability is a bitset of the categories a field may be requested for.
// Applicability is assigned per field at table construction, never derived,
// so adding a field cannot silently leak it into the wrong category.
type Capability uint8

const (
	// AppliesAnime marks fields valid on anime endpoints.
	AppliesAnime Capability = 1 << iota

	// AppliesManga marks fields valid on manga endpoints.
	AppliesManga

	// AppliesCharacter marks fields valid on the character sub-entity.
	AppliesCharacter
)

// Has reports whether the capability set contains all bits of other.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Field is a single requestable attribute name from the fixed vocabulary.
type Field string

// Fields common to anime and manga.
const (
	ID                Field = "id"
	Title             Field = "title"
	MainPicture       Field = "main_picture"
	AlternativeTitles Field = "alternative_titles"
	StartDate         Field = "start_date"
	EndDate           Field = "end_date"
	Synopsis          Field = "synopsis"
	Mean              Field = "mean"
	Rank              Field = "rank"
	Popularity        Field = "popularity"
	NumListUsers      Field = "num_list_users"
	NumScoringUsers   Field = "num_scoring_users"
	NSFW              Field = "nsfw"
	CreatedAt         Field = "created_at"
	UpdatedAt         Field = "updated_at"
	MediaType         Field = "media_type"
	Status            Field = "status"
	Genres            Field = "genres"
	Pictures          Field = "pictures"
	Background        Field = "background"
	RelatedAnime      Field = "related_anime"
	RelatedManga      Field = "related_manga"
	Recommendations   Field = "recommendations"
)

// Anime-only fields.
const (
	NumEpisodes            Field = "num_episodes"
	StartSeason            Field = "start_season"
	Broadcast              Field = "broadcast"
	Source                 Field = "source"
	AverageEpisodeDuration Field = "average_episode_duration"
	Rating                 Field = "rating"
	Studios                Field = "studios"
	Statistics             Field = "statistics"
)

// Manga-only fields.
const (
	Authors       Field = "authors"
	NumChapters   Field = "num_chapters"
	NumVolumes    Field = "num_volumes"
	Serialization Field = "serialization"
)

// Character sub-entity fields.
const (
	FirstName       Field = "first_name"
	LastName        Field = "last_name"
	AlternativeName Field = "alternative_name"
	Biography       Field = "biography"
	NumFavorites    Field = "num_favorites"
	Role            Field = "role"
)

const both = AppliesAnime | AppliesManga

// catalog is the closed vocabulary. Every field carries its full capability
// set here; there is no second list to keep in sync.
var catalog = map[Field]Capability{
	ID:                both | AppliesCharacter,
	Title:             both,
	MainPicture:       both | AppliesCharacter,
	AlternativeTitles: both,
	StartDate:         both,
	EndDate:           both,
	Synopsis:          both,
	Mean:              both,
	Rank:              both,
	Popularity:        both,
	NumListUsers:      both,
	NumScoringUsers:   both,
	NSFW:              both,
	CreatedAt:         both,
	UpdatedAt:         both,
	MediaType:         both,
	Status:            both,
	Genres:            both,
	Pictures:          both,
	Background:        both,
	RelatedAnime:      both,
	RelatedManga:      both,
	Recommendations:   both,

	NumEpisodes:            AppliesAnime,
	StartSeason:            AppliesAnime,
	Broadcast:              AppliesAnime,
	Source:                 AppliesAnime,
	AverageEpisodeDuration: AppliesAnime,
	Rating:                 AppliesAnime,
	Studios:                AppliesAnime,
	Statistics:             AppliesAnime,

	Authors:       AppliesManga,
	NumChapters:   AppliesManga,
	NumVolumes:    AppliesManga,
	Serialization: AppliesManga,

	FirstName:       AppliesCharacter,
	LastName:        AppliesCharacter,
	AlternativeName: AppliesCharacter,
	Biography:       AppliesCharacter,
	NumFavorites:    AppliesCharacter,
	Role:            AppliesCharacter,
}

// order fixes a stable iteration order for AllFor. Map iteration order would
// otherwise leak into request URLs and cache keys.
var order = []Field{
	ID, Title, MainPicture, AlternativeTitles, StartDate, EndDate, Synopsis,
	Mean, Rank, Popularity, NumListUsers, NumScoringUsers, NSFW, CreatedAt,
	UpdatedAt, MediaType, Status, Genres, Pictures, Background, RelatedAnime,
	RelatedManga, Recommendations,
	NumEpisodes, StartSeason, Broadcast, Source, AverageEpisodeDuration,
	Rating, Studios, Statistics,
	Authors, NumChapters, NumVolumes, Serialization,
	FirstName, LastName, AlternativeName, Biography, NumFavorites, Role,
}

// capabilityFor maps a category to the capability bit it requires.
func capabilityFor(category Category) Capability {
	switch category {
	case CategoryAnime:
		return AppliesAnime
	case CategoryManga:
		return AppliesManga
	case CategoryCharacter:
		return AppliesCharacter
	default:
		return 0
	}
}

// IsMember reports whether token exactly matches a known field name.
func IsMember(token string) bool {
	_, ok := catalog[Field(token)]
	return ok
}

// Parse resolves a token to its Field. The second return value is false for
// tokens outside the vocabulary.
func Parse(token string) (Field, bool) {
	f := Field(token)
	_, ok := catalog[f]
	return f, ok
}

// Capabilities returns the capability set of f, or 0 if f is not a member.
func Capabilities(f Field) Capability {
	return catalog[f]
}

// AppliesTo reports whether f may be requested for the given category.
func (f Field) AppliesTo(category Category) bool {
	return catalog[f].Has(capabilityFor(category))
}

// FilterFor resolves tokens to Fields and keeps only those applicable to
// category. Unknown tokens are dropped with a warning; they are never fatal.
// Input order is preserved and duplicates are kept, both are the caller's
// responsibility.
func FilterFor(category Category, tokens []string, logger zerolog.Logger) []Field {
	out := make([]Field, 0, len(tokens))
	for _, token := range tokens {
		f, ok := Parse(token)
		if !ok {
			logger.Warn().
				Str("field", token).
				Str("category", category.String()).
				Msg("Unknown field token dropped")
			continue
		}
		if !f.AppliesTo(category) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Filter keeps only the Fields applicable to category, preserving order.
// It is the pre-resolved counterpart of FilterFor.
func Filter(category Category, fs []Field) []Field {
	out := make([]Field, 0, len(fs))
	for _, f := range fs {
		if f.AppliesTo(category) {
			out = append(out, f)
		}
	}
	return out
}

// DefaultsFor returns the fixed default field set for a category. The API
// always returns id, title and main_picture, so the defaults cover the
// attributes a listing typically renders on top of those.
func DefaultsFor(category Category) []Field {
	base := []Field{Status, MediaType, Genres, Mean}
	switch category {
	case CategoryAnime:
		return append(base, NumEpisodes, StartSeason, Broadcast, Source)
	case CategoryManga:
		return append(base, NumChapters, Authors, Serialization)
	case CategoryCharacter:
		return []Field{FirstName, LastName, AlternativeName, MainPicture, Role}
	default:
		return base
	}
}

// AllFor returns every field applicable to category, in vocabulary order.
func AllFor(category Category) []Field {
	need := capabilityFor(category)
	out := make([]Field, 0, len(order))
	for _, f := range order {
		if catalog[f].Has(need) {
			out = append(out, f)
		}
	}
	return out
}

// Join renders a field list as the comma-separated form the API expects.
func Join(fs []Field) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}
