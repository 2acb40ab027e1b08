// Package params assembles and validates the query parameter maps sent
// with MAL API requests. It owns the session defaults (limit, field
// lists, nsfw, truncation policy) and applies per-endpoint constraints.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/fields"
	"github.com/kuromu/mal-client/pkg/mal"
	"github.com/rs/zerolog"
)

// Sentinel errors for parameter validation.
var (
	// ErrInvalidConfiguration marks a structurally invalid session
	// setting, such as a non-positive default limit.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument marks an invalid per-call parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DefaultLimit is the per-page result count used when the caller sets
// none.
const DefaultLimit = 10

// OptInt is an optional integer parameter. The zero value is absent.
type OptInt struct {
	value int
	set   bool
}

// Int wraps v as a present OptInt.
func Int(v int) OptInt { return OptInt{value: v, set: true} }

// Get returns the value and whether it was set.
func (o OptInt) Get() (int, bool) { return o.value, o.set }

// OptString is an optional string parameter. The zero value is absent,
// which keeps it distinct from a legitimately empty string.
type OptString struct {
	value string
	set   bool
}

// String wraps v as a present OptString.
func String(v string) OptString { return OptString{value: v, set: true} }

// Get returns the value and whether it was set.
func (o OptString) Get() (string, bool) { return o.value, o.set }

// OptBool is an optional boolean parameter. The zero value is absent.
type OptBool struct {
	value bool
	set   bool
}

// Bool wraps v as a present OptBool.
func Bool(v bool) OptBool { return OptBool{value: v, set: true} }

// Get returns the value and whether it was set.
func (o OptBool) Get() (bool, bool) { return o.value, o.set }

// Options carries the per-call inputs of one request. Absent values fall
// back to the session defaults where one exists.
type Options struct {
	Query  OptString
	Limit  OptInt
	Offset OptInt

	// Fields is the requested field token list. nil means use the
	// session defaults for the endpoint's category.
	Fields []string

	NSFW        OptBool
	Status      OptString
	Sort        OptString
	RankingType OptString

	// Topic search filters.
	BoardID       OptInt
	SubboardID    OptInt
	TopicUserName OptString
	UserName      OptString
}

// Builder holds the session defaults and produces parameter maps.
// Defaults are expected to be mutated only between requests.
type Builder struct {
	limit        int
	animeFields  []fields.Field
	mangaFields  []fields.Field
	includeNSFW  bool
	autoTruncate bool
	logger       zerolog.Logger
}

// NewBuilder creates a builder with the standard session defaults:
// limit 10, the per-category default field lists, nsfw off and
// auto-truncation off.
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		limit:       DefaultLimit,
		animeFields: fields.DefaultsFor(fields.CategoryAnime),
		mangaFields: fields.DefaultsFor(fields.CategoryManga),
		logger:      logger,
	}
}

// SetLimit changes the session default page size. Non-positive values
// fail with ErrInvalidConfiguration.
func (b *Builder) SetLimit(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: default limit must be a positive integer, got %d", ErrInvalidConfiguration, v)
	}
	b.limit = v
	b.logger.Info().Int("limit", v).Msg("Session default limit set")
	return nil
}

// Limit returns the session default page size.
func (b *Builder) Limit() int { return b.limit }

// SetAnimeFields replaces the default anime field list. Unknown tokens
// are dropped with a warning; fields not applicable to anime are
// silently removed.
func (b *Builder) SetAnimeFields(tokens []string) {
	b.animeFields = fields.FilterFor(fields.CategoryAnime, tokens, b.logger)
	b.logger.Info().Str("fields", fields.Join(b.animeFields)).Msg("Session anime fields set")
}

// AnimeFields returns the default anime field list.
func (b *Builder) AnimeFields() []fields.Field { return b.animeFields }

// SetMangaFields replaces the default manga field list, with the same
// filtering as SetAnimeFields.
func (b *Builder) SetMangaFields(tokens []string) {
	b.mangaFields = fields.FilterFor(fields.CategoryManga, tokens, b.logger)
	b.logger.Info().Str("fields", fields.Join(b.mangaFields)).Msg("Session manga fields set")
}

// MangaFields returns the default manga field list.
func (b *Builder) MangaFields() []fields.Field { return b.mangaFields }

// SetIncludeNSFW changes the session nsfw default.
func (b *Builder) SetIncludeNSFW(v bool) {
	b.includeNSFW = v
	b.logger.Info().Bool("nsfw", v).Msg("Session nsfw default set")
}

// IncludeNSFW returns the session nsfw default.
func (b *Builder) IncludeNSFW() bool { return b.includeNSFW }

// SetAutoTruncate toggles silent truncation of over-long queries.
func (b *Builder) SetAutoTruncate(v bool) {
	b.autoTruncate = v
	b.logger.Info().Bool("auto_truncate", v).Msg("Session auto-truncate set")
}

// AutoTruncate returns whether over-long queries are truncated.
func (b *Builder) AutoTruncate() bool { return b.autoTruncate }

// ClampLimit clamps a requested page size into [1, d.MaxLimit].
func ClampLimit(d endpoint.Descriptor, v int) int {
	switch {
	case v < 1:
		return 1
	case v > d.MaxLimit:
		return d.MaxLimit
	default:
		return v
	}
}

// Build produces the parameter map for one request against d. The map is
// built fresh per call; callers must not retain and mutate it across
// requests.
func (b *Builder) Build(d endpoint.Descriptor, opts Options) (map[string]string, error) {
	p := make(map[string]string)
	category := d.Category()

	if q, ok := opts.Query.Get(); ok {
		if !d.TakesQuery() {
			return nil, fmt.Errorf("%w: endpoint %s takes no query", ErrInvalidArgument, d.Name)
		}
		// Bounds are in characters, not bytes: much of the catalog is
		// searched in Japanese.
		runes := utf8.RuneCountInString(q)
		if runes < d.MinQueryLen {
			// Too-short queries always fail; truncation cannot help.
			return nil, fmt.Errorf("%w: query must be between %d and %d characters, got %d",
				ErrInvalidArgument, d.MinQueryLen, d.MaxQueryLen, runes)
		}
		if runes > d.MaxQueryLen {
			if !b.autoTruncate {
				return nil, fmt.Errorf("%w: query must be between %d and %d characters, got %d",
					ErrInvalidArgument, d.MinQueryLen, d.MaxQueryLen, runes)
			}
			q = truncateRunes(q, d.MaxQueryLen)
			b.logger.Info().
				Str("endpoint", d.Name).
				Int("max_len", d.MaxQueryLen).
				Msg("Query truncated to endpoint maximum")
		}
		p["q"] = q
	}

	if d.IsPaginated() {
		limit := b.limit
		if v, ok := opts.Limit.Get(); ok {
			limit = v
		}
		p["limit"] = strconv.Itoa(ClampLimit(d, limit))

		if v, ok := opts.Offset.Get(); ok {
			p["offset"] = strconv.Itoa(v)
		}
	}

	// Forum endpoints take no entry fields.
	if !d.Forum {
		var fs []fields.Field
		if opts.Fields != nil {
			fs = fields.FilterFor(category, opts.Fields, b.logger)
		} else {
			fs = b.defaultFields(category)
		}
		value := fields.Join(fs)
		if d.List {
			// Personal lists always carry the per-user status payload.
			value += ",list_status"
		}
		p["fields"] = value
	}

	if s, ok := opts.Status.Get(); ok {
		if !mal.ValidListStatus(category, s) {
			return nil, fmt.Errorf("%w: %q is not a valid %s list status", ErrInvalidArgument, s, category)
		}
		p["status"] = s
	}

	if s, ok := opts.Sort.Get(); ok {
		var valid bool
		if d.Name == endpoint.AnimeSeasonal.Name {
			valid = mal.ValidSeasonalSort(s)
		} else {
			valid = mal.ValidListSort(category, s)
		}
		if !valid {
			return nil, fmt.Errorf("%w: %q is not a valid sort for %s", ErrInvalidArgument, s, d.Name)
		}
		p["sort"] = s
	}

	if rt, ok := opts.RankingType.Get(); ok {
		if !mal.ValidRankingType(category, rt) {
			return nil, fmt.Errorf("%w: %q is not a valid %s ranking type", ErrInvalidArgument, rt, category)
		}
		p["ranking_type"] = rt
	}

	// A per-call nsfw value overrides the session default. The parameter
	// is only emitted when true; absence means false.
	nsfw := b.includeNSFW
	if v, ok := opts.NSFW.Get(); ok {
		nsfw = v
	}
	if nsfw {
		p["nsfw"] = "true"
	}

	if v, ok := opts.BoardID.Get(); ok {
		p["board_id"] = strconv.Itoa(v)
	}
	if v, ok := opts.SubboardID.Get(); ok {
		p["subboard_id"] = strconv.Itoa(v)
	}
	if v, ok := opts.TopicUserName.Get(); ok {
		p["topic_user_name"] = v
	}
	if v, ok := opts.UserName.Get(); ok {
		p["user_name"] = v
	}

	if d.Name == endpoint.ForumTopics.Name && !hasTopicFilter(p) {
		return nil, fmt.Errorf("%w: topic search needs at least one of query, board_id, subboard_id, topic_user_name or user_name",
			ErrInvalidArgument)
	}

	return p, nil
}

func (b *Builder) defaultFields(category fields.Category) []fields.Field {
	switch category {
	case fields.CategoryAnime:
		return b.animeFields
	case fields.CategoryManga:
		return b.mangaFields
	default:
		return fields.DefaultsFor(category)
	}
}

// truncateRunes cuts s after n runes, on a rune boundary.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func hasTopicFilter(p map[string]string) bool {
	for _, key := range []string{"q", "board_id", "subboard_id", "topic_user_name", "user_name"} {
		if _, ok := p[key]; ok {
			return true
		}
	}
	return false
}
