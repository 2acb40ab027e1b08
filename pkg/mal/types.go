// Package mal defines the typed payloads the MAL API v2 returns and small
// helpers for working with them. Structs map the JSON shapes directly;
// fields the caller did not request decode to their zero values.
package mal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Picture is an entry image, available in up to two resolutions.
type Picture struct {
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// URL returns the highest resolution available, or "" if none.
func (p Picture) URL() string {
	if p.Large != "" {
		return p.Large
	}
	return p.Medium
}

// AlternativeTitles holds the localized and synonym titles of an entry.
type AlternativeTitles struct {
	Synonyms []string `json:"synonyms"`
	En       string   `json:"en"`
	Ja       string   `json:"ja"`
}

// Genre is a single genre tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EntryNode is the minimal entry representation the API always returns,
// used inside related entries, recommendations and list nodes.
type EntryNode struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	MainPicture Picture `json:"main_picture"`
}

// RelatedEntry links an entry to another one with a named relation.
type RelatedEntry struct {
	Node                  EntryNode `json:"node"`
	RelationType          string    `json:"relation_type"`
	RelationTypeFormatted string    `json:"relation_type_formatted"`
}

// Recommendation is a title recommended by users of this entry.
type Recommendation struct {
	Node               EntryNode `json:"node"`
	NumRecommendations int       `json:"num_recommendations"`
}

// StartSeason is the season an anime started airing in.
type StartSeason struct {
	Year   int    `json:"year"`
	Season string `json:"season"`
}

// Broadcast is the weekly airing slot of an anime, in JST.
type Broadcast struct {
	DayOfTheWeek string `json:"day_of_the_week"`
	StartTime    string `json:"start_time"`
}

// Studio is an animation studio reference.
type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusCounts breaks down how many users hold an anime in each list
// status. The API encodes the counts as strings.
type StatusCounts struct {
	Watching    int `json:"watching,string"`
	Completed   int `json:"completed,string"`
	OnHold      int `json:"on_hold,string"`
	Dropped     int `json:"dropped,string"`
	PlanToWatch int `json:"plan_to_watch,string"`
}

// Statistics is the list membership breakdown of an anime.
type Statistics struct {
	Status       StatusCounts `json:"status"`
	NumListUsers int          `json:"num_list_users"`
}

// Person is an author reference on a manga.
type Person struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Author pairs a person with their role on a manga.
type Author struct {
	Node Person `json:"node"`
	Role string `json:"role"`
}

// Magazine is a serialization magazine reference.
type Magazine struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Serialization pairs a magazine with an optional role.
type Serialization struct {
	Node Magazine `json:"node"`
	Role string   `json:"role"`
}

// Paging carries the opaque previous/next page URLs of a paginated
// response. Empty strings mean no page in that direction.
type Paging struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
}

// HasNext reports whether a next page exists.
func (p Paging) HasNext() bool { return p.Next != "" }

// HasPrevious reports whether a previous page exists.
func (p Paging) HasPrevious() bool { return p.Previous != "" }

// ParseDate parses the partial dates the API serves for start_date and
// end_date: full dates, year-month, or bare years. The day and month
// default to 1 when absent.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// IDFromPageURL extracts a numeric entry id from a MAL page URL, e.g.
// https://myanimelist.net/anime/16498/Shingeki_no_Kyojin -> 16498.
// The id is the second-to-last path segment.
func IDFromPageURL(raw string) (int, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 2 {
		return 0, fmt.Errorf("url %q has no id segment", raw)
	}
	id, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0, fmt.Errorf("url %q: id segment %q is not numeric", raw, parts[len(parts)-2])
	}
	return id, nil
}
