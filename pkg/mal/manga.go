package mal

import "time"

// Manga is a single manga entry. Only requested fields are populated;
// id, title and main_picture are always returned by the API.
type Manga struct {
	ID                int               `json:"id"`
	Title             string            `json:"title"`
	MainPicture       Picture           `json:"main_picture"`
	AlternativeTitles AlternativeTitles `json:"alternative_titles"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	Synopsis          string            `json:"synopsis"`
	Mean              float64           `json:"mean"`
	Rank              int               `json:"rank"`
	Popularity        int               `json:"popularity"`
	NumListUsers      int               `json:"num_list_users"`
	NumScoringUsers   int               `json:"num_scoring_users"`
	NSFW              NSFWLevel         `json:"nsfw"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	MediaType         string            `json:"media_type"`
	Status            string            `json:"status"`
	Genres            []Genre           `json:"genres"`
	Pictures          []Picture         `json:"pictures"`
	Background        string            `json:"background"`
	RelatedAnime      []RelatedEntry    `json:"related_anime"`
	RelatedManga      []RelatedEntry    `json:"related_manga"`
	Recommendations   []Recommendation  `json:"recommendations"`
	Authors           []Author          `json:"authors"`
	NumChapters       int               `json:"num_chapters"`
	NumVolumes        int               `json:"num_volumes"`
	Serialization     []Serialization   `json:"serialization"`
}

// MainPictureURL returns the best resolution main picture, or "".
func (m *Manga) MainPictureURL() string {
	return m.MainPicture.URL()
}

// Prequel returns the first related entry marked Prequel, or nil.
func (m *Manga) Prequel() *EntryNode {
	return findRelation(m.RelatedManga, "Prequel")
}

// Sequel returns the first related entry marked Sequel, or nil.
func (m *Manga) Sequel() *EntryNode {
	return findRelation(m.RelatedManga, "Sequel")
}

// TopRecommendation returns the recommendation with the most
// recommending users, or nil if there are none.
func (m *Manga) TopRecommendation() *Recommendation {
	return topRecommendation(m.Recommendations)
}

// MangaEntry wraps a manga node in search and ranking pages.
type MangaEntry struct {
	Node Manga `json:"node"`
}

// MangaSearchPage is one page of manga search results.
type MangaSearchPage struct {
	Data   []MangaEntry `json:"data"`
	Paging Paging       `json:"paging"`
}

// MangaRankingEntry pairs a manga with its position in the chart.
type MangaRankingEntry struct {
	Node    Manga       `json:"node"`
	Ranking RankingInfo `json:"ranking"`
}

// MangaRankingPage is one page of a manga ranking chart. Type is stamped
// by the client from the requested chart; the API does not echo it back.
type MangaRankingPage struct {
	Data   []MangaRankingEntry `json:"data"`
	Paging Paging              `json:"paging"`
	Type   MangaRankingType    `json:"-"`
}

// MangaListStatusInfo is the per-user status attached to a manga list
// entry.
type MangaListStatusInfo struct {
	Status          MangaListStatus `json:"status"`
	Score           int             `json:"score"`
	NumChaptersRead int             `json:"num_chapters_read"`
	NumVolumesRead  int             `json:"num_volumes_read"`
	IsRereading     bool            `json:"is_rereading"`
	StartDate       string          `json:"start_date"`
	FinishDate      string          `json:"finish_date"`
	Priority        int             `json:"priority"`
	NumTimesReread  int             `json:"num_times_reread"`
	RereadValue     int             `json:"reread_value"`
	Tags            []string        `json:"tags"`
	Comments        string          `json:"comments"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MangaListEntry is one row of a user's manga list.
type MangaListEntry struct {
	Node       Manga               `json:"node"`
	ListStatus MangaListStatusInfo `json:"list_status"`
}

// MangaListPage is one page of a user's manga list.
type MangaListPage struct {
	Data   []MangaListEntry `json:"data"`
	Paging Paging           `json:"paging"`
}

// AverageScore returns the mean of the non-zero scores on this page,
// or 0 if no entry is scored.
func (p *MangaListPage) AverageScore() float64 {
	var total, count int
	for i := range p.Data {
		if s := p.Data[i].ListStatus.Score; s > 0 {
			total += s
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
