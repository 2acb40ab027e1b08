package mal

import "time"

// Anime is a single anime entry. Only requested fields are populated;
// id, title and main_picture are always returned by the API.
type Anime struct {
	ID                     int               `json:"id"`
	Title                  string            `json:"title"`
	MainPicture            Picture           `json:"main_picture"`
	AlternativeTitles      AlternativeTitles `json:"alternative_titles"`
	StartDate              string            `json:"start_date"`
	EndDate                string            `json:"end_date"`
	Synopsis               string            `json:"synopsis"`
	Mean                   float64           `json:"mean"`
	Rank                   int               `json:"rank"`
	Popularity             int               `json:"popularity"`
	NumListUsers           int               `json:"num_list_users"`
	NumScoringUsers        int               `json:"num_scoring_users"`
	NSFW                   NSFWLevel         `json:"nsfw"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
	MediaType              string            `json:"media_type"`
	Status                 string            `json:"status"`
	Genres                 []Genre           `json:"genres"`
	Pictures               []Picture         `json:"pictures"`
	Background             string            `json:"background"`
	RelatedAnime           []RelatedEntry    `json:"related_anime"`
	RelatedManga           []RelatedEntry    `json:"related_manga"`
	Recommendations        []Recommendation  `json:"recommendations"`
	NumEpisodes            int               `json:"num_episodes"`
	StartSeason            StartSeason       `json:"start_season"`
	Broadcast              Broadcast         `json:"broadcast"`
	Source                 string            `json:"source"`
	AverageEpisodeDuration int               `json:"average_episode_duration"`
	Rating                 string            `json:"rating"`
	Studios                []Studio          `json:"studios"`
	Statistics             Statistics        `json:"statistics"`
}

// MainPictureURL returns the best resolution main picture, or "".
func (a *Anime) MainPictureURL() string {
	return a.MainPicture.URL()
}

// Prequel returns the first related entry marked Prequel, or nil.
func (a *Anime) Prequel() *EntryNode {
	return findRelation(a.RelatedAnime, "Prequel")
}

// Sequel returns the first related entry marked Sequel, or nil.
func (a *Anime) Sequel() *EntryNode {
	return findRelation(a.RelatedAnime, "Sequel")
}

// TopRecommendation returns the recommendation with the most
// recommending users, or nil if there are none.
func (a *Anime) TopRecommendation() *Recommendation {
	return topRecommendation(a.Recommendations)
}

func findRelation(related []RelatedEntry, formatted string) *EntryNode {
	for i := range related {
		if related[i].RelationTypeFormatted == formatted {
			return &related[i].Node
		}
	}
	return nil
}

func topRecommendation(recs []Recommendation) *Recommendation {
	if len(recs) == 0 {
		return nil
	}
	top := &recs[0]
	for i := range recs {
		if recs[i].NumRecommendations > top.NumRecommendations {
			top = &recs[i]
		}
	}
	return top
}

// AnimeEntry wraps an anime node in search, seasonal and ranking pages.
type AnimeEntry struct {
	Node Anime `json:"node"`
}

// AnimeSearchPage is one page of anime search results.
type AnimeSearchPage struct {
	Data   []AnimeEntry `json:"data"`
	Paging Paging       `json:"paging"`
}

// SeasonalAnimePage is one page of a seasonal anime listing.
type SeasonalAnimePage struct {
	Data   []AnimeEntry `json:"data"`
	Paging Paging       `json:"paging"`
	Season StartSeason  `json:"season"`
}

// RankingInfo is the rank metadata attached to a ranking node.
type RankingInfo struct {
	Rank         int `json:"rank"`
	PreviousRank int `json:"previous_rank"`
}

// AnimeRankingEntry pairs an anime with its position in the chart.
type AnimeRankingEntry struct {
	Node    Anime       `json:"node"`
	Ranking RankingInfo `json:"ranking"`
}

// AnimeRankingPage is one page of an anime ranking chart. Type is stamped
// by the client from the requested chart; the API does not echo it back.
type AnimeRankingPage struct {
	Data   []AnimeRankingEntry `json:"data"`
	Paging Paging              `json:"paging"`
	Type   AnimeRankingType    `json:"-"`
}

// AnimeListStatusInfo is the per-user status attached to an anime list
// entry.
type AnimeListStatusInfo struct {
	Status             AnimeListStatus `json:"status"`
	Score              int             `json:"score"`
	NumEpisodesWatched int             `json:"num_episodes_watched"`
	IsRewatching       bool            `json:"is_rewatching"`
	StartDate          string          `json:"start_date"`
	FinishDate         string          `json:"finish_date"`
	Priority           int             `json:"priority"`
	NumTimesRewatched  int             `json:"num_times_rewatched"`
	RewatchValue       int             `json:"rewatch_value"`
	Tags               []string        `json:"tags"`
	Comments           string          `json:"comments"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AnimeListEntry is one row of a user's anime list.
type AnimeListEntry struct {
	Node       Anime               `json:"node"`
	ListStatus AnimeListStatusInfo `json:"list_status"`
}

// AnimeListPage is one page of a user's anime list.
type AnimeListPage struct {
	Data   []AnimeListEntry `json:"data"`
	Paging Paging           `json:"paging"`
}

// AverageScore returns the mean of the non-zero scores on this page,
// or 0 if no entry is scored.
func (p *AnimeListPage) AverageScore() float64 {
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
