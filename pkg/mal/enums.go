package mal

import "github.com/kuromu/mal-client/pkg/fields"

// AnimeListStatus is the watch status of an entry in a user's anime list.
type AnimeListStatus string

const (
	AnimeStatusWatching    AnimeListStatus = "watching"
	AnimeStatusCompleted   AnimeListStatus = "completed"
	AnimeStatusOnHold      AnimeListStatus = "on_hold"
	AnimeStatusDropped     AnimeListStatus = "dropped"
	AnimeStatusPlanToWatch AnimeListStatus = "plan_to_watch"
)

// MangaListStatus is the read status of an entry in a user's manga list.
type MangaListStatus string

const (
	MangaStatusReading    MangaListStatus = "reading"
	MangaStatusCompleted  MangaListStatus = "completed"
	MangaStatusOnHold     MangaListStatus = "on_hold"
	MangaStatusDropped    MangaListStatus = "dropped"
	MangaStatusPlanToRead MangaListStatus = "plan_to_read"
)

// AnimeListSort orders user anime list results.
type AnimeListSort string

const (
	AnimeSortScore     AnimeListSort = "list_score"
	AnimeSortUpdatedAt AnimeListSort = "list_updated_at"
	AnimeSortTitle     AnimeListSort = "anime_title"
	AnimeSortStartDate AnimeListSort = "anime_start_date"
	AnimeSortID        AnimeListSort = "anime_id"
)

// MangaListSort orders user manga list results.
type MangaListSort string

const (
	MangaSortScore     MangaListSort = "list_score"
	MangaSortUpdatedAt MangaListSort = "list_updated_at"
	MangaSortTitle     MangaListSort = "manga_title"
	MangaSortStartDate MangaListSort = "manga_start_date"
	MangaSortID        MangaListSort = "manga_id"
)

// SeasonalSort orders seasonal anime results.
type SeasonalSort string

const (
	SeasonalSortScore        SeasonalSort = "anime_score"
	SeasonalSortNumListUsers SeasonalSort = "anime_num_list_users"
)

// AnimeRankingType selects an anime ranking chart.
type AnimeRankingType string

const (
	AnimeRankingAll          AnimeRankingType = "all"
	AnimeRankingAiring       AnimeRankingType = "airing"
	AnimeRankingUpcoming     AnimeRankingType = "upcoming"
	AnimeRankingTV           AnimeRankingType = "tv"
	AnimeRankingOVA          AnimeRankingType = "ova"
	AnimeRankingMovie        AnimeRankingType = "movie"
	AnimeRankingSpecial      AnimeRankingType = "special"
	AnimeRankingByPopularity AnimeRankingType = "bypopularity"
	AnimeRankingFavorite     AnimeRankingType = "favorite"
)

// MangaRankingType selects a manga ranking chart.
type MangaRankingType string

const (
	MangaRankingAll          MangaRankingType = "all"
	MangaRankingManga        MangaRankingType = "manga"
	MangaRankingNovels       MangaRankingType = "novels"
	MangaRankingOneshots     MangaRankingType = "oneshots"
	MangaRankingDoujin       MangaRankingType = "doujin"
	MangaRankingManhwa       MangaRankingType = "manhwa"
	MangaRankingManhua       MangaRankingType = "manhua"
	MangaRankingByPopularity MangaRankingType = "bypopularity"
	MangaRankingFavorite     MangaRankingType = "favorite"
)

// Season is one of the four airing seasons. Winter covers January through
// March, spring April through June, summer July through September, fall
// October through December.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// NSFWLevel is the nsfw classification of an entry.
type NSFWLevel string

const (
	NSFWWhite NSFWLevel = "white"
	NSFWGray  NSFWLevel = "gray"
	NSFWBlack NSFWLevel = "black"
)

// CharacterRole marks a character as main or supporting.
type CharacterRole string

const (
	RoleMain       CharacterRole = "Main"
	RoleSupporting CharacterRole = "Supporting"
)

var animeListStatuses = map[string]bool{
	string(AnimeStatusWatching):    true,
	string(AnimeStatusCompleted):   true,
	string(AnimeStatusOnHold):      true,
	string(AnimeStatusDropped):     true,
	string(AnimeStatusPlanToWatch): true,
}

var mangaListStatuses = map[string]bool{
	string(MangaStatusReading):    true,
	string(MangaStatusCompleted):  true,
	string(MangaStatusOnHold):     true,
	string(MangaStatusDropped):    true,
	string(MangaStatusPlanToRead): true,
}

var animeListSorts = map[string]bool{
	string(AnimeSortScore):     true,
	string(AnimeSortUpdatedAt): true,
	string(AnimeSortTitle):     true,
	string(AnimeSortStartDate): true,
	string(AnimeSortID):        true,
}

var mangaListSorts = map[string]bool{
	string(MangaSortScore):     true,
	string(MangaSortUpdatedAt): true,
	string(MangaSortTitle):     true,
	string(MangaSortStartDate): true,
	string(MangaSortID):        true,
}

var seasonalSorts = map[string]bool{
	string(SeasonalSortScore):        true,
	string(SeasonalSortNumListUsers): true,
}

var animeRankingTypes = map[string]bool{
	string(AnimeRankingAll):          true,
	string(AnimeRankingAiring):       true,
	string(AnimeRankingUpcoming):     true,
	string(AnimeRankingTV):           true,
	string(AnimeRankingOVA):          true,
	string(AnimeRankingMovie):        true,
	string(AnimeRankingSpecial):      true,
	string(AnimeRankingByPopularity): true,
	string(AnimeRankingFavorite):     true,
}

var mangaRankingTypes = map[string]bool{
	string(MangaRankingAll):          true,
	string(MangaRankingManga):        true,
	string(MangaRankingNovels):       true,
	string(MangaRankingOneshots):     true,
	string(MangaRankingDoujin):       true,
	string(MangaRankingManhwa):       true,
	string(MangaRankingManhua):       true,
	string(MangaRankingByPopularity): true,
	string(MangaRankingFavorite):     true,
}

var seasons = map[string]bool{
	string(SeasonWinter): true,
	string(SeasonSpring): true,
	string(SeasonSummer): true,
	string(SeasonFall):   true,
}

// ValidListStatus reports whether token is a list status of the given
// category. The anime and manga vocabularies are parallel but distinct;
// a token from the wrong one does not validate.
func ValidListStatus(category fields.Category, token string) bool {
	switch category {
	case fields.CategoryAnime:
		return animeListStatuses[token]
	case fields.CategoryManga:
		return mangaListStatuses[token]
	default:
		return false
	}
}

// ValidListSort reports whether token is a list sort of the given category.
func ValidListSort(category fields.Category, token string) bool {
	switch category {
	case fields.CategoryAnime:
		return animeListSorts[token]
	case fields.CategoryManga:
		return mangaListSorts[token]
	default:
		return false
	}
}

// ValidSeasonalSort reports whether token is a seasonal anime sort.
func ValidSeasonalSort(token string) bool {
	return seasonalSorts[token]
}

// ValidRankingType reports whether token is a ranking chart of the
// given category.
func ValidRankingType(category fields.Category, token string) bool {
	switch category {
	case fields.CategoryAnime:
		return animeRankingTypes[token]
	case fields.CategoryManga:
		return mangaRankingTypes[token]
	default:
		return false
	}
}

// ValidSeason reports whether token is one of the four seasons.
func ValidSeason(token string) bool {
	return seasons[token]
}
