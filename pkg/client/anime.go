package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/mal"
	"github.com/kuromu/mal-client/pkg/params"
)

// AnimeSearch searches the anime catalog by title.
func (c *Client) AnimeSearch(ctx context.Context, query string, opts ...CallOption) (*mal.AnimeSearchPage, error) {
	o := buildOptions(opts)
	o.Query = params.String(query)

	var page mal.AnimeSearchPage
	if err := c.getJSON(ctx, endpoint.AnimeSearch, nil, o, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAnime fetches one anime by ID.
func (c *Client) GetAnime(ctx context.Context, id int, opts ...CallOption) (*mal.Anime, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: anime id must be positive, got %d", ErrInvalidArgument, id)
	}

	var anime mal.Anime
	err := c.getJSON(ctx, endpoint.AnimeDetails,
		map[string]string{"id": strconv.Itoa(id)}, buildOptions(opts), &anime)
	if err != nil {
		return nil, err
	}
	return &anime, nil
}

// GetAnimeByURL fetches one anime identified by its catalog page URL
// (e.g. https://myanimelist.net/anime/16498/Shingeki_no_Kyojin).
func (c *Client) GetAnimeByURL(ctx context.Context, pageURL string, opts ...CallOption) (*mal.Anime, error) {
	id, err := mal.IDFromPageURL(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return c.GetAnime(ctx, id, opts...)
}

// GetSeasonalAnime fetches the anime airing in a broadcast season.
func (c *Client) GetSeasonalAnime(ctx context.Context, year int, season mal.Season, opts ...CallOption) (*mal.SeasonalAnimePage, error) {
	if year < 1917 {
		return nil, fmt.Errorf("%w: year %d predates broadcast anime", ErrInvalidArgument, year)
	}
	if !mal.ValidSeason(string(season)) {
		return nil, fmt.Errorf("%w: %q is not a season", ErrInvalidArgument, season)
	}

	var page mal.SeasonalAnimePage
	err := c.getJSON(ctx, endpoint.AnimeSeasonal,
		map[string]string{"year": strconv.Itoa(year), "season": string(season)},
		buildOptions(opts), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAnimeRanking fetches the anime ranking of the given type
// (e.g. mal.AnimeRankingAiring). The ranking type is recorded on the
// returned page.
func (c *Client) GetAnimeRanking(ctx context.Context, rankingType mal.AnimeRankingType, opts ...CallOption) (*mal.AnimeRankingPage, error) {
	o := buildOptions(opts)
	o.RankingType = params.String(string(rankingType))

	var page mal.AnimeRankingPage
	if err := c.getJSON(ctx, endpoint.AnimeRanking, nil, o, &page); err != nil {
		return nil, err
	}
	page.Type = rankingType
	return &page, nil
}

// GetAnimeCharacters fetches the characters appearing in an anime.
func (c *Client) GetAnimeCharacters(ctx context.Context, id int, opts ...CallOption) (*mal.CharacterPage, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: anime id must be positive, got %d", ErrInvalidArgument, id)
	}

	var page mal.CharacterPage
	err := c.getJSON(ctx, endpoint.AnimeCharacters,
		map[string]string{"id": strconv.Itoa(id)}, buildOptions(opts), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAnimeList fetches a user's public anime list. Status and SortBy options
// filter and order the list.
func (c *Client) GetAnimeList(ctx context.Context, username string, opts ...CallOption) (*mal.AnimeListPage, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}

	var page mal.AnimeListPage
	err := c.getJSON(ctx, endpoint.UserAnimeList,
		map[string]string{"username": username}, buildOptions(opts), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
