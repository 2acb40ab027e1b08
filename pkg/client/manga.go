package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/mal"
	"github.com/kuromu/mal-client/pkg/params"
)

// MangaSearch searches the manga catalog by title.
func (c *Client) MangaSearch(ctx context.Context, query string, opts ...CallOption) (*mal.MangaSearchPage, error) {
	o := buildOptions(opts)
	o.Query = params.String(query)

	var page mal.MangaSearchPage
	if err := c.getJSON(ctx, endpoint.MangaSearch, nil, o, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetManga fetches one manga by ID.
func (c *Client) GetManga(ctx context.Context, id int, opts ...CallOption) (*mal.Manga, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: manga id must be positive, got %d", ErrInvalidArgument, id)
	}

	var manga mal.Manga
	err := c.getJSON(ctx, endpoint.MangaDetails,
		map[string]string{"id": strconv.Itoa(id)}, buildOptions(opts), &manga)
	if err != nil {
		return nil, err
	}
	return &manga, nil
}

// GetMangaByURL fetches one manga identified by its catalog page URL.
func (c *Client) GetMangaByURL(ctx context.Context, pageURL string, opts ...CallOption) (*mal.Manga, error) {
	id, err := mal.IDFromPageURL(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return c.GetManga(ctx, id, opts...)
}

// GetMangaRanking fetches the manga ranking of the given type
// (e.g. mal.MangaRankingManga). The ranking type is recorded on the
// returned page.
func (c *Client) GetMangaRanking(ctx context.Context, rankingType mal.MangaRankingType, opts ...CallOption) (*mal.MangaRankingPage, error) {
	o := buildOptions(opts)
	o.RankingType = params.String(string(rankingType))

	var page mal.MangaRankingPage
	if err := c.getJSON(ctx, endpoint.MangaRanking, nil, o, &page); err != nil {
		return nil, err
	}
	page.Type = rankingType
	return &page, nil
}

// GetMangaList fetches a user's public manga list. Status and SortBy options
// filter and order the list.
func (c *Client) GetMangaList(ctx context.Context, username string, opts ...CallOption) (*mal.MangaListPage, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}

	var page mal.MangaListPage
	err := c.getJSON(ctx, endpoint.UserMangaList,
		map[string]string{"username": username}, buildOptions(opts), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
