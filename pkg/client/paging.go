package client

import (
	"context"

	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/mal"
)

// fetchPage follows an absolute paging URL and decodes the next page.
func fetchPage[T any](ctx context.Context, c *Client, name, url string) (*T, error) {
	if url == "" {
		return nil, ErrNoMorePages
	}
	var page T
	if err := c.getPageURL(ctx, name, url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NextAnimeSearchPage follows cur's next link.
// Returns ErrNoMorePages at the end of the result set.
func (c *Client) NextAnimeSearchPage(ctx context.Context, cur *mal.AnimeSearchPage) (*mal.AnimeSearchPage, error) {
	return fetchPage[mal.AnimeSearchPage](ctx, c, endpoint.AnimeSearch.Name, cur.Paging.Next)
}

// PrevAnimeSearchPage follows cur's previous link.
func (c *Client) PrevAnimeSearchPage(ctx context.Context, cur *mal.AnimeSearchPage) (*mal.AnimeSearchPage, error) {
	return fetchPage[mal.AnimeSearchPage](ctx, c, endpoint.AnimeSearch.Name, cur.Paging.Previous)
}

// NextSeasonalAnimePage follows cur's next link.
func (c *Client) NextSeasonalAnimePage(ctx context.Context, cur *mal.SeasonalAnimePage) (*mal.SeasonalAnimePage, error) {
	return fetchPage[mal.SeasonalAnimePage](ctx, c, endpoint.AnimeSeasonal.Name, cur.Paging.Next)
}

// PrevSeasonalAnimePage follows cur's previous link.
func (c *Client) PrevSeasonalAnimePage(ctx context.Context, cur *mal.SeasonalAnimePage) (*mal.SeasonalAnimePage, error) {
	return fetchPage[mal.SeasonalAnimePage](ctx, c, endpoint.AnimeSeasonal.Name, cur.Paging.Previous)
}

// NextAnimeRankingPage follows cur's next link. The ranking type carries over
// to the returned page.
func (c *Client) NextAnimeRankingPage(ctx context.Context, cur *mal.AnimeRankingPage) (*mal.AnimeRankingPage, error) {
	page, err := fetchPage[mal.AnimeRankingPage](ctx, c, endpoint.AnimeRanking.Name, cur.Paging.Next)
	if err != nil {
		return nil, err
	}
	page.Type = cur.Type
	return page, nil
}

// PrevAnimeRankingPage follows cur's previous link.
func (c *Client) PrevAnimeRankingPage(ctx context.Context, cur *mal.AnimeRankingPage) (*mal.AnimeRankingPage, error) {
	page, err := fetchPage[mal.AnimeRankingPage](ctx, c, endpoint.AnimeRanking.Name, cur.Paging.Previous)
	if err != nil {
		return nil, err
	}
	page.Type = cur.Type
	return page, nil
}

// NextAnimeListPage follows cur's next link.
func (c *Client) NextAnimeListPage(ctx context.Context, cur *mal.AnimeListPage) (*mal.AnimeListPage, error) {
	return fetchPage[mal.AnimeListPage](ctx, c, endpoint.UserAnimeList.Name, cur.Paging.Next)
}

// PrevAnimeListPage follows cur's previous link.
func (c *Client) PrevAnimeListPage(ctx context.Context, cur *mal.AnimeListPage) (*mal.AnimeListPage, error) {
	return fetchPage[mal.AnimeListPage](ctx, c, endpoint.UserAnimeList.Name, cur.Paging.Previous)
}

// NextCharacterPage follows cur's next link.
func (c *Client) NextCharacterPage(ctx context.Context, cur *mal.CharacterPage) (*mal.CharacterPage, error) {
	return fetchPage[mal.CharacterPage](ctx, c, endpoint.AnimeCharacters.Name, cur.Paging.Next)
}

// PrevCharacterPage follows cur's previous link.
func (c *Client) PrevCharacterPage(ctx context.Context, cur *mal.CharacterPage) (*mal.CharacterPage, error) {
	return fetchPage[mal.CharacterPage](ctx, c, endpoint.AnimeCharacters.Name, cur.Paging.Previous)
}

// NextMangaSearchPage follows cur's next link.
func (c *Client) NextMangaSearchPage(ctx context.Context, cur *mal.MangaSearchPage) (*mal.MangaSearchPage, error) {
	return fetchPage[mal.MangaSearchPage](ctx, c, endpoint.MangaSearch.Name, cur.Paging.Next)
}

// PrevMangaSearchPage follows cur's previous link.
func (c *Client) PrevMangaSearchPage(ctx context.Context, cur *mal.MangaSearchPage) (*mal.MangaSearchPage, error) {
	return fetchPage[mal.MangaSearchPage](ctx, c, endpoint.MangaSearch.Name, cur.Paging.Previous)
}

// NextMangaRankingPage follows cur's next link. The ranking type carries over
// to the returned page.
func (c *Client) NextMangaRankingPage(ctx context.Context, cur *mal.MangaRankingPage) (*mal.MangaRankingPage, error) {
	page, err := fetchPage[mal.MangaRankingPage](ctx, c, endpoint.MangaRanking.Name, cur.Paging.Next)
	if err != nil {
		return nil, err
	}
	page.Type = cur.Type
	return page, nil
}

// PrevMangaRankingPage follows cur's previous link.
func (c *Client) PrevMangaRankingPage(ctx context.Context, cur *mal.MangaRankingPage) (*mal.MangaRankingPage, error) {
	page, err := fetchPage[mal.MangaRankingPage](ctx, c, endpoint.MangaRanking.Name, cur.Paging.Previous)
	if err != nil {
		return nil, err
	}
	page.Type = cur.Type
	return page, nil
}

// NextMangaListPage follows cur's next link.
func (c *Client) NextMangaListPage(ctx context.Context, cur *mal.MangaListPage) (*mal.MangaListPage, error) {
	return fetchPage[mal.MangaListPage](ctx, c, endpoint.UserMangaList.Name, cur.Paging.Next)
}

// PrevMangaListPage follows cur's previous link.
func (c *Client) PrevMangaListPage(ctx context.Context, cur *mal.MangaListPage) (*mal.MangaListPage, error) {
	return fetchPage[mal.MangaListPage](ctx, c, endpoint.UserMangaList.Name, cur.Paging.Previous)
}

// NextTopicsPage follows cur's next link.
func (c *Client) NextTopicsPage(ctx context.Context, cur *mal.ForumTopicsPage) (*mal.ForumTopicsPage, error) {
	return fetchPage[mal.ForumTopicsPage](ctx, c, endpoint.ForumTopics.Name, cur.Paging.Next)
}

// PrevTopicsPage follows cur's previous link.
func (c *Client) PrevTopicsPage(ctx context.Context, cur *mal.ForumTopicsPage) (*mal.ForumTopicsPage, error) {
	return fetchPage[mal.ForumTopicsPage](ctx, c, endpoint.ForumTopics.Name, cur.Paging.Previous)
}

// NextTopicDetailPage follows cur's next link.
func (c *Client) NextTopicDetailPage(ctx context.Context, cur *mal.TopicDetailPage) (*mal.TopicDetailPage, error) {
	return fetchPage[mal.TopicDetailPage](ctx, c, endpoint.ForumTopicDetail.Name, cur.Paging.Next)
}

// PrevTopicDetailPage follows cur's previous link.
func (c *Client) PrevTopicDetailPage(ctx context.Context, cur *mal.TopicDetailPage) (*mal.TopicDetailPage, error) {
	return fetchPage[mal.TopicDetailPage](ctx, c, endpoint.ForumTopicDetail.Name, cur.Paging.Previous)
}
