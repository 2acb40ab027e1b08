package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kuromu/mal-client/pkg/endpoint"
	"github.com/kuromu/mal-client/pkg/mal"
)

// GetBoards fetches the forum board index.
func (c *Client) GetBoards(ctx context.Context) (*mal.ForumBoards, error) {
	var boards mal.ForumBoards
	if err := c.getJSON(ctx, endpoint.ForumBoards, nil, buildOptions(nil), &boards); err != nil {
		return nil, err
	}
	return &boards, nil
}

// GetTopics searches forum topics. At least one of Query, BoardID,
// SubboardID, TopicStarter or PostedBy must be given.
func (c *Client) GetTopics(ctx context.Context, opts ...CallOption) (*mal.ForumTopicsPage, error) {
	var page mal.ForumTopicsPage
	if err := c.getJSON(ctx, endpoint.ForumTopics, nil, buildOptions(opts), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTopicDetails fetches the posts of one forum topic.
func (c *Client) GetTopicDetails(ctx context.Context, topicID int, opts ...CallOption) (*mal.TopicDetailPage, error) {
	if topicID <= 0 {
		return nil, fmt.Errorf("%w: topic id must be positive, got %d", ErrInvalidArgument, topicID)
	}

	var page mal.TopicDetailPage
	err := c.getJSON(ctx, endpoint.ForumTopicDetail,
		map[string]string{"topic_id": strconv.Itoa(topicID)}, buildOptions(opts), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
