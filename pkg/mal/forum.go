package mal

import "time"

// SubBoard is a subboard of a forum board.
type SubBoard struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Board is a forum board with its subboards.
type Board struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Subboards   []SubBoard `json:"subboards"`
}

// BoardCategory groups boards under a named category.
type BoardCategory struct {
	Title  string  `json:"title"`
	Boards []Board `json:"boards"`
}

// ForumBoards is the full board listing, divided by category.
type ForumBoards struct {
	Categories []BoardCategory `json:"categories"`
}

// ForumUser is a user reference in forum payloads.
type ForumUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// The API spells the key this way.
	ForumAvator string `json:"forum_avator"`
}

// Topic is a forum topic summary as returned by topic search.
type Topic struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	CreatedAt         time.Time `json:"created_at"`
	CreatedBy         ForumUser `json:"created_by"`
	NumberOfPosts     int       `json:"number_of_posts"`
	LastPostCreatedAt time.Time `json:"last_post_created_at"`
	LastPostCreatedBy ForumUser `json:"last_post_created_by"`
	IsLocked          bool      `json:"is_locked"`
}

// ForumTopicsPage is one page of topic search results.
type ForumTopicsPage struct {
	Data   []Topic `json:"data"`
	Paging Paging  `json:"paging"`
}

// PollOption is a single answer of a topic poll with its vote count.
type PollOption struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is a poll attached to a forum topic.
type Poll struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Closed   bool         `json:"closed"`
	Options  []PollOption `json:"options"`
}

// Post is a single post inside a discussion.
type Post struct {
	ID        int       `json:"id"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy ForumUser `json:"created_by"`
	Body      string    `json:"body"`
	Signature string    `json:"signature"`
}

// Discussion is the full detail of a forum topic: its posts and an
// optional poll.
type Discussion struct {
	Title string `json:"title"`
	Posts []Post `json:"posts"`
	Poll  *Poll  `json:"poll"`
}

// TopicDetailPage wraps a discussion with its paging block.
type TopicDetailPage struct {
	Data   Discussion `json:"data"`
	Paging Paging     `json:"paging"`
}
