package client

import "github.com/kuromu/mal-client/pkg/params"

// CallOption adjusts a single request without touching session defaults.
type CallOption func(*params.Options)

// Limit sets the page size for this request. Out-of-range values are clamped
// to the endpoint's bounds.
func Limit(n int) CallOption {
	return func(o *params.Options) { o.Limit = params.Int(n) }
}

// Offset sets the page offset for this request.
func Offset(n int) CallOption {
	return func(o *params.Options) { o.Offset = params.Int(n) }
}

// Fields selects the detail fields returned for each entry. Unknown or
// inapplicable names are dropped with a warning.
func Fields(names ...string) CallOption {
	return func(o *params.Options) { o.Fields = names }
}

// NSFW overrides the session not-safe-for-work setting for this request.
func NSFW(include bool) CallOption {
	return func(o *params.Options) { o.NSFW = params.Bool(include) }
}

// Status filters a user list by entry status (e.g. "completed").
func Status(s string) CallOption {
	return func(o *params.Options) { o.Status = params.String(s) }
}

// SortBy orders results (e.g. "list_score", "anime_title").
func SortBy(s string) CallOption {
	return func(o *params.Options) { o.Sort = params.String(s) }
}

// Query restricts a forum topic search to topics matching q.
func Query(q string) CallOption {
	return func(o *params.Options) { o.Query = params.String(q) }
}

// BoardID restricts a forum topic search to one board.
func BoardID(id int) CallOption {
	return func(o *params.Options) { o.BoardID = params.Int(id) }
}

// SubboardID restricts a forum topic search to one sub-board.
func SubboardID(id int) CallOption {
	return func(o *params.Options) { o.SubboardID = params.Int(id) }
}

// TopicStarter restricts a forum topic search to topics started by a user.
func TopicStarter(name string) CallOption {
	return func(o *params.Options) { o.TopicUserName = params.String(name) }
}

// PostedBy restricts a forum topic search to topics a user posted in.
func PostedBy(name string) CallOption {
	return func(o *params.Options) { o.UserName = params.String(name) }
}

func buildOptions(opts []CallOption) params.Options {
	var o params.Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
