package blogs

import "time"

// Blog is a content entry with a single immutable owner. UserID is set at
// creation and never changes afterwards.
type Blog struct {
	ID        string
	Title     string
	URL       string
	Author    string
	Likes     int
	UserID    string
	CreatedAt time.Time

	// Owner is the public projection of the owning user, populated on
	// listings. Never carries credentials.
	Owner *Owner
}

// Owner is the minimal public projection of a user attached to a blog.
type Owner struct {
	ID       string
	Username string
	Name     string
}
