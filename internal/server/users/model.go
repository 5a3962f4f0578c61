package users

import "time"

// User is the stored account record. PasswordHash is never serialized;
// handlers expose users only through PublicUser.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the projection returned to API callers: identity fields
// plus the user's blogs, derived by query over the blogs table.
type PublicUser struct {
	ID       string
	Username string
	Name     string
	Blogs    []BlogRef
}

// BlogRef is the slice of a blog shown inside a user listing.
type BlogRef struct {
	ID    string
	Title string
	URL   string
	Likes int
}
