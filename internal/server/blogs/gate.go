package blogs

import "github.com/dpavlenko/bloglist/internal/common"

// AuthorizeMutation decides whether userID may update or delete blog.
// The check is pure: ids are compared as canonical strings, no I/O.
// A mismatch fails with common.ErrNotOwner.
func AuthorizeMutation(blog *Blog, userID string) error {
	if blog.UserID != userID {
		return common.ErrNotOwner
	}
	return nil
}
