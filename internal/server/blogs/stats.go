package blogs

import "context"

// Aggregations over a blog list. All functions are pure; on a tie the
// earliest entry in list order wins.

// AuthorBlogs is the author with the largest number of entries.
type AuthorBlogs struct {
	Author string
	Blogs  int
}

// AuthorLikes is the author whose entries collected the most likes.
type AuthorLikes struct {
	Author string
	Likes  int
}

// Stats bundles the aggregations served by the stats endpoint. The
// pointer fields are nil when the list is empty.
type Stats struct {
	TotalLikes int
	Favorite   *Blog
	MostBlogs  *AuthorBlogs
	MostLikes  *AuthorLikes
}

// TotalLikes sums the likes of all entries. An empty list yields 0.
func TotalLikes(list []*Blog) int {
	total := 0
	for _, b := range list {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the entry with the most likes, or nil for an
// empty list.
func FavoriteBlog(list []*Blog) *Blog {
	var favorite *Blog
	for _, b := range list {
		if favorite == nil || b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite
}

// MostBlogs returns the author with the most entries, or nil for an
// empty list.
func MostBlogs(list []*Blog) *AuthorBlogs {
	counts := make(map[string]int)

	var top *AuthorBlogs
	for _, b := range list {
		counts[b.Author]++
		if top == nil || counts[b.Author] > top.Blogs {
			top = &AuthorBlogs{Author: b.Author, Blogs: counts[b.Author]}
		}
	}
	return top
}

// MostLikes returns the author whose entries collected the most likes
// in total, or nil for an empty list.
func MostLikes(list []*Blog) *AuthorLikes {
	likes := make(map[string]int)
	for _, b := range list {
		likes[b.Author] += b.Likes
	}

	var top *AuthorLikes
	for _, b := range list {
		total := likes[b.Author]
		if top == nil || total > top.Likes {
			top = &AuthorLikes{Author: b.Author, Likes: total}
		}
	}
	return top
}

// Stats computes the aggregations over the current blog list.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalLikes: TotalLikes(list),
		Favorite:   FavoriteBlog(list),
		MostBlogs:  MostBlogs(list),
		MostLikes:  MostLikes(list),
	}, nil
}
