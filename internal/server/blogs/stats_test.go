package blogs

import (
	"context"
	"testing"
)

func statsFixture() []*Blog {
	return []*Blog{
		{ID: "b1", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{ID: "b2", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		{ID: "b3", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
		{ID: "b4", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
		{ID: "b5", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
		{ID: "b6", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
	}
}

func TestTotalLikes(t *testing.T) {
	if got := TotalLikes(nil); got != 0 {
		t.Fatalf("empty list: expected 0, got %d", got)
	}
	if got := TotalLikes(statsFixture()[:1]); got != 7 {
		t.Fatalf("single blog: expected 7, got %d", got)
	}
	if got := TotalLikes(statsFixture()); got != 36 {
		t.Fatalf("full list: expected 36, got %d", got)
	}
}

func TestFavoriteBlog(t *testing.T) {
	if got := FavoriteBlog(nil); got != nil {
		t.Fatalf("empty list: expected nil, got %+v", got)
	}

	got := FavoriteBlog(statsFixture())
	if got == nil || got.Title != "Canonical string reduction" || got.Likes != 12 {
		t.Fatalf("unexpected favorite: %+v", got)
	}
}

func TestFavoriteBlog_TieKeepsFirst(t *testing.T) {
	list := []*Blog{
		{ID: "b1", Title: "first", Likes: 5},
		{ID: "b2", Title: "second", Likes: 5},
	}
	if got := FavoriteBlog(list); got.ID != "b1" {
		t.Fatalf("tie must keep the earlier entry, got %+v", got)
	}
}

func TestMostBlogs(t *testing.T) {
	if got := MostBlogs(nil); got != nil {
		t.Fatalf("empty list: expected nil, got %+v", got)
	}

	got := MostBlogs(statsFixture())
	if got == nil || got.Author != "Robert C. Martin" || got.Blogs != 3 {
		t.Fatalf("unexpected author: %+v", got)
	}
}

func TestMostLikes(t *testing.T) {
	if got := MostLikes(nil); got != nil {
		t.Fatalf("empty list: expected nil, got %+v", got)
	}

	got := MostLikes(statsFixture())
	if got == nil || got.Author != "Edsger W. Dijkstra" || got.Likes != 17 {
		t.Fatalf("unexpected author: %+v", got)
	}
}

func TestServiceStats(t *testing.T) {
	repo := NewInMemoryRepository()
	for _, b := range statsFixture() {
		if _, err := repo.Create(context.Background(), b); err != nil {
			t.Fatalf("seeding repo: %v", err)
		}
	}
	s := NewService(repo)

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.TotalLikes != 36 {
		t.Fatalf("expected total 36, got %d", stats.TotalLikes)
	}
	if stats.Favorite == nil || stats.Favorite.Title != "Canonical string reduction" {
		t.Fatalf("unexpected favorite: %+v", stats.Favorite)
	}
	if stats.MostBlogs == nil || stats.MostBlogs.Author != "Robert C. Martin" {
		t.Fatalf("unexpected most-blogs author: %+v", stats.MostBlogs)
	}
	if stats.MostLikes == nil || stats.MostLikes.Author != "Edsger W. Dijkstra" {
		t.Fatalf("unexpected most-likes author: %+v", stats.MostLikes)
	}
}

func TestServiceStats_EmptyList(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.TotalLikes != 0 || stats.Favorite != nil || stats.MostBlogs != nil || stats.MostLikes != nil {
		t.Fatalf("empty list stats not empty: %+v", stats)
	}
}
