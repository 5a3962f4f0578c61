package httpapi

import (
	"net/http"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/dpavlenko/bloglist/internal/server/blogs"
	"github.com/go-chi/chi/v5"
)

type blogInput struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author"`
	Likes  *int   `json:"likes"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type blogResponse struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	URL    string         `json:"url"`
	Author string         `json:"author,omitempty"`
	Likes  int            `json:"likes"`
	UserID string         `json:"userId"`
	User   *ownerResponse `json:"user,omitempty"`
}

func toBlogResponse(b *blogs.Blog) blogResponse {
	resp := blogResponse{
		ID:     b.ID,
		Title:  b.Title,
		URL:    b.URL,
		Author: b.Author,
		Likes:  b.Likes,
		UserID: b.UserID,
	}
	if b.Owner != nil {
		resp.User = &ownerResponse{ID: b.Owner.ID, Username: b.Owner.Username, Name: b.Owner.Name}
	}
	return resp
}

func (in blogInput) toInput() blogs.Input {
	return blogs.Input{Title: in.Title, URL: in.URL, Author: in.Author, Likes: in.Likes}
}

type authorBlogsResponse struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type authorLikesResponse struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type statsResponse struct {
	TotalLikes int                  `json:"totalLikes"`
	Favorite   *blogResponse        `json:"favorite"`
	MostBlogs  *authorBlogsResponse `json:"mostBlogs"`
	MostLikes  *authorLikesResponse `json:"mostLikes"`
}

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {

	list, err := s.blogs.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing blogs failed", "reason", err.Error())
		writeError(w, err)
		return
	}

	resp := make([]blogResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, toBlogResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlogStats(w http.ResponseWriter, r *http.Request) {

	stats, err := s.blogs.Stats(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "computing blog stats failed", "reason", err.Error())
		writeError(w, err)
		return
	}

	resp := statsResponse{TotalLikes: stats.TotalLikes}
	if stats.Favorite != nil {
		fav := toBlogResponse(stats.Favorite)
		resp.Favorite = &fav
	}
	if stats.MostBlogs != nil {
		resp.MostBlogs = &authorBlogsResponse{Author: stats.MostBlogs.Author, Blogs: stats.MostBlogs.Blogs}
	}
	if stats.MostLikes != nil {
		resp.MostLikes = &authorLikesResponse{Author: stats.MostLikes.Author, Likes: stats.MostLikes.Likes}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {

	blog, err := s.blogs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// a well-formed id with no record yields a null body, not an error
	if blog == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, toBlogResponse(blog))
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var in blogInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	blog, err := s.blogs.Create(r.Context(), user.ID, in.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "blog created", "blog_id", blog.ID, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toBlogResponse(blog))
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var in blogInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	blog, err := s.blogs.Update(r.Context(), chi.URLParam(r, "id"), user.ID, in.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlogResponse(blog))
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	if err := s.blogs.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
