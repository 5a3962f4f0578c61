package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dpavlenko/bloglist/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type blogRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Likes int    `json:"likes"`
}

type publicUserResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name"`
	Blogs    []blogRefResponse `json:"blogs"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body", common.ErrValidation)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "registration failed", "reason", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Name: user.Name})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {

	list, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users failed", "reason", err.Error())
		writeError(w, err)
		return
	}

	resp := make([]publicUserResponse, 0, len(list))
	for _, u := range list {
		pu := publicUserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Blogs: []blogRefResponse{}}
		for _, b := range u.Blogs {
			pu.Blogs = append(pu.Blogs, blogRefResponse{ID: b.ID, Title: b.Title, URL: b.URL, Likes: b.Likes})
		}
		resp = append(resp, pu)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "login failed", "username", req.Username)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.Username, Name: user.Name})
}
