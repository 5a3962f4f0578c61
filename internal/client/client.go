// Package client implements the HTTP API client used by the blogctl
// command line tool. It speaks the server's JSON wire format and keeps
// the session token in memory for the lifetime of the process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author,omitempty"`
	Likes  int    `json:"likes"`
	UserID string `json:"userId"`
	User   *Owner `json:"user,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Token returns the session token obtained by Login, or "" before login.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var e struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return fmt.Errorf("%s", e.Error)
}

func (c *Client) Register(ctx context.Context, username, name string, password []byte) (*User, error) {
	req := map[string]string{"username": username, "name": name, "password": string(password)}
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	req := map[string]string{"username": username, "password": string(password)}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) CreateBlog(ctx context.Context, title, url, author string, likes *int) (*Blog, error) {
	req := map[string]any{"title": title, "url": url}
	if author != "" {
		req["author"] = author
	}
	if likes != nil {
		req["likes"] = *likes
	}
	var b Blog
	if err := c.do(ctx, http.MethodPost, "/api/blogs", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	var list []Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+id, nil, nil)
}
