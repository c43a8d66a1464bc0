// Package client provides a Go client for the Bloglist API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
)

// Client is a Bloglist API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
	TokenExp   time.Time
	Username   string
}

// Credentials holds a username and password.
type Credentials struct {
	Username string
	Name     string
	Password string
}

// New creates a new Bloglist client.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Register creates a new user on the server.
func (c *Client) Register(creds Credentials) (*model.User, error) {
	reqBody := map[string]string{
		"username": creds.Username,
		"name":     creds.Name,
		"password": creds.Password,
	}
	resp, err := c.doRequest(http.MethodPost, "/api/users", reqBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, ErrAlreadyRegistered
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, responseError("register", resp)
	}

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(creds Credentials) error {
	reqBody := map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}
	resp, err := c.doRequest(http.MethodPost, "/api/login", reqBody)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return responseError("login", resp)
	}

	var result struct {
		Token     string    `json:"token"`
		Username  string    `json:"username"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	c.Token = result.Token
	c.TokenExp = result.ExpiresAt
	c.Username = result.Username
	return nil
}

// RegisterAndLogin is a convenience method that registers (if needed) and logs in.
func (c *Client) RegisterAndLogin(creds Credentials) error {
	_, err := c.Register(creds)
	if err != nil && !errors.Is(err, ErrAlreadyRegistered) {
		return fmt.Errorf("register: %w", err)
	}
	return c.Login(creds)
}

// IsAuthenticated returns true if the client has a valid token.
func (c *Client) IsAuthenticated() bool {
	return c.Token != "" && time.Now().Before(c.TokenExp)
}

// doRequest performs an authenticated HTTP request.
func (c *Client) doRequest(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return c.HTTPClient.Do(req)
}

// BlogInput is the payload for creating or updating a blog.
type BlogInput struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url,omitempty"`
	Likes  *int   `json:"likes,omitempty"`
}

// CreateBlog posts a new blog.
func (c *Client) CreateBlog(in BlogInput) (*model.Blog, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/blogs", in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, responseError("create blog", resp)
	}

	var blog model.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog replaces the given fields of a blog.
func (c *Client) UpdateBlog(id int64, in BlogInput) (*model.Blog, error) {
	path := fmt.Sprintf("/api/blogs/%d", id)
	resp, err := c.doRequest(http.MethodPut, path, in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("update blog", resp)
	}

	var blog model.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// Like increments a blog's likes by one.
func (c *Client) Like(id int64) (*model.Blog, error) {
	blog, err := c.GetBlog(id)
	if err != nil {
		return nil, err
	}
	likes := blog.Likes + 1
	return c.UpdateBlog(id, BlogInput{Likes: &likes})
}

// GetBlogs fetches blogs from the server.
func (c *Client) GetBlogs(sort string, limit int) ([]model.Blog, error) {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", sort)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/api/blogs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get blogs", resp)
	}

	var blogs []model.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBlog fetches a single blog.
func (c *Client) GetBlog(id int64) (*model.Blog, error) {
	path := fmt.Sprintf("/api/blogs/%d", id)
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get blog", resp)
	}

	var blog model.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog deletes a blog you created.
func (c *Client) DeleteBlog(id int64) error {
	path := fmt.Sprintf("/api/blogs/%d", id)
	resp, err := c.doRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return responseError("delete blog", resp)
	}
	return nil
}

// Stats fetches the aggregate blog statistics.
func (c *Client) Stats() (*model.BlogStats, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/blogs/stats", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get stats", resp)
	}

	var stats model.BlogStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUsers fetches all users with their blogs.
func (c *Client) GetUsers() ([]model.UserWithBlogs, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get users", resp)
	}

	var users []model.UserWithBlogs
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func responseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s failed (%d): %s", op, resp.StatusCode, string(body))
}

// Errors
var (
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
)

// TestHelper provides utilities for creating authenticated clients in tests.
type TestHelper struct {
	BaseURL string
}

// NewTestHelper creates a new test helper for the given base URL.
func NewTestHelper(baseURL string) *TestHelper {
	return &TestHelper{BaseURL: baseURL}
}

// CreateAuthenticatedClient registers a user with the given username and
// returns a logged-in client.
func (h *TestHelper) CreateAuthenticatedClient(username string) (*Client, error) {
	c := New(h.BaseURL)
	creds := Credentials{Username: username, Name: username, Password: username + "-password"}
	if err := c.RegisterAndLogin(creds); err != nil {
		return nil, err
	}
	return c, nil
}

// GetToken registers the user (if needed) and returns an access token.
func (h *TestHelper) GetToken(username string) (string, error) {
	c, err := h.CreateAuthenticatedClient(username)
	if err != nil {
		return "", err
	}
	return c.Token, nil
}
