package httpapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alphabot-ai/bloglist/internal/auth"
	"github.com/alphabot-ai/bloglist/internal/config"
	"github.com/alphabot-ai/bloglist/internal/model"
	"github.com/alphabot-ai/bloglist/internal/rate"
	"github.com/alphabot-ai/bloglist/internal/stats"
	"github.com/alphabot-ai/bloglist/internal/store"

	_ "github.com/alphabot-ai/bloglist/docs" // swagger docs

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type Server struct {
	store   store.Store
	auth    *auth.Service
	stats   *stats.Service
	limiter rate.Limiter
	cfg     config.Config
	handler http.Handler
}

func NewServer(st store.Store, authSvc *auth.Service, statsSvc *stats.Service, limiter rate.Limiter, cfg config.Config) *Server {
	s := &Server{store: st, auth: authSvc, stats: statsSvc, limiter: limiter, cfg: cfg}
	s.handler = instrument(http.HandlerFunc(s.route))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case strings.HasPrefix(path, "/api/"):
		s.handleAPI(w, r)
	case path == "/metrics":
		promhttp.Handler().ServeHTTP(w, r)
	case path == "/healthz":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	case strings.HasPrefix(path, "/swagger/"):
		httpSwagger.WrapHandler.ServeHTTP(w, r)
	default:
		notFound(w)
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	segments := splitPath(path)

	switch {
	case len(segments) == 1 && segments[0] == "blogs":
		if r.Method == http.MethodGet {
			s.handleListBlogs(w, r)
			return
		}
		if r.Method == http.MethodPost {
			s.handleCreateBlog(w, r)
			return
		}
		methodNotAllowed(w)
		return
	case len(segments) == 2 && segments[0] == "blogs" && segments[1] == "stats":
		if r.Method == http.MethodGet {
			s.handleGetStats(w, r)
			return
		}
		methodNotAllowed(w)
		return
	case len(segments) == 2 && segments[0] == "blogs":
		switch r.Method {
		case http.MethodGet:
			s.handleGetBlog(w, r, segments[1])
		case http.MethodPut:
			s.handleUpdateBlog(w, r, segments[1])
		case http.MethodDelete:
			s.handleDeleteBlog(w, r, segments[1])
		default:
			methodNotAllowed(w)
		}
		return
	case len(segments) == 1 && segments[0] == "users":
		if r.Method == http.MethodGet {
			s.handleListUsers(w, r)
			return
		}
		if r.Method == http.MethodPost {
			s.handleCreateUser(w, r)
			return
		}
		methodNotAllowed(w)
		return
	case len(segments) == 1 && segments[0] == "login":
		if r.Method == http.MethodPost {
			s.handleLogin(w, r)
			return
		}
		methodNotAllowed(w)
		return
	case len(segments) == 1 && segments[0] == "version":
		if r.Method == http.MethodGet {
			s.handleVersion(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "openapi.json":
		if r.Method == http.MethodGet {
			s.serveOpenAPIJSON(w, r)
			return
		}
	}

	notFound(w)
}

type blogRequest struct {
	// Pointers tell an omitted field from an explicitly empty one on update.
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int   `json:"likes"`

	// Echoed back by clients that PUT a whole blog object; ignored.
	ID        any `json:"id,omitempty"`
	UserID    any `json:"user_id,omitempty"`
	Username  any `json:"username,omitempty"`
	CreatedAt any `json:"created_at,omitempty"`
}

type userRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleListBlogs godoc
//
//	@Summary	List blogs
//	@Tags		Blogs
//	@Produce	json
//	@Param		sort	query	string	false	"Sort order"	Enums(new, top)
//	@Param		limit	query	int		false	"Maximum results"	default(100)
//	@Success	200		{array}	model.Blog
//	@Router		/api/blogs [get]
func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	sort := r.URL.Query().Get("sort")
	limit := parseIntDefault(r.URL.Query().Get("limit"), 100)

	blogs, err := s.store.ListBlogs(r.Context(), store.BlogListOpts{Sort: sort, Limit: limit})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// handleGetBlog godoc
//
//	@Summary	Get a blog
//	@Tags		Blogs
//	@Produce	json
//	@Param		id	path		int	true	"Blog ID"
//	@Success	200	{object}	model.Blog
//	@Failure	404	{object}	errorResponse
//	@Router		/api/blogs/{id} [get]
func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid blog id"))
		return
	}
	blog, err := s.store.GetBlog(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// handleCreateBlog godoc
//
//	@Summary	Create a blog
//	@Tags		Blogs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		blog	body		blogRequest	true	"Blog data"
//	@Success	201		{object}	model.Blog
//	@Failure	400		{object}	errorResponse
//	@Failure	401		{object}	errorResponse
//	@Failure	429		{object}	errorResponse
//	@Router		/api/blogs [post]
func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	if !s.allowRateLimit(w, r, "blog", s.cfg.RateLimits.BlogPerMinute) {
		return
	}
	verified, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var req blogRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	blog := model.Blog{
		Title:     trimmed(req.Title),
		Author:    trimmed(req.Author),
		URL:       trimmed(req.URL),
		UserID:    verified.UserID,
		Username:  verified.Username,
		CreatedAt: time.Now(),
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}
	if err := validateBlog(blog); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.store.CreateBlog(r.Context(), &blog)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	blog.ID = id
	s.stats.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, blog)
}

// handleUpdateBlog godoc
//
//	@Summary		Update a blog
//	@Description	Replace title, author, url and likes. Omitted fields keep their current value; an empty author clears it.
//	@Tags			Blogs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Blog ID"
//	@Param			blog	body		blogRequest	true	"Blog data"
//	@Success		200		{object}	model.Blog
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/api/blogs/{id} [put]
func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid blog id"))
		return
	}
	var req blogRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	blog, err := s.store.GetBlog(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if req.Title != nil {
		blog.Title = trimmed(req.Title)
	}
	if req.Author != nil {
		blog.Author = trimmed(req.Author)
	}
	if req.URL != nil {
		blog.URL = trimmed(req.URL)
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}
	if err := validateBlog(blog); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.store.UpdateBlog(r.Context(), blog); err != nil {
		writeStoreError(w, err)
		return
	}
	s.stats.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, blog)
}

// handleDeleteBlog godoc
//
//	@Summary	Delete a blog
//	@Tags		Blogs
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Blog ID"
//	@Success	204
//	@Failure	401	{object}	errorResponse
//	@Failure	403	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/blogs/{id} [delete]
func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request, idStr string) {
	verified, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid blog id"))
		return
	}

	blog, err := s.store.GetBlog(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if blog.UserID != verified.UserID {
		writeError(w, http.StatusForbidden, errors.New("only the creator can delete a blog"))
		return
	}

	if err := s.store.DeleteBlog(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	s.stats.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleGetStats godoc
//
//	@Summary		Aggregate blog statistics
//	@Description	Total likes, favorite blog, author with most blogs and author with most likes. Absent metrics are null.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	model.BlogStats
//	@Router			/api/blogs/stats [get]
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleListUsers godoc
//
//	@Summary	List users with their blogs
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}	model.UserWithBlogs
//	@Router		/api/users [get]
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]model.UserWithBlogs, 0, len(users))
	for _, u := range users {
		blogs, err := s.store.ListBlogsByUser(r.Context(), u.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, model.UserWithBlogs{User: u, Blogs: blogs})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateUser godoc
//
//	@Summary	Register a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		userRequest	true	"User data"
//	@Success	201		{object}	model.User
//	@Failure	400		{object}	errorResponse
//	@Failure	409		{object}	errorResponse
//	@Router		/api/users [post]
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if !s.allowRateLimit(w, r, "user", s.cfg.RateLimits.UserPerMinute) {
		return
	}
	var req userRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	user, err := s.auth.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrInvalidPassword):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, store.ErrDuplicateUsername):
			writeError(w, http.StatusConflict, errors.New("username must be unique"))
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// handleLogin godoc
//
//	@Summary	Log in
//	@Tags		Authentication
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		loginRequest	true	"Credentials"
//	@Success	200			{object}	loginResponse
//	@Failure	401			{object}	errorResponse
//	@Router		/api/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.allowRateLimit(w, r, "login", s.cfg.RateLimits.LoginPerMinute) {
		return
	}
	var req loginRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token, user, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token.Token,
		Username:  user.Username,
		Name:      user.Name,
		ExpiresAt: token.ExpiresAt,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"version":    s.cfg.Version,
		"commit":     s.cfg.Commit,
		"build_time": s.cfg.BuildTime,
	})
}

func (s *Server) serveOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (s *Server) allowRateLimit(w http.ResponseWriter, r *http.Request, action string, limit int) bool {
	if limit <= 0 {
		return true
	}
	ipKey := fmt.Sprintf("%s:ip:%s", action, s.clientIP(r))
	if ok, retry := s.limiter.Allow(ipKey, limit, time.Minute); !ok {
		writeRateLimit(w, retry)
		return false
	}
	return true
}

func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (auth.Verified, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		writeError(w, http.StatusUnauthorized, errors.New("token missing"))
		return auth.Verified{}, false
	}
	bearer := strings.TrimSpace(authHeader[len("bearer "):])
	verified, err := s.auth.Authenticate(r.Context(), bearer)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return auth.Verified{}, false
	}
	return verified, true
}

func (s *Server) clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func validateBlog(b model.Blog) error {
	if b.Title == "" {
		return errors.New("title is required")
	}
	if b.URL == "" {
		return errors.New("url is required")
	}
	if _, err := url.Parse(b.URL); err != nil {
		return errors.New("invalid url")
	}
	if b.Likes < 0 {
		return errors.New("likes must not be negative")
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func readJSON(body io.ReadCloser, dest any) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func writeRateLimit(w http.ResponseWriter, retry time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
	writeJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate limit exceeded",
		"retry_after": int(retry.Seconds()),
	})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, errors.New("unknown endpoint"))
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func parseIntDefault(value string, def int) int {
	if value == "" {
		return def
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return def
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
