package httpapp_test

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alphabot-ai/bloglist/internal/auth"
	"github.com/alphabot-ai/bloglist/internal/cache"
	"github.com/alphabot-ai/bloglist/internal/client"
	"github.com/alphabot-ai/bloglist/internal/config"
	httpapp "github.com/alphabot-ai/bloglist/internal/http"
	"github.com/alphabot-ai/bloglist/internal/rate"
	"github.com/alphabot-ai/bloglist/internal/stats"
	"github.com/alphabot-ai/bloglist/internal/store/sqlite"
	"github.com/alphabot-ai/bloglist/internal/telemetry"
)

func TestEndToEndServer(t *testing.T) {
	st, err := sqlite.Open("file:e2e_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	cfg := config.Config{
		Addr:       ":0",
		RateLimits: config.RateLimits{BlogPerMinute: 1000, UserPerMinute: 1000, LoginPerMinute: 1000},
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
	}
	limiter := rate.NewMemory()
	authSvc := auth.NewService(st, cfg.JWTSecret, cfg.TokenTTL)
	statsSvc := stats.NewService(st, cache.NewMemory(time.Minute))
	server := httpapp.NewServer(st, authSvc, statsSvc, limiter, cfg)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	httpServer := &http.Server{Handler: telemetry.Wrap(server, "bloglist")}
	go func() {
		_ = httpServer.Serve(listener)
	}()
	defer httpServer.Close()

	baseURL := "http://" + listener.Addr().String()

	helper := client.NewTestHelper(baseURL)
	c, err := helper.CreateAuthenticatedClient("e2e-user")
	if err != nil {
		t.Fatalf("create e2e client: %v", err)
	}
	if !c.IsAuthenticated() {
		t.Fatalf("expected authenticated client")
	}

	likes := 5
	blog, err := c.CreateBlog(client.BlogInput{
		Title:  "E2E Blog",
		Author: "Ada",
		URL:    "https://example.com",
		Likes:  &likes,
	})
	if err != nil {
		t.Fatalf("create blog: %v", err)
	}

	liked, err := c.Like(blog.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if liked.Likes != 6 {
		t.Fatalf("expected 6 likes, got %d", liked.Likes)
	}

	summary, err := c.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.TotalLikes != 6 || summary.MostLikes == nil || summary.MostLikes.Author != "Ada" {
		t.Fatalf("unexpected stats: %+v", summary)
	}

	if err := c.DeleteBlog(blog.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.GetBlog(blog.ID); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	summary, err = c.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.FavoriteBlog != nil || summary.MostBlogs != nil || summary.MostLikes != nil {
		t.Fatalf("expected absent stats after delete, got %+v", summary)
	}
}
