package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
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

const defaultBaseURL = "http://localhost:3003"

// CLIConfig holds the CLI client configuration persisted to disk.
type CLIConfig struct {
	BaseURL  string `json:"base_url"`
	Username string `json:"username"`
	Token    string `json:"token"`
	TokenExp string `json:"token_expires"`
}

func main() {
	if len(os.Args) < 2 {
		runServer()
		return
	}

	cmd := os.Args[1]

	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		printUsage()
		return
	}

	if cmd == "-v" || cmd == "--version" || cmd == "version" {
		cfg := config.Load()
		fmt.Printf("bloglist %s (commit %s, built %s)\n", cfg.Version, cfg.Commit, cfg.BuildTime)
		return
	}

	if strings.HasPrefix(cmd, "-") {
		runServer()
		return
	}

	args := os.Args[2:]

	switch cmd {
	case "server", "serve":
		runServer()
	case "register":
		cmdRegister(args)
	case "login":
		cmdLogin(args)
	case "post":
		cmdPost(args)
	case "like":
		cmdLike(args)
	case "delete", "rm":
		cmdDelete(args)
	case "list", "read":
		cmdList(args)
	case "stats":
		cmdStats(args)
	case "users":
		cmdUsers(args)
	case "status", "whoami":
		cmdStatus(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bloglist - Blog list with aggregate statistics

Usage: bloglist <command> [options]

Quick Start:
  bloglist register --username root --password sekret   # Register + login
  bloglist post --title "Hello" --author "Me" --url "https://..."

Client Commands:
  register            Register a user and log in (one command)
  login               Log in again (when token expires)
  post                Post a new blog
  like                Add a like to a blog
  delete              Delete a blog you created
  list                List blogs
  stats               Show total likes, favorite blog and top authors
  users               List users and their blogs
  status              Show current config and token status

Server:
  serve               Start the Bloglist server (default if no command)

Examples:
  bloglist list --sort top --limit 10
  bloglist like --id 3
  bloglist stats

Environment Variables (server):
  BLOGLIST_ADDR                Listen address (default: :3003, or :$PORT)
  BLOGLIST_DB                  Database path (default: bloglist.db)
  BLOGLIST_JWT_SECRET          Token signing secret
  BLOGLIST_TOKEN_TTL           Token lifetime (default: 1h)
  BLOGLIST_STATS_TTL           Stats cache lifetime (default: 5m)
  BLOGLIST_REDIS_ADDR          Share the stats cache through Redis
  OTEL_EXPORTER_OTLP_ENDPOINT  Export traces over OTLP/HTTP`)
}

// ============================================================================
// SERVER
// ============================================================================

func runServer() {
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to init telemetry: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	st, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer st.Close()

	statsCache := newStatsCache(ctx, cfg)
	statsSvc := stats.NewService(st, statsCache)
	limiter := rate.NewMemory()
	authSvc := auth.NewService(st, cfg.JWTSecret, cfg.TokenTTL)

	server := httpapp.NewServer(st, authSvc, statsSvc, limiter, cfg)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           telemetry.Wrap(server, cfg.Telemetry.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("bloglist %s listening on %s", cfg.Version, cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}

// newStatsCache uses Redis when configured and reachable, the in-process
// cache otherwise.
func newStatsCache(ctx context.Context, cfg config.Config) cache.Stats {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(cfg.StatsTTL)
	}
	rc := cache.NewRedis(cfg.RedisAddr, cfg.StatsTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		log.Printf("redis %s unavailable, using in-memory stats cache: %v", cfg.RedisAddr, err)
		_ = rc.Close()
		return cache.NewMemory(cfg.StatsTTL)
	}
	log.Printf("stats cache: redis %s", cfg.RedisAddr)
	return rc
}

// ============================================================================
// CLIENT COMMANDS
// ============================================================================

func cmdRegister(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "Username (required, min 3 chars)")
	name := fs.String("name", "", "Display name")
	password := fs.String("password", "", "Password (required, min 3 chars)")
	url := fs.String("url", defaultBaseURL, "Bloglist server URL")
	fs.Parse(args)

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Error: --username and --password are required")
		fmt.Fprintln(os.Stderr, "Usage: bloglist register --username <name> --password <password>")
		os.Exit(1)
	}

	cfg := CLIConfig{BaseURL: strings.TrimSuffix(*url, "/"), Username: *username}
	c := client.New(cfg.BaseURL)
	creds := client.Credentials{Username: *username, Name: *name, Password: *password}

	user, err := c.Register(creds)
	alreadyRegistered := errors.Is(err, client.ErrAlreadyRegistered)
	if err != nil && !alreadyRegistered {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if alreadyRegistered {
		fmt.Printf("✓ Already registered as '%s'\n", *username)
	} else {
		fmt.Printf("✓ Registered '%s' (user %d)\n", user.Username, user.ID)
	}

	if err := c.Login(creds); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: auto-login failed: %v\n", err)
		fmt.Println("Run 'bloglist login' to log in")
		return
	}
	saveToken(cfg, c)

	fmt.Printf("✓ Logged in (expires %s)\n", c.TokenExp.Format(time.RFC3339))
	fmt.Println("\nReady to post! Example:")
	fmt.Println("  bloglist post --title \"Hello\" --author \"Me\" --url \"https://example.com\"")
}

func cmdLogin(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Username (defaults to the saved one)")
	password := fs.String("password", "", "Password (required)")
	url := fs.String("url", "", "Bloglist server URL (defaults to the saved one)")
	fs.Parse(args)

	cfg, _ := loadCLIConfig()
	if *username != "" {
		cfg.Username = *username
	}
	if *url != "" {
		cfg.BaseURL = strings.TrimSuffix(*url, "/")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Error: --username and --password are required")
		os.Exit(1)
	}

	c := client.New(cfg.BaseURL)
	if err := c.Login(client.Credentials{Username: cfg.Username, Password: *password}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	saveToken(cfg, c)

	fmt.Printf("✓ Logged in as '%s'\n", cfg.Username)
	fmt.Printf("  Expires: %s\n", c.TokenExp.Format(time.RFC3339))
}

func cmdPost(args []string) {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	title := fs.String("title", "", "Blog title (required)")
	author := fs.String("author", "", "Blog author")
	url := fs.String("url", "", "Blog URL (required)")
	likes := fs.Int("likes", 0, "Initial likes")
	fs.Parse(args)

	if *title == "" || *url == "" {
		fmt.Fprintln(os.Stderr, "Error: --title and --url are required")
		os.Exit(1)
	}

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	blog, err := c.CreateBlog(client.BlogInput{Title: *title, Author: *author, URL: *url, Likes: likes})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Posted: %s\n", blog.Title)
	fmt.Printf("  ID: %d\n", blog.ID)
}

func cmdLike(args []string) {
	fs := flag.NewFlagSet("like", flag.ExitOnError)
	id := fs.Int64("id", 0, "Blog ID (required)")
	fs.Parse(args)

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "Error: --id is required")
		os.Exit(1)
	}

	c := newClient()
	blog, err := c.Like(*id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Liked #%d (%d likes)\n", blog.ID, blog.Likes)
}

func cmdDelete(args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "Blog ID (required)")
	fs.Parse(args)

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "Error: --id is required")
		os.Exit(1)
	}

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := c.DeleteBlog(*id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Deleted blog %d\n", *id)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	sort := fs.String("sort", "", "Sort: new, top (default: insertion order)")
	limit := fs.Int("limit", 20, "Number of blogs")
	fs.Parse(args)

	blogs, err := newClient().GetBlogs(*sort, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(blogs) == 0 {
		fmt.Println("No blogs yet")
		return
	}
	for i, b := range blogs {
		fmt.Printf("%d. %s by %s\n", i+1, b.Title, displayAuthor(b.Author))
		fmt.Printf("   %d likes | %s | #%d\n\n", b.Likes, b.URL, b.ID)
	}
}

func cmdStats(args []string) {
	summary, err := newClient().Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Blogs:         %d\n", summary.Blogs)
	fmt.Printf("Total likes:   %d\n", summary.TotalLikes)
	if summary.FavoriteBlog == nil {
		fmt.Println("Favorite:      -")
	} else {
		fmt.Printf("Favorite:      %s by %s (%d likes)\n",
			summary.FavoriteBlog.Title, displayAuthor(summary.FavoriteBlog.Author), summary.FavoriteBlog.Likes)
	}
	if summary.MostBlogs == nil {
		fmt.Println("Most blogs:    -")
	} else {
		fmt.Printf("Most blogs:    %s (%d)\n", displayAuthor(summary.MostBlogs.Author), summary.MostBlogs.Blogs)
	}
	if summary.MostLikes == nil {
		fmt.Println("Most likes:    -")
	} else {
		fmt.Printf("Most likes:    %s (%d)\n", displayAuthor(summary.MostLikes.Author), summary.MostLikes.Likes)
	}
}

func cmdUsers(args []string) {
	users, err := newClient().GetUsers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, u := range users {
		fmt.Printf("%s (%s): %d blogs\n", u.Username, u.Name, len(u.Blogs))
	}
}

func cmdStatus(args []string) {
	cfg, err := loadCLIConfig()
	if err != nil {
		fmt.Println("Status: Not logged in")
		fmt.Println("\nRun: bloglist register --username <name> --password <password>")
		return
	}

	fmt.Printf("User:   %s\n", cfg.Username)
	fmt.Printf("Server: %s\n", cfg.BaseURL)

	if cfg.Token == "" {
		fmt.Println("Token:  Not logged in")
		fmt.Println("\nRun: bloglist login")
		return
	}
	exp, _ := time.Parse(time.RFC3339, cfg.TokenExp)
	if time.Now().After(exp) {
		fmt.Println("Token:  Expired")
		fmt.Println("\nRun: bloglist login")
	} else {
		fmt.Printf("Token:  Valid until %s\n", cfg.TokenExp)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func displayAuthor(author string) string {
	if author == "" {
		return "(unknown)"
	}
	return author
}

func bloglistDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bloglist")
}

func cliConfigPath() string {
	return filepath.Join(bloglistDir(), "config.json")
}

func loadCLIConfig() (CLIConfig, error) {
	data, err := os.ReadFile(cliConfigPath())
	if err != nil {
		return CLIConfig{}, errors.New("not logged in")
	}
	var cfg CLIConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, err
	}
	return cfg, nil
}

func saveCLIConfig(cfg CLIConfig) error {
	if err := os.MkdirAll(bloglistDir(), 0700); err != nil {
		return err
	}
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return os.WriteFile(cliConfigPath(), data, 0600)
}

func saveToken(cfg CLIConfig, c *client.Client) {
	cfg.Token = c.Token
	cfg.TokenExp = c.TokenExp.Format(time.RFC3339)
	if err := saveCLIConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving token: %v\n", err)
		os.Exit(1)
	}
}

// newClient returns an anonymous client for read-only commands.
func newClient() *client.Client {
	cfg, _ := loadCLIConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return client.New(cfg.BaseURL)
}

func loadAuthenticatedClient() (*client.Client, error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, errors.New("not logged in - run 'bloglist login'")
	}
	exp, _ := time.Parse(time.RFC3339, cfg.TokenExp)
	if time.Now().After(exp) {
		return nil, errors.New("token expired - run 'bloglist login'")
	}

	c := client.New(cfg.BaseURL)
	c.Token = cfg.Token
	c.TokenExp = exp
	c.Username = cfg.Username
	return c, nil
}
