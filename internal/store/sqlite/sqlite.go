package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
	"github.com/alphabot-ai/bloglist/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// migrations is an ordered list of SQL migrations.
// Each migration runs exactly once, tracked by schema_version table.
var migrations = []string{
	// Migration 1: Initial schema
	`
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	name TEXT,
	password_hash TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);

CREATE TABLE IF NOT EXISTS blogs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL,
	likes INTEGER NOT NULL DEFAULT 0,
	user_id INTEGER,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blogs_user_id ON blogs(user_id);
CREATE INDEX IF NOT EXISTS idx_blogs_likes ON blogs(likes DESC);
`,
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return err
	}

	var currentVersion int
	row := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err := row.Scan(&currentVersion); err != nil {
		return err
	}

	for i := currentVersion; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}

	return nil
}

const blogColumns = `b.id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, u.username`

func (s *Store) CreateBlog(ctx context.Context, blog *model.Blog) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO blogs (title, author, url, likes, user_id, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, blog.Title, blog.Author, blog.URL, blog.Likes, nullableID(blog.UserID), blog.CreatedAt.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetBlog(ctx context.Context, id int64) (model.Blog, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT `+blogColumns+`
FROM blogs b
LEFT JOIN users u ON u.id = b.user_id
WHERE b.id = ?
LIMIT 1
`, id)
	return scanBlog(row)
}

func (s *Store) ListBlogs(ctx context.Context, opts store.BlogListOpts) ([]model.Blog, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	limit = clamp(limit, 1, 500)
	order := "b.id ASC"
	switch opts.Sort {
	case "new":
		order = "b.created_at DESC, b.id DESC"
	case "top":
		order = "b.likes DESC, b.id ASC"
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
SELECT `+blogColumns+`
FROM blogs b
LEFT JOIN users u ON u.id = b.user_id
ORDER BY %s
LIMIT ?
`, order), limit)
	if err != nil {
		return nil, err
	}
	return collectBlogs(rows)
}

func (s *Store) ListAllBlogs(ctx context.Context) ([]model.Blog, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+blogColumns+`
FROM blogs b
LEFT JOIN users u ON u.id = b.user_id
ORDER BY b.id ASC
`)
	if err != nil {
		return nil, err
	}
	return collectBlogs(rows)
}

func (s *Store) ListBlogsByUser(ctx context.Context, userID int64) ([]model.Blog, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+blogColumns+`
FROM blogs b
LEFT JOIN users u ON u.id = b.user_id
WHERE b.user_id = ?
ORDER BY b.id ASC
`, userID)
	if err != nil {
		return nil, err
	}
	return collectBlogs(rows)
}

func (s *Store) UpdateBlog(ctx context.Context, blog model.Blog) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?
`, blog.Title, blog.Author, blog.URL, blog.Likes, blog.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteBlog(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO users (username, name, password_hash, created_at)
VALUES (?, ?, ?, ?)
`, user.Username, nullIfEmpty(user.Name), user.PasswordHash, user.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrDuplicateUsername
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetUser(ctx context.Context, id int64) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, username, name, password_hash, created_at
FROM users
WHERE id = ?
`, id)
	return scanUser(row)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, username, name, password_hash, created_at
FROM users
WHERE username = ?
`, username)
	return scanUser(row)
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, username, name, password_hash, created_at
FROM users
ORDER BY id ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type scanner interface{ Scan(dest ...any) error }

func scanBlog(row scanner) (model.Blog, error) {
	var b model.Blog
	var userID sql.NullInt64
	var username sql.NullString
	var created int64
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &userID, &created, &username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Blog{}, store.ErrNotFound
		}
		return model.Blog{}, err
	}
	if userID.Valid {
		b.UserID = userID.Int64
	}
	if username.Valid {
		b.Username = username.String
	}
	b.CreatedAt = time.Unix(created, 0)
	return b, nil
}

func collectBlogs(rows *sql.Rows) ([]model.Blog, error) {
	defer rows.Close()
	blogs := []model.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func scanUser(row scanner) (model.User, error) {
	var u model.User
	var name sql.NullString
	var created int64
	if err := row.Scan(&u.ID, &u.Username, &name, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, store.ErrNotFound
		}
		return model.User{}, err
	}
	if name.Valid {
		u.Name = name.String
	}
	u.CreatedAt = time.Unix(created, 0)
	return u, nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func nullableID(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY")
}
