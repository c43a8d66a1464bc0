package store

import (
	"context"
	"errors"

	"github.com/alphabot-ai/bloglist/internal/model"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/alphabot-ai/bloglist/internal/store BlogStore

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("duplicate username")
)

type BlogListOpts struct {
	Sort  string
	Limit int
}

type Store interface {
	BlogStore
	UserStore
	Close() error
}

type BlogStore interface {
	CreateBlog(ctx context.Context, blog *model.Blog) (int64, error)
	GetBlog(ctx context.Context, id int64) (model.Blog, error)
	ListBlogs(ctx context.Context, opts BlogListOpts) ([]model.Blog, error)
	// ListAllBlogs returns every post in insertion order.
	ListAllBlogs(ctx context.Context) ([]model.Blog, error)
	ListBlogsByUser(ctx context.Context, userID int64) ([]model.Blog, error)
	UpdateBlog(ctx context.Context, blog model.Blog) error
	DeleteBlog(ctx context.Context, id int64) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (int64, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	FindUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}
