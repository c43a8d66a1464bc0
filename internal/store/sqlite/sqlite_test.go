package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
	"github.com/alphabot-ai/bloglist/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	st, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func TestBlogLifecycle(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()
	ctx := context.Background()

	blog := model.Blog{
		Title:     "Test Blog",
		Author:    "Testy McTesterson",
		URL:       "https://example.com",
		CreatedAt: time.Now(),
	}
	id, err := st.CreateBlog(ctx, &blog)
	if err != nil {
		t.Fatalf("create blog: %v", err)
	}

	got, err := st.GetBlog(ctx, id)
	if err != nil {
		t.Fatalf("get blog: %v", err)
	}
	if got.Title != blog.Title || got.Likes != 0 {
		t.Fatalf("unexpected blog: %+v", got)
	}

	got.Likes = 42
	got.Title = "Updated title"
	if err := st.UpdateBlog(ctx, got); err != nil {
		t.Fatalf("update blog: %v", err)
	}
	updated, _ := st.GetBlog(ctx, id)
	if updated.Likes != 42 || updated.Title != "Updated title" {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := st.DeleteBlog(ctx, id); err != nil {
		t.Fatalf("delete blog: %v", err)
	}
	if _, err := st.GetBlog(ctx, id); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.DeleteBlog(ctx, id); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := st.UpdateBlog(ctx, got); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestListAllBlogsInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()
	ctx := context.Background()

	for i, likes := range []int{3, 9, 1} {
		b := model.Blog{Title: fmt.Sprintf("post %d", i), Author: "A", URL: "u", Likes: likes, CreatedAt: time.Now()}
		if _, err := st.CreateBlog(ctx, &b); err != nil {
			t.Fatalf("create blog: %v", err)
		}
	}

	all, err := st.ListAllBlogs(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].Likes != 3 || all[2].Likes != 1 {
		t.Fatalf("unexpected order: %+v", all)
	}

	top, err := st.ListBlogs(ctx, store.BlogListOpts{Sort: "top", Limit: 2})
	if err != nil {
		t.Fatalf("list top: %v", err)
	}
	if len(top) != 2 || top[0].Likes != 9 || top[1].Likes != 3 {
		t.Fatalf("unexpected top order: %+v", top)
	}
}

func TestListAllBlogsEmpty(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	all, err := st.ListAllBlogs(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}
}
