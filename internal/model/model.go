package model

import "time"

type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	UserID    int64     `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserWithBlogs is a user together with the posts they created.
type UserWithBlogs struct {
	User
	Blogs []Blog `json:"blogs"`
}

type Token struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthorBlogs is the number of posts written by one author.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the sum of likes over all posts written by one author.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// BlogStats bundles every aggregate over a set of posts. Pointer fields are
// nil when the set is empty.
type BlogStats struct {
	Blogs        int          `json:"blogs"`
	TotalLikes   int          `json:"total_likes"`
	FavoriteBlog *Blog        `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs `json:"most_blogs"`
	MostLikes    *AuthorLikes `json:"most_likes"`
}
