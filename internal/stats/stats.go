// Package stats computes aggregate metrics over a list of blog posts.
//
// Every function is pure: it reads the slice it is given, never modifies it,
// and keeps no state between calls. Where several posts or authors tie for
// the maximum, the one seen first in input order wins.
package stats

import "github.com/alphabot-ai/bloglist/internal/model"

// TotalLikes returns the sum of likes over all posts.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the first post with the highest like count.
// ok is false when blogs is empty.
func FavoriteBlog(blogs []model.Blog) (fav model.Blog, ok bool) {
	for i, b := range blogs {
		if i == 0 || b.Likes > fav.Likes {
			fav = b
		}
	}
	return fav, len(blogs) > 0
}

// MostBlogs returns the author with the most posts.
func MostBlogs(blogs []model.Blog) (model.AuthorBlogs, bool) {
	authors := groupByAuthor(blogs)
	if len(authors) == 0 {
		return model.AuthorBlogs{}, false
	}
	best := authors[0]
	for _, a := range authors[1:] {
		if a.blogs > best.blogs {
			best = a
		}
	}
	return model.AuthorBlogs{Author: best.author, Blogs: best.blogs}, true
}

// MostLikes returns the author whose posts have the most likes in total.
func MostLikes(blogs []model.Blog) (model.AuthorLikes, bool) {
	authors := groupByAuthor(blogs)
	if len(authors) == 0 {
		return model.AuthorLikes{}, false
	}
	best := authors[0]
	for _, a := range authors[1:] {
		if a.likes > best.likes {
			best = a
		}
	}
	return model.AuthorLikes{Author: best.author, Likes: best.likes}, true
}

// Summarize computes every metric in one value. Absent metrics are nil.
func Summarize(blogs []model.Blog) model.BlogStats {
	out := model.BlogStats{
		Blogs:      len(blogs),
		TotalLikes: TotalLikes(blogs),
	}
	if fav, ok := FavoriteBlog(blogs); ok {
		out.FavoriteBlog = &fav
	}
	if mb, ok := MostBlogs(blogs); ok {
		out.MostBlogs = &mb
	}
	if ml, ok := MostLikes(blogs); ok {
		out.MostLikes = &ml
	}
	return out
}

type authorTotals struct {
	author string
	blogs  int
	likes  int
}

// groupByAuthor aggregates post count and likes per exact author string,
// returned in the order each author first appears.
func groupByAuthor(blogs []model.Blog) []authorTotals {
	index := make(map[string]int, len(blogs))
	var out []authorTotals
	for _, b := range blogs {
		i, seen := index[b.Author]
		if !seen {
			i = len(out)
			index[b.Author] = i
			out = append(out, authorTotals{author: b.Author})
		}
		out[i].blogs++
		out[i].likes += b.Likes
	}
	return out
}
