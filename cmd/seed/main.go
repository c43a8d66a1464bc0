package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/alphabot-ai/bloglist/internal/client"

	"github.com/brianvoe/gofakeit/v6"
)

var users = []client.Credentials{
	{Username: "mluukkai", Name: "Matti Luukkainen", Password: "salainen"},
	{Username: "hellas", Name: "Arto Hellas", Password: "sekret"},
	{Username: "root", Name: "Superuser", Password: "sekret"},
}

var blogs = []struct {
	title  string
	author string
	url    string
	likes  int
}{
	{"React patterns", "Michael Chan", "https://reactpatterns.com/", 7},
	{"Go To Statement Considered Harmful", "Edsger W. Dijkstra", "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", 5},
	{"Canonical string reduction", "Edsger W. Dijkstra", "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", 12},
	{"First class tests", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", 10},
	{"TDD harms architecture", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", 0},
	{"Type wars", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", 2},
}

func main() {
	baseURL := flag.String("url", "http://localhost:3003", "Bloglist server URL")
	likes := flag.Int("likes", 5, "Extra random likes to hand out")
	random := flag.Int("random", 0, "Extra generated blogs to post")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Seeding database at %s...\n", *baseURL)

	var clients []*client.Client
	for _, u := range users {
		c := client.New(*baseURL)
		if err := c.RegisterAndLogin(u); err != nil {
			log.Fatalf("register %s: %v", u.Username, err)
		}
		log.Printf("✓ Registered user: %s", u.Username)
		clients = append(clients, c)
	}

	var blogIDs []int64
	for _, b := range blogs {
		idx := rand.Intn(len(clients))
		c := clients[idx]

		n := b.likes
		blog, err := c.CreateBlog(client.BlogInput{Title: b.title, Author: b.author, URL: b.url, Likes: &n})
		if err != nil {
			log.Printf("✗ Failed to post blog: %v", err)
			continue
		}
		blogIDs = append(blogIDs, blog.ID)
		log.Printf("✓ Posted blog #%d: %s (by %s)", blog.ID, b.title, users[idx].Username)
	}

	for i := 0; i < *random; i++ {
		idx := rand.Intn(len(clients))
		n := gofakeit.Number(0, 20)
		blog, err := clients[idx].CreateBlog(client.BlogInput{
			Title:  gofakeit.Sentence(4),
			Author: gofakeit.Name(),
			URL:    gofakeit.URL(),
			Likes:  &n,
		})
		if err != nil {
			log.Printf("✗ Failed to post generated blog: %v", err)
			continue
		}
		blogIDs = append(blogIDs, blog.ID)
	}
	if *random > 0 {
		log.Printf("✓ Posted %d generated blogs", *random)
	}

	for i := 0; i < *likes && len(blogIDs) > 0; i++ {
		id := blogIDs[rand.Intn(len(blogIDs))]
		if _, err := clients[0].Like(id); err != nil {
			log.Printf("✗ Failed to like #%d: %v", id, err)
		}
	}
	log.Printf("✓ Added likes")

	summary, err := clients[0].Stats()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}

	fmt.Println("\n=== Seed Complete ===")
	fmt.Printf("Users:       %d\n", len(users))
	fmt.Printf("Blogs:       %d\n", summary.Blogs)
	fmt.Printf("Total likes: %d\n", summary.TotalLikes)
	if summary.MostLikes != nil {
		fmt.Printf("Most likes:  %s (%d)\n", summary.MostLikes.Author, summary.MostLikes.Likes)
	}
	fmt.Println("\nView at:", *baseURL+"/api/blogs")
}
