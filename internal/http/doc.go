// Package httpapp provides the HTTP server for Bloglist.
//
//	@title						Bloglist API
//	@version					1.0
//	@description				Blog list with users, token login and aggregate statistics.
//	@description
//	@description				## Authentication Flow
//	@description
//	@description				Creating and deleting blogs requires a bearer token.
//	@description				```bash
//	@description				curl -X POST /api/users -d '{"username":"root","name":"Superuser","password":"sekret"}'
//	@description				curl -X POST /api/login -d '{"username":"root","password":"sekret"}'
//	@description				# Returns: {"token": "TOKEN", "username": "root", "name": "Superuser", "expires_at": "..."}
//	@description				curl -X POST /api/blogs -H "Authorization: Bearer TOKEN" -d '{"title":"...","url":"..."}'
//	@description				```
//
//	@contact.name				Bloglist
//	@license.name				MIT
//
//	@BasePath					/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by the token from /api/login.
//
//	@tag.name					Blogs
//	@tag.description			Create, browse, like and delete blogs.
//
//	@tag.name					Stats
//	@tag.description			Aggregate statistics over every stored blog.
//
//	@tag.name					Users
//	@tag.description			User registration and listing.
//
//	@tag.name					Authentication
//	@tag.description			Username and password login returning a bearer token.
package httpapp
