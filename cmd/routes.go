package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"learnapp/pkg/category"
	"learnapp/pkg/collection"
	"learnapp/pkg/comment"
	"learnapp/pkg/common"
	"learnapp/pkg/files"
	"learnapp/pkg/middleware"
	"learnapp/pkg/post"
	"learnapp/pkg/profile"
	"learnapp/pkg/user/api"
	"learnapp/pkg/voting"
)

type handlers struct {
	users        *api.UserHandler
	profiles     *profile.ProfileHandler
	categories   *category.CategoryHandler
	posts        *post.PostHandler
	postVotes    *voting.VoteHandler
	comments     *comment.CommentHandler
	commentVotes *voting.VoteHandler
	collections  *collection.CollectionHandler
	files        *files.FileHandler
}

// newRouter mounts every route under /api. auth resolves the token owner;
// routes outside the public set also go through middleware.RequireAuth.
func newRouter(h handlers, auth mux.MiddlewareFunc, lm *middleware.LoggingMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(lm.SetupTracing)
	r.Use(lm.SetupLogging)
	r.Use(lm.AccessLog)
	r.Use(auth)

	a := r.PathPrefix("/api").Subrouter()

	// Public
	a.HandleFunc("/signup", h.users.Register).Methods("POST")
	a.HandleFunc("/token", h.users.LogIn).Methods("POST")
	a.HandleFunc("/refresh", h.users.Refresh).Methods("POST")
	a.HandleFunc("/file/{name:.+}", h.files.Download).Methods("GET")

	p := a.NewRoute().Subrouter()
	p.Use(middleware.RequireAuth)

	// Users
	p.HandleFunc("/users", h.users.List).Methods("GET")
	p.HandleFunc("/users/me", h.users.Me).Methods("GET")
	p.HandleFunc("/users/me", h.users.UpdateMe).Methods("PUT", "PATCH")
	p.HandleFunc("/users/me", h.users.DeleteMe).Methods("DELETE")
	p.HandleFunc("/profile", h.profiles.Get).Methods("GET")
	p.HandleFunc("/profile", h.profiles.Update).Methods("PUT", "PATCH")

	p.HandleFunc("/category/list", h.categories.List).Methods("GET")

	// Posts
	p.HandleFunc("/post/list", h.posts.List).Methods("GET")
	p.HandleFunc("/post/create", h.posts.Add).Methods("POST")
	p.HandleFunc("/post/{post_id:[0-9]+}/detail", h.posts.Get).Methods("GET")
	p.HandleFunc("/post/{post_id:[0-9]+}/update", h.posts.Update).Methods("PUT", "PATCH")
	p.HandleFunc("/post/{post_id:[0-9]+}/delete", h.posts.Delete).Methods("DELETE")

	p.HandleFunc("/vote/create", h.postVotes.Create).Methods("POST")
	p.HandleFunc("/vote/{post_id:[0-9]+}/detail", h.postVotes.Detail).Methods("GET", "PUT", "PATCH", "DELETE")

	// Collections
	p.HandleFunc("/collection/list", h.collections.List).Methods("GET")
	p.HandleFunc("/collection/create", h.collections.Add).Methods("POST")
	p.HandleFunc("/collection/{collection_id:[0-9]+}/detail", h.collections.Get).Methods("GET")
	p.HandleFunc("/collection/{collection_id:[0-9]+}/update", h.collections.Update).Methods("PUT", "PATCH")
	p.HandleFunc("/collection/{collection_id:[0-9]+}/delete", h.collections.Delete).Methods("DELETE")

	// Comments
	p.HandleFunc("/comment/{post_id:[0-9]+}/list", h.comments.List).Methods("GET")
	p.HandleFunc("/comment/create", h.comments.Add).Methods("POST")
	p.HandleFunc("/comment/{comment_id:[0-9]+}/update", h.comments.Update).Methods("PUT", "PATCH")
	p.HandleFunc("/comment/{comment_id:[0-9]+}/delete", h.comments.Delete).Methods("DELETE")

	p.HandleFunc("/vote_comment/create", h.commentVotes.Create).Methods("POST")
	p.HandleFunc("/vote_comment/{comment_id:[0-9]+}/detail", h.commentVotes.Detail).Methods("GET", "PUT", "PATCH", "DELETE")

	// Files
	p.HandleFunc("/file", h.files.Upload).Methods("POST")
	p.HandleFunc("/file", h.files.Delete).Methods("DELETE")
	p.HandleFunc("/file", h.files.List).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteMsg(w, "not found", http.StatusNotFound)
	})
	return r
}
