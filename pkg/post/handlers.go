package post

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=post

type IPostService interface {
	Create(ctx context.Context, authorId int64, in *Patch) (*Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, actorId, id int64, in *Patch) (*Post, error)
	Delete(ctx context.Context, actorId, id int64) error
	List(ctx context.Context, viewerId int64, username string, search []string, order string) ([]*Post, error)
}

type PostHandler struct {
	Service IPostService
}

func NewPostHandler(s IPostService) *PostHandler {
	return &PostHandler{
		Service: s,
	}
}

// List serves /post/list?username=&search=&search=&query=
func (ph PostHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	q := r.URL.Query()
	posts, err := ph.Service.List(r.Context(), viewer.Id, q.Get("username"), q["search"], q.Get("query"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts: %v", err)
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, posts, http.StatusOK)
}

func (ph *PostHandler) Add(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	in := new(Patch)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse post from request body: %v", err)
		common.WriteMsg(w, "can't parse post", http.StatusBadRequest)
		return
	}

	p, err := ph.Service.Create(r.Context(), author.Id, in)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, p, http.StatusCreated)
}

func (ph PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postId, err := common.PathId(r, "post_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	p, err := ph.Service.Get(r.Context(), postId)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, p, http.StatusOK)
}

func (ph *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}
	postId, err := common.PathId(r, "post_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	in := new(Patch)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse post patch: %v", err)
		common.WriteMsg(w, "can't parse post", http.StatusBadRequest)
		return
	}

	p, err := ph.Service.Update(r.Context(), actor.Id, postId, in)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, p, http.StatusOK)
}

func (ph *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}
	postId, err := common.PathId(r, "post_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	if err := ph.Service.Delete(r.Context(), actor.Id, postId); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
