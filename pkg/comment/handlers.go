package comment

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=comment

type ICommentService interface {
	Create(ctx context.Context, authorId, postId int64, body string) (*Comment, error)
	List(ctx context.Context, postId int64) ([]*Comment, error)
	Update(ctx context.Context, actorId, id int64, body string) (*Comment, error)
	Delete(ctx context.Context, actorId, id int64) error
}

type CommentHandler struct {
	Service ICommentService
}

func NewCommentHandler(s ICommentService) *CommentHandler {
	return &CommentHandler{Service: s}
}

type commentReq struct {
	Post int64  `json:"post"`
	Body string `json:"body"`
}

func (ch *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	req := new(commentReq)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		logger.Log(r.Context()).Errorf("can't get comment body: %v", err)
		common.WriteMsg(w, "failed parsing comment body", http.StatusBadRequest)
		return
	}

	c, err := ch.Service.Create(r.Context(), author.Id, req.Post, req.Body)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, c, http.StatusCreated)
}

func (ch CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postId, err := common.PathId(r, "post_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	comments, err := ch.Service.List(r.Context(), postId)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, comments, http.StatusOK)
}

func (ch *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}
	commentId, err := common.PathId(r, "comment_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	req := new(commentReq)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		logger.Log(r.Context()).Errorf("can't get comment body: %v", err)
		common.WriteMsg(w, "failed parsing comment body", http.StatusBadRequest)
		return
	}

	c, err := ch.Service.Update(r.Context(), actor.Id, commentId, req.Body)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, c, http.StatusOK)
}

func (ch *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}
	commentId, err := common.PathId(r, "comment_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	if err := ch.Service.Delete(r.Context(), actor.Id, commentId); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
