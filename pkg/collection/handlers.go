package collection

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=collection

type ICollectionService interface {
	Create(ctx context.Context, authorId int64, in *CreateReq) (*Collection, error)
	List(ctx context.Context, authorId int64) ([]*Collection, error)
	Get(ctx context.Context, actorId, id int64) (*Collection, error)
	Update(ctx context.Context, actorId, id int64, in *Patch) (*Collection, error)
	Delete(ctx context.Context, actorId, id int64) error
}

type CollectionHandler struct {
	Service ICollectionService
}

func NewCollectionHandler(s ICollectionService) *CollectionHandler {
	return &CollectionHandler{Service: s}
}

func (ch CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	collections, err := ch.Service.List(r.Context(), author.Id)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, collections, http.StatusOK)
}

func (ch *CollectionHandler) Add(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	in := new(CreateReq)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse collection from request body: %v", err)
		common.WriteMsg(w, "can't parse collection", http.StatusBadRequest)
		return
	}

	c, err := ch.Service.Create(r.Context(), author.Id, in)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, c, http.StatusCreated)
}

func (ch CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := ch.target(w, r)
	if !ok {
		return
	}

	c, err := ch.Service.Get(r.Context(), actor, id)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, c, http.StatusOK)
}

func (ch *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := ch.target(w, r)
	if !ok {
		return
	}

	in := new(Patch)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse collection patch: %v", err)
		common.WriteMsg(w, "can't parse collection", http.StatusBadRequest)
		return
	}

	c, err := ch.Service.Update(r.Context(), actor, id, in)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, c, http.StatusOK)
}

func (ch *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := ch.target(w, r)
	if !ok {
		return
	}

	if err := ch.Service.Delete(r.Context(), actor, id); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// target reads the caller and the collection id, answering the request
// itself when either is missing.
func (ch CollectionHandler) target(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return 0, 0, false
	}
	id, err := common.PathId(r, "collection_id")
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return 0, 0, false
	}
	return actor.Id, id, true
}
