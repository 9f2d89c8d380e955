package voting

import (
	"context"
	"encoding/json"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=voting

type IVoteService interface {
	Create(ctx context.Context, voterId, targetId int64, score VotingScore) (*Vote, error)
	Get(ctx context.Context, voterId, targetId int64) (*Vote, error)
	Update(ctx context.Context, voterId, targetId int64, score VotingScore) (*Vote, error)
	Delete(ctx context.Context, voterId, targetId int64) error
}

// VoteHandler serves /vote and /vote_comment depending on its target.
type VoteHandler struct {
	Service IVoteService
	Target  Target
}

func NewVoteHandler(s IVoteService, t Target) *VoteHandler {
	return &VoteHandler{Service: s, Target: t}
}

func (vh *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	voter, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	body := map[string]json.Number{}
	if err := common.ParseReqBody(r.Body, &body); err != nil {
		logger.Log(r.Context()).Errorf("can't parse vote from request body: %v", err)
		common.WriteMsg(w, "can't parse vote", http.StatusBadRequest)
		return
	}
	targetId, err := body[vh.Target.Name].Int64()
	if err != nil {
		common.WriteMsg(w, "field '"+vh.Target.Name+"' is required", http.StatusBadRequest)
		return
	}
	score, err := body["vote"].Int64()
	if err != nil {
		common.WriteMsg(w, "field 'vote' is required", http.StatusBadRequest)
		return
	}

	v, err := vh.Service.Create(r.Context(), voter.Id, targetId, VotingScore(score))
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, vh.Target.JSON(v), http.StatusCreated)
}

// Detail serves GET, PUT, PATCH and DELETE of the caller's vote on the target.
func (vh *VoteHandler) Detail(w http.ResponseWriter, r *http.Request) {
	voter, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}
	targetId, err := common.PathId(r, vh.Target.PathVar)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	var v *Vote
	switch r.Method {
	case http.MethodGet:
		v, err = vh.Service.Get(r.Context(), voter.Id, targetId)
	case http.MethodPut, http.MethodPatch:
		req := struct {
			Vote *VotingScore `json:"vote"`
		}{}
		if err := common.ParseReqBody(r.Body, &req); err != nil || req.Vote == nil {
			common.WriteMsg(w, "field 'vote' is required", http.StatusBadRequest)
			return
		}
		v, err = vh.Service.Update(r.Context(), voter.Id, targetId, *req.Vote)
	case http.MethodDelete:
		err = vh.Service.Delete(r.Context(), voter.Id, targetId)
		if err == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
	default:
		common.WriteMsg(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, vh.Target.JSON(v), http.StatusOK)
}
