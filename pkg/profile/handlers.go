package profile

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
	"learnapp/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=profile

type IProfileService interface {
	Get(context.Context, *user.User) (*Profile, error)
	Update(context.Context, *user.User, *Patch) (*Profile, error)
}

type ProfileHandler struct {
	Service IProfileService
}

func NewProfileHandler(s IProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (ph ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	p, err := ph.Service.Get(r.Context(), u)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, p, http.StatusOK)
}

func (ph *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	in := new(Patch)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse profile patch: %v", err)
		common.WriteMsg(w, "can't parse profile", http.StatusBadRequest)
		return
	}

	p, err := ph.Service.Update(r.Context(), u, in)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, p, http.StatusOK)
}
