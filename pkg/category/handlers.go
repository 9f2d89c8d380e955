package category

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
)

type ICategoryRepo interface {
	GetAll(context.Context) ([]*Category, error)
}

type CategoryHandler struct {
	Repo ICategoryRepo
}

func NewCategoryHandler(repo ICategoryRepo) *CategoryHandler {
	return &CategoryHandler{Repo: repo}
}

func (ch CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := ch.Repo.GetAll(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}
	common.WriteJSON(w, categories, http.StatusOK)
}
