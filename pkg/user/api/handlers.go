package api

import (
	"context"
	"net/http"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
	"learnapp/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=api

type (
	UserRepo interface {
		UserExists(ctx context.Context, email, username string, exceptId int64) (bool, error)
		GetByEmailAndPass(ctx context.Context, email, pass string) (*user.User, error)
		Add(ctx context.Context, u *user.User) (int64, error)
		GetById(ctx context.Context, id int64) (*user.User, error)
		GetAll(ctx context.Context) ([]*user.User, error)
		Update(ctx context.Context, u *user.User) error
		Delete(ctx context.Context, id int64) error
	}

	SessionManager interface {
		CreateTokens(u *user.User) (string, string, error)
		Refresh(refreshToken string) (string, error)
		CleanupUserSessions(userId int64) error
		DropUserSessions(userId int64) error
	}

	UserHandler struct {
		Repo           UserRepo
		SessionManager SessionManager
	}

	HttpUser struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	userPatch struct {
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Password *string `json:"password"`
	}

	tokenPair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh,omitempty"`
	}
)

func NewUserHandler(r UserRepo, sm SessionManager) *UserHandler {
	return &UserHandler{
		Repo:           r,
		SessionManager: sm,
	}
}

// LogIn exchanges email and password for an access/refresh token pair.
func (uh UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	httpUser := new(HttpUser)
	err := common.ParseReqBody(r.Body, httpUser)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	email, err := user.NormalizeEmail(httpUser.Email)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	u, err := uh.Repo.GetByEmailAndPass(r.Context(), email, httpUser.Password)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	// Remove expired user session if there are any
	if err := uh.SessionManager.CleanupUserSessions(u.Id); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't cleanup sessions for user `%s`, %v", u.Username, err)
		common.WriteMsg(w, "failed managing user sessions", http.StatusInternalServerError)
		return
	}

	access, refresh, err := uh.SessionManager.CreateTokens(u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't create JWT token from user: %v", err)
		common.WriteMsg(w, "user authentication failed", http.StatusInternalServerError)
		return
	}

	common.WriteJSON(w, tokenPair{Access: access, Refresh: refresh}, http.StatusOK)
}

func (uh UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Refresh string `json:"refresh"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil || req.Refresh == "" {
		common.WriteMsg(w, "refresh token is required", http.StatusBadRequest)
		return
	}

	access, err := uh.SessionManager.Refresh(req.Refresh)
	if err != nil {
		logger.Log(r.Context()).Infof("refresh rejected: %v", err)
		common.WriteMsg(w, "token is invalid or expired", http.StatusUnauthorized)
		return
	}

	common.WriteJSON(w, tokenPair{Access: access}, http.StatusOK)
}

func (uh UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	httpUser := new(HttpUser)
	err := common.ParseReqBody(r.Body, httpUser)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	u, err := newUser(httpUser)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	// Check if user already exists
	exists, err := uh.Repo.UserExists(r.Context(), u.Email, u.Username, 0)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}
	if exists {
		common.WriteErr(r.Context(), w, common.Conflict("user with this email or username already exists"))
		return
	}

	if _, err := uh.Repo.Add(r.Context(), u); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, u, http.StatusCreated)
}

func newUser(hu *HttpUser) (*user.User, error) {
	email, err := user.NormalizeEmail(hu.Email)
	if err != nil {
		return nil, err
	}
	if err := user.ValidateUsername(hu.Username); err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(hu.Password); err != nil {
		return nil, err
	}
	return &user.User{
		Email:    email,
		Username: hu.Username,
		Password: common.NewPassHash(hu.Password),
		// Id is set by the repo
	}, nil
}

func (uh UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := uh.Repo.GetAll(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}
	common.WriteJSON(w, users, http.StatusOK)
}

func (uh UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}
	common.WriteJSON(w, authUser, http.StatusOK)
}

// UpdateMe applies a partial update to the authenticated user.
func (uh UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}

	patch := new(userPatch)
	if err := common.ParseReqBody(r.Body, patch); err != nil {
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated := &user.User{Id: authUser.Id, Email: authUser.Email, Username: authUser.Username}
	if patch.Email != nil {
		if updated.Email, err = user.NormalizeEmail(*patch.Email); err != nil {
			common.WriteErr(r.Context(), w, err)
			return
		}
	}
	if patch.Username != nil {
		if err := user.ValidateUsername(*patch.Username); err != nil {
			common.WriteErr(r.Context(), w, err)
			return
		}
		updated.Username = *patch.Username
	}
	if patch.Password != nil {
		if err := user.ValidatePassword(*patch.Password); err != nil {
			common.WriteErr(r.Context(), w, err)
			return
		}
		updated.Password = common.NewPassHash(*patch.Password)
	}

	exists, err := uh.Repo.UserExists(r.Context(), updated.Email, updated.Username, updated.Id)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}
	if exists {
		common.WriteErr(r.Context(), w, common.Conflict("user with this email or username already exists"))
		return
	}

	if err := uh.Repo.Update(r.Context(), updated); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, updated, http.StatusOK)
}

func (uh UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}

	if err := uh.Repo.Delete(r.Context(), authUser.Id); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}
	if err := uh.SessionManager.DropUserSessions(authUser.Id); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't drop sessions of deleted user %d: %v", authUser.Id, err)
	}

	w.WriteHeader(http.StatusNoContent)
}
