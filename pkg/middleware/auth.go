package middleware

import (
	"context"
	"net/http"
	"time"

	. "learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
	"learnapp/pkg/user"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middleware

type (
	IUserRepo interface {
		GetById(context.Context, int64) (*user.User, error)
	}
	ISessionManager interface {
		UserFromToken(string) (*user.User, error)
	}
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

// Middleware puts the token's user into the request context. Requests
// without a valid token pass through anonymously.
func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		userFromToken, err := auth.SessionManager.UserFromToken(authHeader)
		if err != nil {
			logger.Log(r.Context()).Infof("can't get user from token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		user, err := auth.UserRepo.GetById(repoCtx, userFromToken.Id)
		if err != nil {
			logger.Log(r.Context()).Errorf("auth: can't get the user form repo: %v", err)
			WriteMsg(w, "user not found", http.StatusUnauthorized)
			return
		}

		ctx := sessions.WithAuthUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.GetAuthUser(r.Context()); err != nil {
			WriteMsg(w, "authentication credentials were not provided", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
