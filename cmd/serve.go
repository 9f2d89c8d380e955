package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnapp/pkg/category"
	"learnapp/pkg/collection"
	"learnapp/pkg/comment"
	"learnapp/pkg/files"
	"learnapp/pkg/logger"
	"learnapp/pkg/middleware"
	"learnapp/pkg/post"
	"learnapp/pkg/profile"
	"learnapp/pkg/sessions"
	"learnapp/pkg/user"
	"learnapp/pkg/user/api"
	"learnapp/pkg/voting"
)

func init() {
	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg["SECRET_KEY"] == "" {
			return errors.New("serve: SECRET_KEY is required")
		}
		zlog := logger.Log(context.Background())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		redisPool := sessions.NewPool(cfg["REDIS_ADDR"])
		defer redisPool.Close()

		mongoCtx, mongoCtxCancel := context.WithTimeout(ctx, 3*time.Second)
		defer mongoCtxCancel()
		mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg["MONGODB_URI"]))
		if err != nil {
			return err
		}
		if err := mongoClient.Ping(mongoCtx, nil); err != nil {
			return err
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				zlog.Errorf("serve: failed disconnecting from MongoDB: %v", err)
			}
		}()
		blobs := files.NewGridFSStore(mongoClient.Database(cfg["MONGODB_DB"]), cfg["PUBLIC_URL"], cfg.Duration("BLOB_TIMEOUT"))

		usersRepo := user.NewUserRepo(db)
		categoryRepo := category.NewCategoryRepo(db)
		postRepo := post.NewPostRepo(db)
		sessionManager := sessions.NewSessionManager(cfg["SECRET_KEY"], redisPool, cfg.Duration("ACCESS_TTL"), cfg.Duration("SESSION_TTL"))

		h := handlers{
			users:      api.NewUserHandler(usersRepo, sessionManager),
			profiles:   profile.NewProfileHandler(profile.NewProfileService(profile.NewProfileRepo(db), categoryRepo, postRepo)),
			categories: category.NewCategoryHandler(categoryRepo),
			posts:      post.NewPostHandler(post.NewPostService(postRepo, categoryRepo)),
			postVotes: voting.NewVoteHandler(
				voting.NewVoteService(voting.NewVoteRepo(db, voting.PostTarget), voting.PostTarget), voting.PostTarget),
			comments: comment.NewCommentHandler(comment.NewCommentService(comment.NewCommentRepo(db))),
			commentVotes: voting.NewVoteHandler(
				voting.NewVoteService(voting.NewVoteRepo(db, voting.CommentTarget), voting.CommentTarget), voting.CommentTarget),
			collections: collection.NewCollectionHandler(collection.NewCollectionService(collection.NewCollectionRepo(db), postRepo)),
			files:       files.NewFileHandler(files.NewFileService(blobs, files.NewRefRepo(db))),
		}

		auth := middleware.NewAuthMiddleware(sessionManager, usersRepo)
		r := newRouter(h, auth.Middleware, middleware.NewLoggingMiddleware(zlog))

		srv := &http.Server{
			Addr:              cfg["LISTEN_ADDR"],
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errc := make(chan error, 1)
		go func() {
			zlog.Infof("serving at %s", cfg["LISTEN_ADDR"])
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			zlog.Info("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
