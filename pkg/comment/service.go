package comment

import (
	"context"
	"time"

	"learnapp/pkg/common"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=comment

type ICommentRepo interface {
	PostExists(context.Context, int64) (bool, error)
	Add(context.Context, *Comment) (int64, error)
	GetById(context.Context, int64) (*Comment, error)
	ListByPost(context.Context, int64) ([]*Comment, error)
	UpdateBody(ctx context.Context, id int64, body string) error
	Delete(context.Context, int64) error
}

type Service struct {
	Repo ICommentRepo
}

func NewCommentService(repo ICommentRepo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, authorId, postId int64, body string) (*Comment, error) {
	body, err := NormalizeBody(body)
	if err != nil {
		return nil, err
	}
	if err := s.requirePost(ctx, postId); err != nil {
		return nil, err
	}

	c := &Comment{
		AuthorId: authorId,
		PostId:   postId,
		Body:     body,
		Created:  time.Now().UTC(),
	}
	if _, err := s.Repo.Add(ctx, c); err != nil {
		return nil, err
	}
	return s.Repo.GetById(ctx, c.Id)
}

func (s *Service) List(ctx context.Context, postId int64) ([]*Comment, error) {
	if err := s.requirePost(ctx, postId); err != nil {
		return nil, err
	}
	return s.Repo.ListByPost(ctx, postId)
}

func (s *Service) Update(ctx context.Context, actorId, id int64, body string) (*Comment, error) {
	body, err := NormalizeBody(body)
	if err != nil {
		return nil, err
	}
	c, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := common.AssertOwner(c, actorId); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateBody(ctx, id, body); err != nil {
		return nil, err
	}
	c.Body = body
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actorId, id int64) error {
	c, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err := common.AssertOwner(c, actorId); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *Service) requirePost(ctx context.Context, postId int64) error {
	exists, err := s.Repo.PostExists(ctx, postId)
	if err != nil {
		return err
	}
	if !exists {
		return common.NotFound("post not found")
	}
	return nil
}
