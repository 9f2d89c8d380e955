package voting

import (
	"context"

	"learnapp/pkg/common"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=voting

type IVoteRepo interface {
	TargetExists(context.Context, int64) (bool, error)
	Add(context.Context, *Vote) (int64, error)
	GetByVoter(ctx context.Context, voterId, targetId int64) (*Vote, error)
	Update(context.Context, *Vote) error
	Delete(context.Context, int64) error
}

type Service struct {
	Repo   IVoteRepo
	Target Target
}

func NewVoteService(repo IVoteRepo, t Target) *Service {
	return &Service{Repo: repo, Target: t}
}

func (s *Service) Create(ctx context.Context, voterId, targetId int64, score VotingScore) (*Vote, error) {
	if err := score.Validate(); err != nil {
		return nil, err
	}
	exists, err := s.Repo.TargetExists(ctx, targetId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFound("%s not found", s.Target.Name)
	}

	v := &Vote{VoterId: voterId, TargetId: targetId, Score: score}
	if _, err := s.Repo.Add(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, voterId, targetId int64) (*Vote, error) {
	return s.Repo.GetByVoter(ctx, voterId, targetId)
}

func (s *Service) Update(ctx context.Context, voterId, targetId int64, score VotingScore) (*Vote, error) {
	if err := score.Validate(); err != nil {
		return nil, err
	}
	v, err := s.Repo.GetByVoter(ctx, voterId, targetId)
	if err != nil {
		return nil, err
	}
	if err := common.AssertOwner(v, voterId); err != nil {
		return nil, err
	}

	v.Score = score
	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, voterId, targetId int64) error {
	v, err := s.Repo.GetByVoter(ctx, voterId, targetId)
	if err != nil {
		return err
	}
	if err := common.AssertOwner(v, voterId); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, v.Id)
}
