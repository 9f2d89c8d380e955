package profile

import (
	"context"

	"learnapp/pkg/category"
	"learnapp/pkg/common"
	"learnapp/pkg/post"
	"learnapp/pkg/user"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=profile

type (
	IProfileRepo interface {
		Categories(context.Context, int64) ([]*category.Category, error)
		Update(ctx context.Context, userId int64, categories []int64, saved *common.SetPatch) error
	}

	ICategoryRepo interface {
		GetByIds(context.Context, []int64) ([]*category.Category, error)
	}

	IPostRepo interface {
		List(context.Context, post.Filter) ([]*post.Post, error)
		ExistingIds(context.Context, []int64) ([]int64, error)
	}

	Service struct {
		Repo       IProfileRepo
		Categories ICategoryRepo
		Posts      IPostRepo
	}
)

func NewProfileService(repo IProfileRepo, categories ICategoryRepo, posts IPostRepo) *Service {
	return &Service{
		Repo:       repo,
		Categories: categories,
		Posts:      posts,
	}
}

func (s *Service) Get(ctx context.Context, u *user.User) (*Profile, error) {
	categories, err := s.Repo.Categories(ctx, u.Id)
	if err != nil {
		return nil, err
	}
	saved, err := s.Posts.List(ctx, post.Filter{SavedBy: u.Id})
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:       u,
		Categories: categories,
		SavedPosts: saved,
	}, nil
}

func (s *Service) Update(ctx context.Context, u *user.User, in *Patch) (*Profile, error) {
	var categories []int64
	if in.Category != nil {
		categories = common.UniqueIds(*in.Category)
		if err := s.requireCategories(ctx, categories); err != nil {
			return nil, err
		}
	}

	saved, err := common.ParseSetPatch("save posts", in.Type, in.SavedPosts)
	if err != nil {
		return nil, err
	}
	if saved != nil && saved.Op == common.SetAdd {
		if err := s.requirePosts(ctx, saved.Ids); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, u.Id, categories, saved); err != nil {
		return nil, err
	}
	return s.Get(ctx, u)
}

func (s *Service) requireCategories(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.Categories.GetByIds(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return common.Validation("unknown category in %v", ids)
	}
	return nil
}

func (s *Service) requirePosts(ctx context.Context, ids []int64) error {
	found, err := s.Posts.ExistingIds(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return common.Validation("unknown post in %v", ids)
	}
	return nil
}
