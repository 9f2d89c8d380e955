package collection

import (
	"context"
	"time"

	"learnapp/pkg/common"
	"learnapp/pkg/post"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=collection

type (
	ICollectionRepo interface {
		Add(ctx context.Context, c *Collection, postIds []int64) (int64, error)
		GetById(context.Context, int64) (*Collection, error)
		ListByAuthor(context.Context, int64) ([]*Collection, error)
		Update(context.Context, *Collection, *common.SetPatch) error
		Delete(context.Context, int64) error
		SavedPostIds(ctx context.Context, userId int64, postIds []int64) ([]int64, error)
	}

	IPostLister interface {
		List(context.Context, post.Filter) ([]*post.Post, error)
	}

	Service struct {
		Repo  ICollectionRepo
		Posts IPostLister
	}
)

func NewCollectionService(repo ICollectionRepo, posts IPostLister) *Service {
	return &Service{Repo: repo, Posts: posts}
}

func (s *Service) Create(ctx context.Context, authorId int64, in *CreateReq) (*Collection, error) {
	title, err := NormalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	postIds := common.UniqueIds(in.Posts)
	if err := s.requireSaved(ctx, authorId, postIds); err != nil {
		return nil, err
	}

	c := &Collection{
		AuthorId:    authorId,
		Title:       title,
		Description: in.Description,
		Created:     time.Now().UTC(),
	}
	if _, err := s.Repo.Add(ctx, c, postIds); err != nil {
		return nil, err
	}
	return c, s.loadPosts(ctx, c)
}

func (s *Service) List(ctx context.Context, authorId int64) ([]*Collection, error) {
	collections, err := s.Repo.ListByAuthor(ctx, authorId)
	if err != nil {
		return nil, err
	}
	for _, c := range collections {
		if err := s.loadPosts(ctx, c); err != nil {
			return nil, err
		}
	}
	return collections, nil
}

func (s *Service) Get(ctx context.Context, actorId, id int64) (*Collection, error) {
	c, err := s.owned(ctx, actorId, id)
	if err != nil {
		return nil, err
	}
	return c, s.loadPosts(ctx, c)
}

func (s *Service) Update(ctx context.Context, actorId, id int64, in *Patch) (*Collection, error) {
	c, err := s.owned(ctx, actorId, id)
	if err != nil {
		return nil, err
	}

	pt, err := common.ParseSetPatch("change collection posts", in.Type, in.Posts)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if c.Title, err = NormalizeTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	// only saved posts may be referenced, whatever the direction
	if pt != nil {
		if err := s.requireSaved(ctx, actorId, pt.Ids); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, c, pt); err != nil {
		return nil, err
	}
	return c, s.loadPosts(ctx, c)
}

func (s *Service) Delete(ctx context.Context, actorId, id int64) error {
	if _, err := s.owned(ctx, actorId, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *Service) owned(ctx context.Context, actorId, id int64) (*Collection, error) {
	c, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := common.AssertOwner(c, actorId); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) requireSaved(ctx context.Context, userId int64, postIds []int64) error {
	if len(postIds) == 0 {
		return nil
	}
	saved, err := s.Repo.SavedPostIds(ctx, userId, postIds)
	if err != nil {
		return err
	}
	savedSet := make(map[int64]struct{}, len(saved))
	for _, id := range saved {
		savedSet[id] = struct{}{}
	}
	for _, id := range postIds {
		if _, ok := savedSet[id]; !ok {
			return common.Validation("post %d is not in your saved posts", id)
		}
	}
	return nil
}

func (s *Service) loadPosts(ctx context.Context, c *Collection) error {
	posts, err := s.Posts.List(ctx, post.Filter{CollectionId: c.Id})
	if err != nil {
		return err
	}
	c.Posts = posts
	return nil
}
