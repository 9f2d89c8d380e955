package post

import (
	"context"
	"time"

	"learnapp/pkg/category"
	"learnapp/pkg/common"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=post

type (
	IPostRepo interface {
		Add(context.Context, *Post) (int64, error)
		Update(context.Context, *Post) error
		Delete(context.Context, int64) error
		GetById(context.Context, int64) (*Post, error)
		TitleTaken(ctx context.Context, authorId int64, title string, exceptId int64) (bool, error)
		List(context.Context, Filter) ([]*Post, error)
	}

	ICategoryRepo interface {
		GetByIds(context.Context, []int64) ([]*category.Category, error)
	}

	Service struct {
		Posts      IPostRepo
		Categories ICategoryRepo
		now        func() time.Time
	}
)

func NewPostService(posts IPostRepo, categories ICategoryRepo) *Service {
	return &Service{
		Posts:      posts,
		Categories: categories,
		now:        time.Now,
	}
}

func (s *Service) Create(ctx context.Context, authorId int64, in *Patch) (*Post, error) {
	if in.Title == nil {
		return nil, common.Validation("title is required")
	}
	if in.Category == nil {
		return nil, common.Validation("category is required")
	}

	p := &Post{
		AuthorId:  authorId,
		Resources: []string{},
		Tags:      []string{},
		Created:   s.now().UTC(),
	}
	if err := in.Apply(p); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, p.CategoryId); err != nil {
		return nil, err
	}
	if err := s.checkTitle(ctx, p, 0); err != nil {
		return nil, err
	}

	if _, err := s.Posts.Add(ctx, p); err != nil {
		return nil, err
	}
	return s.Posts.GetById(ctx, p.Id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.Posts.GetById(ctx, id)
}

func (s *Service) Update(ctx context.Context, actorId, id int64, in *Patch) (*Post, error) {
	p, err := s.Posts.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := common.AssertOwner(p, actorId); err != nil {
		return nil, err
	}

	oldCategory := p.CategoryId
	if err := in.Apply(p); err != nil {
		return nil, err
	}
	if p.CategoryId != oldCategory {
		if err := s.checkCategory(ctx, p.CategoryId); err != nil {
			return nil, err
		}
	}
	if err := s.checkTitle(ctx, p, p.Id); err != nil {
		return nil, err
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.Posts.GetById(ctx, p.Id)
}

func (s *Service) Delete(ctx context.Context, actorId, id int64) error {
	p, err := s.Posts.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err := common.AssertOwner(p, actorId); err != nil {
		return err
	}
	return s.Posts.Delete(ctx, id)
}

// List returns the author's posts when username is set, otherwise the posts
// of the categories the viewer is subscribed to. Both narrow by search tags.
func (s *Service) List(ctx context.Context, viewerId int64, username string, search []string, order string) ([]*Post, error) {
	f := Filter{
		Tags:  SearchTags(search),
		Order: order,
	}
	if username != "" {
		f.Username = username
	} else {
		f.SubscriberId = viewerId
	}
	return s.Posts.List(ctx, f)
}

func (s *Service) checkCategory(ctx context.Context, id int64) error {
	found, err := s.Categories.GetByIds(ctx, []int64{id})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return common.Validation("category %d does not exist", id)
	}
	return nil
}

func (s *Service) checkTitle(ctx context.Context, p *Post, exceptId int64) error {
	taken, err := s.Posts.TitleTaken(ctx, p.AuthorId, p.Title, exceptId)
	if err != nil {
		return err
	}
	if taken {
		return common.Conflict("you already have a post with title %q", p.Title)
	}
	return nil
}
