package post

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

const selectPosts = `SELECT p.id, p.author_id, u.username, p.title, p.description, p.resources, p.tags,
	p.category_id, c.name, p.image, p.created,
	COALESCE((SELECT SUM(v.value) FROM post_votes v WHERE v.post_id = p.id), 0) AS score
FROM posts p
JOIN users u ON u.id = p.author_id
JOIN categories c ON c.id = p.category_id`

type Repo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Add stores the post with its tag index in one transaction.
func (r *Repo) Add(ctx context.Context, p *Post) (int64, error) {
	resources, tags, err := encodeLists(p)
	if err != nil {
		return 0, err
	}

	err = store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO posts(author_id, title, description, resources, tags, category_id, image, created)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			p.AuthorId, p.Title, p.Description, resources, tags, p.CategoryId, p.Image, p.Created,
		).Scan(&p.Id)
		if err != nil {
			return err
		}
		return insertTags(ctx, tx, p.Id, p.Tags)
	})
	if store.IsUniqueViolation(err) {
		return 0, common.Conflict("you already have a post with title %q", p.Title)
	}
	if store.IsForeignKeyViolation(err) {
		return 0, common.Validation("category %d does not exist", p.CategoryId)
	}
	if err != nil {
		return 0, fmt.Errorf("post/repo: failed inserting a post: %w", err)
	}
	return p.Id, nil
}

// Update rewrites the mutable columns and the tag index. Author and creation
// time never change.
func (r *Repo) Update(ctx context.Context, p *Post) error {
	resources, tags, err := encodeLists(p)
	if err != nil {
		return err
	}

	err = store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE posts SET title = $1, description = $2, resources = $3, tags = $4, category_id = $5, image = $6
			WHERE id = $7`,
			p.Title, p.Description, resources, tags, p.CategoryId, p.Image, p.Id)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.NotFound("post not found")
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM post_tags WHERE post_id = $1", p.Id); err != nil {
			return err
		}
		return insertTags(ctx, tx, p.Id, p.Tags)
	})
	if store.IsUniqueViolation(err) {
		return common.Conflict("you already have a post with title %q", p.Title)
	}
	if store.IsForeignKeyViolation(err) {
		return common.Validation("category %d does not exist", p.CategoryId)
	}
	var domainErr *common.Error
	if errors.As(err, &domainErr) {
		return err
	}
	if err != nil {
		return fmt.Errorf("post/repo: failed updating post: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post: %w", err)
	}
	if n == 0 {
		return common.NotFound("post not found")
	}
	return nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Post, error) {
	row := r.db.QueryRowContext(ctx, selectPosts+" WHERE p.id = $1", id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFound("post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding post %d: %w", id, err)
	}
	return p, nil
}

// TitleTaken reports whether the author has another post with the title.
func (r *Repo) TitleTaken(ctx context.Context, authorId int64, title string, exceptId int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM posts WHERE author_id = $1 AND title = $2 AND id <> $3",
		authorId, title, exceptId).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("post/repo: failed checking title: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, f Filter) ([]*Post, error) {
	q, args := listQuery(f)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("post/repo: could not scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post/repo: rows iteration failed: %w", err)
	}
	return posts, nil
}

// ExistingIds returns the ids among ids that reference stored posts.
func (r *Repo) ExistingIds(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	args := store.Args{}
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM posts WHERE id IN ("+args.In(ids)+")", args...)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer rows.Close()

	found := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("post/repo: could not scan id: %w", err)
		}
		found = append(found, id)
	}
	return found, rows.Err()
}

func listQuery(f Filter) (string, []interface{}) {
	args := store.Args{}
	where := []string{}

	if len(f.Ids) > 0 {
		where = append(where, "p.id IN ("+args.In(f.Ids)+")")
	}
	if f.Username != "" {
		where = append(where, "u.username = "+args.Add(f.Username))
	}
	if f.SubscriberId != 0 {
		where = append(where,
			"p.category_id IN (SELECT category_id FROM profile_categories WHERE user_id = "+args.Add(f.SubscriberId)+")")
	}
	if f.SavedBy != 0 {
		where = append(where,
			"p.id IN (SELECT post_id FROM saved_posts WHERE user_id = "+args.Add(f.SavedBy)+")")
	}
	if f.CollectionId != 0 {
		where = append(where,
			"p.id IN (SELECT post_id FROM collection_posts WHERE collection_id = "+args.Add(f.CollectionId)+")")
	}
	if len(f.Tags) > 0 {
		ph := make([]string, 0, len(f.Tags))
		for _, t := range f.Tags {
			ph = append(ph, args.Add(t))
		}
		// every searched tag must be present
		where = append(where, fmt.Sprintf(
			"p.id IN (SELECT post_id FROM post_tags WHERE tag IN (%s) GROUP BY post_id HAVING COUNT(*) = %s)",
			strings.Join(ph, ", "), args.Add(len(f.Tags))))
	}

	q := selectPosts
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	switch f.Order {
	case OrderNewest:
		q += " ORDER BY p.created DESC, p.id DESC"
	case OrderRating:
		q += " ORDER BY score DESC, p.id ASC"
	default:
		q += " ORDER BY p.id ASC"
	}
	return q, args
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner) (*Post, error) {
	p := new(Post)
	var resources, tags string
	err := row.Scan(&p.Id, &p.AuthorId, &p.Username, &p.Title, &p.Description, &resources, &tags,
		&p.CategoryId, &p.CategoryName, &p.Image, &p.Created, &p.Score)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resources), &p.Resources); err != nil {
		return nil, fmt.Errorf("bad resources of post %d: %w", p.Id, err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("bad tags of post %d: %w", p.Id, err)
	}
	return p, nil
}

func encodeLists(p *Post) (string, string, error) {
	if p.Resources == nil {
		p.Resources = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	resources, err := json.Marshal(p.Resources)
	if err != nil {
		return "", "", fmt.Errorf("post/repo: can't encode resources: %w", err)
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return "", "", fmt.Errorf("post/repo: can't encode tags: %w", err)
	}
	return string(resources), string(tags), nil
}

func insertTags(ctx context.Context, tx *sql.Tx, postId int64, tags []string) error {
	for _, t := range tags {
		if _, err := tx.ExecContext(ctx, "INSERT INTO post_tags(post_id, tag) VALUES($1, $2)", postId, t); err != nil {
			return err
		}
	}
	return nil
}
