package category

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

type Repo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetAll(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("category/repo: failed finding categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// GetByIds returns the existing categories among ids.
func (r *Repo) GetByIds(ctx context.Context, ids []int64) ([]*Category, error) {
	if len(ids) == 0 {
		return []*Category{}, nil
	}
	args := store.Args{}
	q := "SELECT id, name FROM categories WHERE id IN (" + args.In(ids) + ") ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("category/repo: failed finding categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (r *Repo) Add(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Validation("category name is required")
	}
	c := &Category{Name: name}
	err := r.db.QueryRowContext(ctx, "INSERT INTO categories(name) VALUES($1) RETURNING id", name).Scan(&c.Id)
	if store.IsUniqueViolation(err) {
		return nil, common.Conflict("category %q already exists", name)
	}
	if err != nil {
		return nil, fmt.Errorf("category/repo: failed inserting category: %w", err)
	}
	return c, nil
}

func scanCategories(rows *sql.Rows) ([]*Category, error) {
	categories := []*Category{}
	for rows.Next() {
		c := new(Category)
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, fmt.Errorf("category/repo: could not scan row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category/repo: rows iteration failed: %w", err)
	}
	return categories, nil
}
