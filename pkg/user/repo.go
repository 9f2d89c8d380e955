package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

var errTaken = common.Conflict("user with this email or username already exists")

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// Add creates the user together with its empty profile.
func (r *UserRepo) Add(ctx context.Context, u *User) (int64, error) {
	if u.Created.IsZero() {
		u.Created = time.Now()
	}
	err := store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"INSERT INTO users(email, username, password, created) VALUES($1, $2, $3, $4) RETURNING id",
			u.Email, u.Username, u.Password, u.Created)
		if err := row.Scan(&u.Id); err != nil {
			return err
		}
		if u.Id == 0 {
			return fmt.Errorf("user/repo: user wasn't added, id is 0")
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO profiles(user_id) VALUES($1)", u.Id)
		return err
	})
	if store.IsUniqueViolation(err) {
		return 0, errTaken
	}
	if err != nil {
		return 0, fmt.Errorf("user/repo: user wasn't added: %w", err)
	}
	return u.Id, nil
}

func (r *UserRepo) GetByEmailAndPass(ctx context.Context, email, pass string) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, email, username, password FROM users WHERE email = $1", email)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Email, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.Unauthorized("no active account found with the given credentials")
		}
		return nil, fmt.Errorf("user/repo: row scan failed: %w", err)
	}
	// User found by email, now check if passwords are the same
	if !common.CheckPass(pass, u.Password) {
		return nil, common.Unauthorized("no active account found with the given credentials")
	}
	return u, nil
}

// UserExists reports whether the email or the username is already taken
// by a user other than exceptId.
func (r *UserRepo) UserExists(ctx context.Context, email, username string, exceptId int64) (bool, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE (email = $1 OR username = $2) AND id <> $3",
		email, username, exceptId)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepo) GetById(ctx context.Context, uid int64) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, email, username FROM users WHERE id = $1", uid)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Email, &u.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("user not found")
		}
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, email, username FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed executing query for getting all users: %w", err)
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u := new(User)
		err := rows.Scan(&u.Id, &u.Email, &u.Username)
		if err != nil {
			return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user/repo: rows iteration failed: %w", err)
	}

	return users, nil
}

// Update stores email, username and, when set, the password hash.
func (r *UserRepo) Update(ctx context.Context, u *User) error {
	var err error
	if len(u.Password) > 0 {
		_, err = r.db.ExecContext(ctx,
			"UPDATE users SET email = $1, username = $2, password = $3 WHERE id = $4",
			u.Email, u.Username, u.Password, u.Id)
	} else {
		_, err = r.db.ExecContext(ctx,
			"UPDATE users SET email = $1, username = $2 WHERE id = $3",
			u.Email, u.Username, u.Id)
	}
	if store.IsUniqueViolation(err) {
		return errTaken
	}
	if err != nil {
		return fmt.Errorf("user/repo: failed updating user: %w", err)
	}
	return nil
}

// Delete removes the user; everything the user owns goes with it.
func (r *UserRepo) Delete(ctx context.Context, uid int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", uid)
	if err != nil {
		return fmt.Errorf("user/repo: failed deleting user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.NotFound("user not found")
	}
	return nil
}
