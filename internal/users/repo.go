package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when no user row matches the given key.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an insert trips the UNIQUE(email)
	// constraint. The handler also pre-checks, but the constraint is
	// what actually closes the race between concurrent registrations.
	ErrEmailTaken = errors.New("email already registered")
)

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EmailTakenByOther reports whether a user other than id already owns
// the email address.
func (r *Repository) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	var other int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ? AND id != ?`, email, id).Scan(&other)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) Insert(ctx context.Context, name, email, passwordHash, role string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)`,
		name, email, passwordHash, role)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, email, password, role, created_at FROM users WHERE email = ?`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user's public fields; the password column is never
// selected.
func (r *Repository) List(ctx context.Context) ([]PublicUser, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, email, role, created_at FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PublicUser, 0)
	for rows.Next() {
		var u PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repository) GetPublicByID(ctx context.Context, id int64) (*PublicUser, error) {
	var u PublicUser
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, email, role, created_at FROM users WHERE id = ?`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Update(ctx context.Context, id int64, name, email, role string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, role = ? WHERE id = ?`,
		name, email, role, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
