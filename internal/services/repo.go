package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// ErrNotFound is returned when no service row matches the given key.
var ErrNotFound = errors.New("service not found")

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Insert(ctx context.Context, req *Request) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO services (name, description, price, image_url) VALUES (?, ?, ?, ?)`,
		req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Service, error) {
	var s Service
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_url, created_at
		FROM services WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.ImageURL, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]Service, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price, image_url, created_at
		FROM services`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Service, 0)
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) Update(ctx context.Context, id int64, req *Request) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE services SET name = ?, description = ?, price = ?, image_url = ? WHERE id = ?`,
		req.Name, req.Description, req.Price, req.ImageURL, id)
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
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

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
