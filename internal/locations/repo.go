package locations

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// ErrNotFound is returned when no location row matches the given key.
var ErrNotFound = errors.New("location not found")

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Insert(ctx context.Context, req *CreateRequest) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO locations (address, country, city, state, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?)`,
		req.Address, req.Country, req.City, req.State, req.Latitude, req.Longitude)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Location, error) {
	var l Location
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, address, country, city, state, latitude, longitude, contact_number, email, created_at
		FROM locations WHERE id = ?`, id).
		Scan(&l.ID, &l.Address, &l.Country, &l.City, &l.State, &l.Latitude, &l.Longitude,
			&l.ContactNumber, &l.Email, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) List(ctx context.Context) ([]Location, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, address, country, city, state, latitude, longitude, contact_number, email, created_at
		FROM locations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Location, 0)
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Address, &l.Country, &l.City, &l.State, &l.Latitude,
			&l.Longitude, &l.ContactNumber, &l.Email, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update writes only the fields the update endpoint accepts: address,
// coordinates, and the contact fields.
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE locations
		SET address = ?, latitude = ?, longitude = ?, contact_number = ?, email = ?
		WHERE id = ?`,
		req.Address, req.Latitude, req.Longitude, req.ContactNumber, req.Email, id)
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
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
