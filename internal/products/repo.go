package products

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// ErrNotFound is returned when no product row matches the given key.
var ErrNotFound = errors.New("product not found")

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Insert(ctx context.Context, req *Request) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO products (name, description, price, stock_quantity, image_url, category)
		VALUES (?, ?, ?, ?, ?, ?)`,
		req.Name, req.Description, req.Price, req.StockQuantity, req.ImageURL, req.Category)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock_quantity, image_url, category, created_at
		FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.ImageURL, &p.Category, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price, stock_quantity, image_url, category, created_at
		FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.ImageURL, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) Update(ctx context.Context, id int64, req *Request) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price = ?, stock_quantity = ?, image_url = ?, category = ?
		WHERE id = ?`,
		req.Name, req.Description, req.Price, req.StockQuantity, req.ImageURL, req.Category, id)
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
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
