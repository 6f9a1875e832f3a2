package products

// Product mirrors the products table. Optional columns use pointers so
// NULL survives the round trip into the response.
type Product struct {
	ID            int64
	Name          string
	Description   *string
	Price         float64
	StockQuantity *int64
	ImageURL      *string
	Category      string
	CreatedAt     string
}

// Response is the projected shape: string id, camelCase field names,
// created_at not included.
type Response struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity *int64  `json:"stockQuantity"`
	ImageURL      *string `json:"imageUrl"`
	Category      string  `json:"category"`
}

type Request struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	StockQuantity *int64   `json:"stockQuantity"`
	ImageURL      *string  `json:"imageUrl"`
	Category      string   `json:"category"`
}

func project(p *Product) Response {
	return Response{
		ID:            formatID(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
	}
}
