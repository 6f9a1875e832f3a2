package services

type Service struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	CreatedAt   string
}

// Response is the projected shape: string id, camelCase field names.
type Response struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	CreatedAt   string  `json:"createdAt"`
}

type Request struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
}

func project(s *Service) Response {
	return Response{
		ID:          formatID(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
	}
}
