package locations

type Location struct {
	ID            int64
	Address       string
	Country       string
	City          string
	State         string
	Latitude      float64
	Longitude     float64
	ContactNumber *string
	Email         *string
	CreatedAt     string
}

// ListResponse is the projection used by GET /locations.
type ListResponse struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CreatedAt string  `json:"createdAt"`
}

// DetailResponse is the projection used by create and update. It carries
// the contact fields instead of country/city/state; contactNumber and
// email stay null until a PUT sets them.
type DetailResponse struct {
	ID            string  `json:"id"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
	CreatedAt     string  `json:"createdAt"`
}

type CreateRequest struct {
	Address   string   `json:"address"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdateRequest struct {
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ContactNumber string   `json:"contactNumber"`
	Email         string   `json:"email"`
}

func projectList(l *Location) ListResponse {
	return ListResponse{
		ID:        formatID(l.ID),
		Address:   l.Address,
		Country:   l.Country,
		City:      l.City,
		State:     l.State,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		CreatedAt: l.CreatedAt,
	}
}

func projectDetail(l *Location) DetailResponse {
	return DetailResponse{
		ID:            formatID(l.ID),
		Address:       l.Address,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		ContactNumber: l.ContactNumber,
		Email:         l.Email,
		CreatedAt:     l.CreatedAt,
	}
}
