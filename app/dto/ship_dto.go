package dto

// CreateShipRequest represents the request to register a new ship.
// Pointer fields distinguish "not provided" from zero values; presence of
// mandatory fields is enforced by the business flow, not the decoder.
type CreateShipRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=50"`
	Planet   *string  `json:"planet,omitempty" validate:"omitempty,max=50"`
	ShipType *string  `json:"shipType,omitempty"`
	ProdDate *int64   `json:"prodDate,omitempty"`
	IsUsed   *bool    `json:"isUsed,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	CrewSize *int     `json:"crewSize,omitempty"`
}

// UpdateShipRequest represents a partial update; nil means unchanged.
type UpdateShipRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=50"`
	Planet   *string  `json:"planet,omitempty" validate:"omitempty,max=50"`
	ShipType *string  `json:"shipType,omitempty"`
	ProdDate *int64   `json:"prodDate,omitempty"`
	IsUsed   *bool    `json:"isUsed,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	CrewSize *int     `json:"crewSize,omitempty"`
}

// TouchesRating reports whether the update carries any field the rating is
// derived from.
func (r *UpdateShipRequest) TouchesRating() bool {
	return r.ProdDate != nil || r.IsUsed != nil || r.Speed != nil
}

// ListShipsRequest carries the filter specification for list and count calls.
// Every field is optional; After/Before are epoch milliseconds.
type ListShipsRequest struct {
	Name        *string  `json:"name,omitempty"`
	Planet      *string  `json:"planet,omitempty"`
	ShipType    *string  `json:"shipType,omitempty"`
	After       *int64   `json:"after,omitempty"`
	Before      *int64   `json:"before,omitempty"`
	IsUsed      *bool    `json:"isUsed,omitempty"`
	MinSpeed    *float64 `json:"minSpeed,omitempty"`
	MaxSpeed    *float64 `json:"maxSpeed,omitempty"`
	MinCrewSize *int     `json:"minCrewSize,omitempty"`
	MaxCrewSize *int     `json:"maxCrewSize,omitempty"`
	MinRating   *float64 `json:"minRating,omitempty"`
	MaxRating   *float64 `json:"maxRating,omitempty"`
	Order       *string  `json:"order,omitempty"`
	PageNumber  *int     `json:"pageNumber,omitempty"`
	PageSize    *int     `json:"pageSize,omitempty"`
}

// ShipResponse represents one ship in responses; all fields are always present.
type ShipResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Planet   string  `json:"planet"`
	ShipType string  `json:"shipType"`
	ProdDate int64   `json:"prodDate"`
	IsUsed   bool    `json:"isUsed"`
	Speed    float64 `json:"speed"`
	CrewSize int     `json:"crewSize"`
	Rating   float64 `json:"rating"`
}

// ListShipsResponse represents a page of ships
type ListShipsResponse struct {
	Items []ShipResponse `json:"items"`
}

// CountShipsResponse represents the total number of ships matching a filter
type CountShipsResponse struct {
	Count int64 `json:"count"`
}
