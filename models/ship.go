package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ShipType represents the category of a ship
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// String returns the string representation of the ship type
func (t ShipType) String() string {
	return string(t)
}

// Valid checks if the ship type is one of the known tags
func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	default:
		return false
	}
}

// ParseShipType resolves a tag case-insensitively to its canonical form
func ParseShipType(s string) (ShipType, bool) {
	t := ShipType(strings.ToUpper(s))
	return t, t.Valid()
}

// Scan implements the sql.Scanner interface for ShipType
func (t *ShipType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = ShipType(v)
	case []byte:
		*t = ShipType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ShipType", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ShipType
func (t ShipType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid ShipType: %s", t)
	}
	return string(t), nil
}

// Ship represents a registered ship.
// Table: ships
// Rating is derived from speed, is_used and the production year and is never
// accepted from clients; every write that touches one of those inputs must
// also write a freshly computed rating.
type Ship struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Planet   string    `gorm:"size:50;not null" json:"planet"`
	ShipType ShipType  `gorm:"size:20;not null;index:idx_ships_ship_type" json:"shipType"`
	ProdDate time.Time `gorm:"type:date;not null;index:idx_ships_prod_date" json:"prodDate"`
	IsUsed   *bool     `gorm:"not null;default:false" json:"isUsed"`
	Speed    float64   `gorm:"type:numeric(4,2);not null" json:"speed"`
	CrewSize int       `gorm:"not null" json:"crewSize"`
	Rating   float64   `gorm:"type:numeric(19,2);not null" json:"rating"`
}

func (Ship) TableName() string { return "ships" }

// ShipFilter represents filter criteria for ship queries.
// Nil fields add no constraint; present fields are ANDed together.
type ShipFilter struct {
	Name           *string
	Planet         *string
	ShipType       *ShipType
	ProdDateAfter  *time.Time
	ProdDateBefore *time.Time
	IsUsed         *bool
	MinSpeed       *float64
	MaxSpeed       *float64
	MinCrewSize    *int
	MaxCrewSize    *int
	MinRating      *float64
	MaxRating      *float64
}

// ShipSortField names a column ships can be ordered by (ascending only)
type ShipSortField string

const (
	ShipSortID     ShipSortField = "ID"
	ShipSortSpeed  ShipSortField = "SPEED"
	ShipSortDate   ShipSortField = "DATE"
	ShipSortRating ShipSortField = "RATING"
)

// Valid checks if the sort field is one of the supported values
func (f ShipSortField) Valid() bool {
	switch f {
	case ShipSortID, ShipSortSpeed, ShipSortDate, ShipSortRating:
		return true
	default:
		return false
	}
}

// Column returns the database column the sort field maps to
func (f ShipSortField) Column() string {
	switch f {
	case ShipSortSpeed:
		return "speed"
	case ShipSortDate:
		return "prod_date"
	case ShipSortRating:
		return "rating"
	default:
		return "id"
	}
}
