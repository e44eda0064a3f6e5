package testing

import (
	"fmt"
	"testing"
	"time"

	businessflow "github.com/spacefleet/kosmoport/business_flow"
	"github.com/spacefleet/kosmoport/models"
	"github.com/spacefleet/kosmoport/utils"

	"gorm.io/gorm"
)

// ShipOption mutates a ship fixture before it is persisted
type ShipOption func(*models.Ship)

func WithName(name string) ShipOption {
	return func(s *models.Ship) { s.Name = name }
}

func WithPlanet(planet string) ShipOption {
	return func(s *models.Ship) { s.Planet = planet }
}

func WithShipType(shipType models.ShipType) ShipOption {
	return func(s *models.Ship) { s.ShipType = shipType }
}

func WithProdYear(year int) ShipOption {
	return func(s *models.Ship) {
		s.ProdDate = time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
}

func WithUsed(used bool) ShipOption {
	return func(s *models.Ship) { s.IsUsed = utils.ToPtr(used) }
}

func WithSpeed(speed float64) ShipOption {
	return func(s *models.Ship) { s.Speed = speed }
}

func WithCrewSize(crewSize int) ShipOption {
	return func(s *models.Ship) { s.CrewSize = crewSize }
}

// CreateTestShip persists a ship with sane defaults, applying any options.
// Rating is always recomputed from the final field values.
func CreateTestShip(t *testing.T, db *gorm.DB, opts ...ShipOption) *models.Ship {
	t.Helper()

	ship := &models.Ship{
		Name:     "Stellar Wind",
		Planet:   "Mars",
		ShipType: models.ShipTypeTransport,
		ProdDate: time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsUsed:   utils.ToPtr(false),
		Speed:    0.5,
		CrewSize: 100,
	}

	for _, opt := range opts {
		opt(ship)
	}

	ship.Rating = businessflow.CalculateShipRating(ship.Speed, utils.IsTrue(ship.IsUsed), utils.YearOf(ship.ProdDate))

	if err := db.Create(ship).Error; err != nil {
		t.Fatalf("failed to create test ship: %v", err)
	}
	return ship
}

// CreateTestFleet persists n ships with distinct names, years and speeds
// spread across the allowed ranges so filter tests have variety to bite on.
func CreateTestFleet(t *testing.T, db *gorm.DB, n int) []*models.Ship {
	t.Helper()

	types := []models.ShipType{models.ShipTypeTransport, models.ShipTypeMilitary, models.ShipTypeMerchant}
	planets := []string{"Mars", "Venus", "Kepler-62f", "Proxima b"}

	ships := make([]*models.Ship, 0, n)
	for i := 0; i < n; i++ {
		ship := CreateTestShip(t, db,
			WithName(fmt.Sprintf("Fleet Ship %02d", i)),
			WithPlanet(planets[i%len(planets)]),
			WithShipType(types[i%len(types)]),
			WithProdYear(2800+(i*13)%220),
			WithUsed(i%2 == 1),
			WithSpeed(0.01+float64(i%98)*0.01),
			WithCrewSize(1+(i*97)%9999),
		)
		ships = append(ships, ship)
	}
	return ships
}
