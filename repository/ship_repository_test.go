package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/spacefleet/kosmoport/models"
	"github.com/spacefleet/kosmoport/repository"
	kosmotesting "github.com/spacefleet/kosmoport/testing"
	"github.com/spacefleet/kosmoport/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupShipRepo(t *testing.T) (repository.ShipRepository, *kosmotesting.TestDB) {
	t.Helper()
	tdb := kosmotesting.SetupTestDB(t)
	return repository.NewShipRepository(tdb.DB), tdb
}

func TestShipRepository_SaveAndByID(t *testing.T) {
	repo, tdb := setupShipRepo(t)
	ctx := context.Background()

	ship := kosmotesting.CreateTestShip(t, tdb.DB,
		kosmotesting.WithName("Nightjar"),
		kosmotesting.WithProdYear(2950),
	)

	t.Run("finds an existing ship", func(t *testing.T) {
		found, err := repo.ByID(ctx, ship.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Nightjar", found.Name)
		assert.Equal(t, 2950, utils.YearOf(found.ProdDate))
	})

	t.Run("returns nil for a missing ship", func(t *testing.T) {
		found, err := repo.ByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("exists matches presence", func(t *testing.T) {
		exists, err := repo.ExistsByID(ctx, ship.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByID(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestShipRepository_ByFilter(t *testing.T) {
	repo, tdb := setupShipRepo(t)
	ctx := context.Background()

	kosmotesting.CreateTestShip(t, tdb.DB,
		kosmotesting.WithName("Aurora"),
		kosmotesting.WithPlanet("Mars"),
		kosmotesting.WithShipType(models.ShipTypeTransport),
		kosmotesting.WithProdYear(2850),
		kosmotesting.WithSpeed(0.30),
		kosmotesting.WithCrewSize(10),
	)
	kosmotesting.CreateTestShip(t, tdb.DB,
		kosmotesting.WithName("Borealis"),
		kosmotesting.WithPlanet("Venus"),
		kosmotesting.WithShipType(models.ShipTypeMilitary),
		kosmotesting.WithProdYear(2900),
		kosmotesting.WithSpeed(0.90),
		kosmotesting.WithUsed(true),
		kosmotesting.WithCrewSize(500),
	)
	kosmotesting.CreateTestShip(t, tdb.DB,
		kosmotesting.WithName("Celestine"),
		kosmotesting.WithPlanet("Mars rim station"),
		kosmotesting.WithShipType(models.ShipTypeMerchant),
		kosmotesting.WithProdYear(2990),
		kosmotesting.WithSpeed(0.60),
		kosmotesting.WithCrewSize(2000),
	)

	t.Run("no filter returns everything", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{}, "id ASC", 0, 0)
		require.NoError(t, err)
		assert.Len(t, ships, 3)
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{Name: utils.ToPtr("AURO")}, "id ASC", 0, 0)
		require.NoError(t, err)
		require.Len(t, ships, 1)
		assert.Equal(t, "Aurora", ships[0].Name)
	})

	t.Run("planet substring hits both Mars ships", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{Planet: utils.ToPtr("mars")}, "id ASC", 0, 0)
		require.NoError(t, err)
		assert.Len(t, ships, 2)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{
			Planet:   utils.ToPtr("Mars"),
			MinSpeed: utils.ToPtr(0.5),
		}, "id ASC", 0, 0)
		require.NoError(t, err)
		require.Len(t, ships, 1)
		assert.Equal(t, "Celestine", ships[0].Name)
	})

	t.Run("type and used flag match exactly", func(t *testing.T) {
		military := models.ShipTypeMilitary
		ships, err := repo.ByFilter(ctx, models.ShipFilter{
			ShipType: &military,
			IsUsed:   utils.ToPtr(true),
		}, "id ASC", 0, 0)
		require.NoError(t, err)
		require.Len(t, ships, 1)
		assert.Equal(t, "Borealis", ships[0].Name)
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		after := time.Date(2900, time.June, 15, 0, 0, 0, 0, time.UTC)
		before := time.Date(2990, time.June, 15, 0, 0, 0, 0, time.UTC)
		ships, err := repo.ByFilter(ctx, models.ShipFilter{
			ProdDateAfter:  &after,
			ProdDateBefore: &before,
		}, "id ASC", 0, 0)
		require.NoError(t, err)
		assert.Len(t, ships, 2)
	})

	t.Run("crew size bounds", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{
			MinCrewSize: utils.ToPtr(100),
			MaxCrewSize: utils.ToPtr(1000),
		}, "id ASC", 0, 0)
		require.NoError(t, err)
		require.Len(t, ships, 1)
		assert.Equal(t, "Borealis", ships[0].Name)
	})

	t.Run("orders ascending by speed", func(t *testing.T) {
		ships, err := repo.ByFilter(ctx, models.ShipFilter{}, "speed ASC", 0, 0)
		require.NoError(t, err)
		require.Len(t, ships, 3)
		for i := 1; i < len(ships); i++ {
			assert.LessOrEqual(t, ships[i-1].Speed, ships[i].Speed)
		}
	})
}

func TestShipRepository_Pagination(t *testing.T) {
	repo, tdb := setupShipRepo(t)
	ctx := context.Background()

	kosmotesting.CreateTestFleet(t, tdb.DB, 7)

	t.Run("pages are disjoint and exhaustive", func(t *testing.T) {
		seen := make(map[uint]bool)
		pageSize := 3
		for page := 0; ; page++ {
			ships, err := repo.ByFilter(ctx, models.ShipFilter{}, "id ASC", pageSize, page*pageSize)
			require.NoError(t, err)
			if len(ships) == 0 {
				break
			}
			for _, ship := range ships {
				assert.False(t, seen[ship.ID])
				seen[ship.ID] = true
			}
		}
		assert.Len(t, seen, 7)
	})

	t.Run("count matches the filtered list", func(t *testing.T) {
		filter := models.ShipFilter{IsUsed: utils.ToPtr(true)}

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)

		ships, err := repo.ByFilter(ctx, filter, "id ASC", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, count, int64(len(ships)))
	})

	t.Run("count ignores pagination", func(t *testing.T) {
		count, err := repo.Count(ctx, models.ShipFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}

func TestShipRepository_UpdateFields(t *testing.T) {
	repo, tdb := setupShipRepo(t)
	ctx := context.Background()

	ship := kosmotesting.CreateTestShip(t, tdb.DB, kosmotesting.WithName("Original"))

	t.Run("writes only given columns", func(t *testing.T) {
		err := repo.UpdateFields(ctx, ship.ID, map[string]any{
			"name":  "Renamed",
			"speed": 0.77,
		})
		require.NoError(t, err)

		fresh, err := repo.ByID(ctx, ship.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh)
		assert.Equal(t, "Renamed", fresh.Name)
		assert.InDelta(t, 0.77, fresh.Speed, 1e-9)
		assert.Equal(t, ship.Planet, fresh.Planet)
		assert.Equal(t, ship.CrewSize, fresh.CrewSize)
	})

	t.Run("empty field map writes nothing", func(t *testing.T) {
		before, err := repo.ByID(ctx, ship.ID)
		require.NoError(t, err)

		require.NoError(t, repo.UpdateFields(ctx, ship.ID, map[string]any{}))

		after, err := repo.ByID(ctx, ship.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestShipRepository_DeleteByID(t *testing.T) {
	repo, tdb := setupShipRepo(t)
	ctx := context.Background()

	ship := kosmotesting.CreateTestShip(t, tdb.DB)

	require.NoError(t, repo.DeleteByID(ctx, ship.ID))

	found, err := repo.ByID(ctx, ship.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	exists, err := repo.ExistsByID(ctx, ship.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
