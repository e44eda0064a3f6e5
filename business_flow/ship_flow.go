package businessflow

import (
	"context"

	"github.com/spacefleet/kosmoport/app/dto"
	"github.com/spacefleet/kosmoport/models"
	"github.com/spacefleet/kosmoport/repository"
	"github.com/spacefleet/kosmoport/utils"
)

// ShipFlow defines the ship registry operations.
type ShipFlow interface {
	ListShips(ctx context.Context, req *dto.ListShipsRequest) (*dto.ListShipsResponse, error)
	CountShips(ctx context.Context, req *dto.ListShipsRequest) (*dto.CountShipsResponse, error)
	CreateShip(ctx context.Context, req *dto.CreateShipRequest) (*dto.ShipResponse, error)
	GetShip(ctx context.Context, id int64) (*dto.ShipResponse, error)
	UpdateShip(ctx context.Context, id int64, req *dto.UpdateShipRequest) (*dto.ShipResponse, error)
	DeleteShip(ctx context.Context, id int64) error
}

type ShipFlowImpl struct {
	shipRepo repository.ShipRepository
}

func NewShipFlow(shipRepo repository.ShipRepository) ShipFlow {
	return &ShipFlowImpl{shipRepo: shipRepo}
}

// ListShips returns one page of ships matching the filter, ordered ascending
// by the requested sort field (id when none is given).
func (f *ShipFlowImpl) ListShips(ctx context.Context, req *dto.ListShipsRequest) (*dto.ListShipsResponse, error) {
	filter, err := shipFilterFromRequest(req)
	if err != nil {
		return nil, err
	}

	orderBy, err := shipOrderFromRequest(req)
	if err != nil {
		return nil, err
	}

	pageNumber, pageSize, err := pageFromRequest(req)
	if err != nil {
		return nil, err
	}

	ships, err := f.shipRepo.ByFilter(ctx, filter, orderBy, pageSize, pageNumber*pageSize)
	if err != nil {
		return nil, NewBusinessError("SHIP_LIST_FAILED", "Failed to list ships", err)
	}

	items := make([]dto.ShipResponse, 0, len(ships))
	for _, ship := range ships {
		items = append(items, mapShipToResponse(ship))
	}

	return &dto.ListShipsResponse{Items: items}, nil
}

// CountShips returns the total number of ships matching the filter,
// ignoring pagination.
func (f *ShipFlowImpl) CountShips(ctx context.Context, req *dto.ListShipsRequest) (*dto.CountShipsResponse, error) {
	filter, err := shipFilterFromRequest(req)
	if err != nil {
		return nil, err
	}

	count, err := f.shipRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("SHIP_COUNT_FAILED", "Failed to count ships", err)
	}

	return &dto.CountShipsResponse{Count: count}, nil
}

// CreateShip validates the payload, computes the rating and persists the ship.
// Nothing is written when validation fails.
func (f *ShipFlowImpl) CreateShip(ctx context.Context, req *dto.CreateShipRequest) (*dto.ShipResponse, error) {
	if err := validateCreateShip(req); err != nil {
		return nil, err
	}

	used := utils.IsTrue(req.IsUsed)
	prodDate := utils.EpochMillisToUTC(*req.ProdDate)
	shipType, _ := models.ParseShipType(*req.ShipType)

	ship := &models.Ship{
		Name:     *req.Name,
		Planet:   *req.Planet,
		ShipType: shipType,
		ProdDate: prodDate,
		IsUsed:   &used,
		Speed:    *req.Speed,
		CrewSize: *req.CrewSize,
	}
	ship.Rating = CalculateShipRating(ship.Speed, used, utils.YearOf(prodDate))

	if err := f.shipRepo.Save(ctx, ship); err != nil {
		return nil, NewBusinessError("SHIP_SAVE_FAILED", "Failed to save ship", err)
	}

	fresh, err := f.shipRepo.ByID(ctx, ship.ID)
	if err != nil {
		return nil, NewBusinessError("SHIP_LOOKUP_FAILED", "Failed to look up ship", err)
	}
	if fresh == nil {
		return nil, NewBusinessError("SHIP_NOT_FOUND", "Ship vanished after save", ErrShipNotFound)
	}

	resp := mapShipToResponse(fresh)
	return &resp, nil
}

// GetShip returns one ship by its identifier.
func (f *ShipFlowImpl) GetShip(ctx context.Context, id int64) (*dto.ShipResponse, error) {
	if err := f.validateShipID(ctx, id); err != nil {
		return nil, err
	}

	ship, err := f.shipRepo.ByID(ctx, uint(id))
	if err != nil {
		return nil, NewBusinessError("SHIP_LOOKUP_FAILED", "Failed to look up ship", err)
	}
	if ship == nil {
		return nil, NewBusinessError("SHIP_NOT_FOUND", "Ship not found", ErrShipNotFound)
	}

	resp := mapShipToResponse(ship)
	return &resp, nil
}

// UpdateShip applies a partial update. The existing row is loaded only when a
// rating input (prodDate, isUsed, speed) is present; the rating is then
// recomputed from the merged values and written together with every present
// payload field in one statement. An empty payload writes nothing.
func (f *ShipFlowImpl) UpdateShip(ctx context.Context, id int64, req *dto.UpdateShipRequest) (*dto.ShipResponse, error) {
	if err := f.validateShipID(ctx, id); err != nil {
		return nil, err
	}
	if err := validateUpdateShip(req); err != nil {
		return nil, err
	}

	var rating *float64
	if req != nil && req.TouchesRating() {
		existing, err := f.shipRepo.ByID(ctx, uint(id))
		if err != nil {
			return nil, NewBusinessError("SHIP_LOOKUP_FAILED", "Failed to look up ship", err)
		}
		// A concurrent delete between the exists check and this read leaves
		// the rating untouched; the re-fetch below reports NotFound.
		if existing != nil {
			merged := *existing
			if req.ProdDate != nil {
				merged.ProdDate = utils.EpochMillisToUTC(*req.ProdDate)
			}
			if req.IsUsed != nil {
				merged.IsUsed = req.IsUsed
			}
			if req.Speed != nil {
				merged.Speed = *req.Speed
			}
			rating = utils.ToPtr(CalculateShipRating(merged.Speed, utils.IsTrue(merged.IsUsed), utils.YearOf(merged.ProdDate)))
		}
	}

	fields := make(map[string]any)
	if req != nil {
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Planet != nil {
			fields["planet"] = *req.Planet
		}
		if req.ShipType != nil {
			shipType, _ := models.ParseShipType(*req.ShipType)
			fields["ship_type"] = shipType
		}
		if req.ProdDate != nil {
			fields["prod_date"] = utils.EpochMillisToUTC(*req.ProdDate)
		}
		if req.IsUsed != nil {
			fields["is_used"] = *req.IsUsed
		}
		if req.Speed != nil {
			fields["speed"] = *req.Speed
		}
		if req.CrewSize != nil {
			fields["crew_size"] = *req.CrewSize
		}
	}
	if rating != nil {
		fields["rating"] = *rating
	}

	if err := f.shipRepo.UpdateFields(ctx, uint(id), fields); err != nil {
		return nil, NewBusinessError("SHIP_UPDATE_FAILED", "Failed to update ship", err)
	}

	fresh, err := f.shipRepo.ByID(ctx, uint(id))
	if err != nil {
		return nil, NewBusinessError("SHIP_LOOKUP_FAILED", "Failed to look up ship", err)
	}
	if fresh == nil {
		return nil, NewBusinessError("SHIP_NOT_FOUND", "Ship vanished during update", ErrShipNotFound)
	}

	resp := mapShipToResponse(fresh)
	return &resp, nil
}

// DeleteShip removes a ship by its identifier.
func (f *ShipFlowImpl) DeleteShip(ctx context.Context, id int64) error {
	if err := f.validateShipID(ctx, id); err != nil {
		return err
	}

	if err := f.shipRepo.DeleteByID(ctx, uint(id)); err != nil {
		return NewBusinessError("SHIP_DELETE_FAILED", "Failed to delete ship", err)
	}

	return nil
}

// shipFilterFromRequest translates the request into repository filter criteria.
func shipFilterFromRequest(req *dto.ListShipsRequest) (models.ShipFilter, error) {
	var filter models.ShipFilter
	if req == nil {
		return filter, nil
	}

	filter.Name = req.Name
	filter.Planet = req.Planet
	if req.ShipType != nil {
		shipType, ok := models.ParseShipType(*req.ShipType)
		if !ok {
			return filter, NewBusinessError("SHIP_TYPE_INVALID", "Ship type is not a known type tag", ErrShipTypeInvalid)
		}
		filter.ShipType = &shipType
	}
	if req.After != nil {
		filter.ProdDateAfter = utils.ToPtr(utils.EpochMillisToUTC(*req.After))
	}
	if req.Before != nil {
		filter.ProdDateBefore = utils.ToPtr(utils.EpochMillisToUTC(*req.Before))
	}
	filter.IsUsed = req.IsUsed
	filter.MinSpeed = req.MinSpeed
	filter.MaxSpeed = req.MaxSpeed
	filter.MinCrewSize = req.MinCrewSize
	filter.MaxCrewSize = req.MaxCrewSize
	filter.MinRating = req.MinRating
	filter.MaxRating = req.MaxRating

	return filter, nil
}

// shipOrderFromRequest resolves the sort clause. Sorting is ascending only;
// id keeps pagination deterministic when no field is requested.
func shipOrderFromRequest(req *dto.ListShipsRequest) (string, error) {
	if req == nil || req.Order == nil {
		return "id ASC", nil
	}

	field := models.ShipSortField(*req.Order)
	if !field.Valid() {
		return "", NewBusinessError("SHIP_SORT_INVALID", "Sort field is not supported", ErrSortFieldInvalid)
	}

	return field.Column() + " ASC", nil
}

// pageFromRequest normalizes missing pagination to the defaults (page 0, size 3).
func pageFromRequest(req *dto.ListShipsRequest) (int, int, error) {
	pageNumber := utils.DefaultPageNumber
	pageSize := utils.DefaultPageSize

	if req != nil && req.PageNumber != nil {
		pageNumber = *req.PageNumber
	}
	if req != nil && req.PageSize != nil {
		pageSize = *req.PageSize
	}

	if pageNumber < 0 {
		return 0, 0, NewBusinessError("SHIP_PAGE_INVALID", "Page number must not be negative", ErrInvalidPage)
	}
	if pageSize <= 0 {
		return 0, 0, NewBusinessError("SHIP_PAGE_SIZE_INVALID", "Page size must be positive", ErrInvalidPageSize)
	}

	return pageNumber, pageSize, nil
}

func mapShipToResponse(ship *models.Ship) dto.ShipResponse {
	return dto.ShipResponse{
		ID:       ship.ID,
		Name:     ship.Name,
		Planet:   ship.Planet,
		ShipType: ship.ShipType.String(),
		ProdDate: ship.ProdDate.UnixMilli(),
		IsUsed:   utils.IsTrue(ship.IsUsed),
		Speed:    ship.Speed,
		CrewSize: ship.CrewSize,
		Rating:   ship.Rating,
	}
}
