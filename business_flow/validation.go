package businessflow

import (
	"context"
	"unicode/utf8"

	"github.com/spacefleet/kosmoport/app/dto"
	"github.com/spacefleet/kosmoport/models"
	"github.com/spacefleet/kosmoport/utils"
)

// validateCreateShip checks that every mandatory create field is present,
// then runs the shared per-field range checks.
func validateCreateShip(req *dto.CreateShipRequest) error {
	if req == nil {
		return NewBusinessError("SHIP_CREATE_BODY_REQUIRED", "Request body is required", ErrShipNameRequired)
	}
	if req.Name == nil || *req.Name == "" {
		return NewBusinessError("SHIP_NAME_REQUIRED", "Ship name is required", ErrShipNameRequired)
	}
	if req.Planet == nil || *req.Planet == "" {
		return NewBusinessError("SHIP_PLANET_REQUIRED", "Ship planet is required", ErrShipPlanetRequired)
	}
	if req.ShipType == nil {
		return NewBusinessError("SHIP_TYPE_REQUIRED", "Ship type is required", ErrShipTypeRequired)
	}
	if req.ProdDate == nil || *req.ProdDate < 0 {
		return NewBusinessError("SHIP_PROD_DATE_REQUIRED", "Ship production date is required", ErrShipProdDateRequired)
	}
	if req.Speed == nil {
		return NewBusinessError("SHIP_SPEED_REQUIRED", "Ship speed is required", ErrShipSpeedRequired)
	}
	if req.CrewSize == nil {
		return NewBusinessError("SHIP_CREW_SIZE_REQUIRED", "Ship crew size is required", ErrShipCrewSizeRequired)
	}

	return validateShipFields(req.Name, req.Planet, req.ShipType, req.ProdDate, req.Speed, req.CrewSize)
}

// validateUpdateShip runs the shared per-field range checks; every field is
// optional and absent fields are not checked.
func validateUpdateShip(req *dto.UpdateShipRequest) error {
	if req == nil {
		return nil
	}
	return validateShipFields(req.Name, req.Planet, req.ShipType, req.ProdDate, req.Speed, req.CrewSize)
}

// validateShipFields applies each constraint only when the field is present.
// A nil prodDate never reaches the year-range check.
func validateShipFields(name, planet, shipType *string, prodDate *int64, speed *float64, crewSize *int) error {
	if name != nil && (*name == "" || utf8.RuneCountInString(*name) > utils.MaxNameLength) {
		return NewBusinessError("SHIP_NAME_INVALID", "Ship name length is out of range", ErrShipNameInvalid)
	}
	if planet != nil && (*planet == "" || utf8.RuneCountInString(*planet) > utils.MaxNameLength) {
		return NewBusinessError("SHIP_PLANET_INVALID", "Ship planet length is out of range", ErrShipPlanetInvalid)
	}
	if shipType != nil {
		if _, ok := models.ParseShipType(*shipType); !ok {
			return NewBusinessError("SHIP_TYPE_INVALID", "Ship type is not a known type tag", ErrShipTypeInvalid)
		}
	}
	if prodDate != nil {
		year := utils.YearOf(utils.EpochMillisToUTC(*prodDate))
		if year < utils.MinProdYear || year > utils.MaxProdYear {
			return NewBusinessError("SHIP_PROD_YEAR_INVALID", "Production year is out of range", ErrProdYearOutOfRange)
		}
	}
	if speed != nil && (*speed < utils.MinSpeed || *speed > utils.MaxSpeed) {
		return NewBusinessError("SHIP_SPEED_INVALID", "Speed is out of range", ErrSpeedOutOfRange)
	}
	if crewSize != nil && (*crewSize < utils.MinCrewSize || *crewSize > utils.MaxCrewSize) {
		return NewBusinessError("SHIP_CREW_SIZE_INVALID", "Crew size is out of range", ErrCrewSizeOutOfRange)
	}

	return nil
}

// validateShipID checks the identifier format and that it references an
// existing ship.
func (f *ShipFlowImpl) validateShipID(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewBusinessError("SHIP_ID_INVALID", "Ship id must be a positive integer", ErrInvalidShipID)
	}

	exists, err := f.shipRepo.ExistsByID(ctx, uint(id))
	if err != nil {
		return NewBusinessError("SHIP_LOOKUP_FAILED", "Failed to look up ship", err)
	}
	if !exists {
		return NewBusinessError("SHIP_NOT_FOUND", "Ship not found", ErrShipNotFound)
	}

	return nil
}
