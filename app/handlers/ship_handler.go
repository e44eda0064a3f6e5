// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/spacefleet/kosmoport/app/dto"
	businessflow "github.com/spacefleet/kosmoport/business_flow"
	"github.com/spacefleet/kosmoport/utils"
)

// ShipHandlerInterface defines the contract for ship handlers
type ShipHandlerInterface interface {
	ListShips(c fiber.Ctx) error
	CountShips(c fiber.Ctx) error
	CreateShip(c fiber.Ctx) error
	GetShip(c fiber.Ctx) error
	UpdateShip(c fiber.Ctx) error
	DeleteShip(c fiber.Ctx) error
}

// ShipHandler handles ship-related HTTP requests
type ShipHandler struct {
	shipFlow  businessflow.ShipFlow
	validator *validator.Validate
}

// NewShipHandler creates a new ship handler
func NewShipHandler(shipFlow businessflow.ShipFlow) ShipHandlerInterface {
	return &ShipHandler{
		shipFlow:  shipFlow,
		validator: validator.New(),
	}
}

func (h *ShipHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ShipHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListShips returns ships matching the query filters, paginated
// @Summary List Ships
// @Description List ships with optional filters, ascending sort and pagination
// @Tags Ships
// @Produce json
// @Param name query string false "Case-insensitive name contains"
// @Param planet query string false "Case-insensitive planet contains"
// @Param shipType query string false "Exact ship type" Enums(TRANSPORT, MILITARY, MERCHANT)
// @Param after query int false "Production date lower bound (epoch ms)"
// @Param before query int false "Production date upper bound (epoch ms)"
// @Param isUsed query bool false "Usage flag"
// @Param minSpeed query number false "Speed lower bound"
// @Param maxSpeed query number false "Speed upper bound"
// @Param minCrewSize query int false "Crew size lower bound"
// @Param maxCrewSize query int false "Crew size upper bound"
// @Param minRating query number false "Rating lower bound"
// @Param maxRating query number false "Rating upper bound"
// @Param order query string false "Sort field" Enums(ID, SPEED, DATE, RATING)
// @Param pageNumber query int false "Page number (default 0)"
// @Param pageSize query int false "Page size (default 3)"
// @Success 200 {object} dto.APIResponse{data=dto.ListShipsResponse}
// @Failure 400 {object} dto.APIResponse "Invalid filter parameter"
// @Failure 500 {object} dto.APIResponse "List failed"
// @Router /rest/ships [get]
func (h *ShipHandler) ListShips(c fiber.Ctx) error {
	req, err := parseListShipsRequest(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), "VALIDATION_ERROR", nil)
	}

	result, err := h.shipFlow.ListShips(h.createRequestContext(c, "/rest/ships"), req)
	if err != nil {
		return h.flowErrorResponse(c, err, "List ships failed", "SHIP_LIST_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ships retrieved successfully", result)
}

// CountShips returns the total number of ships matching the query filters
// @Summary Count Ships
// @Description Count ships matching the same filters as the list endpoint, without pagination
// @Tags Ships
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountShipsResponse}
// @Failure 400 {object} dto.APIResponse "Invalid filter parameter"
// @Failure 500 {object} dto.APIResponse "Count failed"
// @Router /rest/ships/count [get]
func (h *ShipHandler) CountShips(c fiber.Ctx) error {
	req, err := parseListShipsRequest(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), "VALIDATION_ERROR", nil)
	}

	result, err := h.shipFlow.CountShips(h.createRequestContext(c, "/rest/ships/count"), req)
	if err != nil {
		return h.flowErrorResponse(c, err, "Count ships failed", "SHIP_COUNT_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ship count retrieved successfully", result)
}

// CreateShip registers a new ship
// @Summary Create Ship
// @Description Register a new ship; the rating is computed server-side
// @Tags Ships
// @Accept json
// @Produce json
// @Param request body dto.CreateShipRequest true "Ship data"
// @Success 200 {object} dto.APIResponse{data=dto.ShipResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Create failed"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShip(c fiber.Ctx) error {
	var req dto.CreateShipRequest
	if err := c.Bind().Body(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.shipFlow.CreateShip(h.createRequestContext(c, "/rest/ships"), &req)
	if err != nil {
		return h.flowErrorResponse(c, err, "Ship creation failed", "SHIP_CREATE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ship created successfully", result)
}

// GetShip returns one ship by id
// @Summary Get Ship
// @Tags Ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} dto.APIResponse{data=dto.ShipResponse}
// @Failure 400 {object} dto.APIResponse "Invalid ship id"
// @Failure 404 {object} dto.APIResponse "Ship not found"
// @Failure 500 {object} dto.APIResponse "Lookup failed"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShip(c fiber.Ctx) error {
	id, err := parseShipID(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ship id", "VALIDATION_ERROR", nil)
	}

	result, err := h.shipFlow.GetShip(h.createRequestContext(c, "/rest/ships/:id"), id)
	if err != nil {
		return h.flowErrorResponse(c, err, "Get ship failed", "SHIP_GET_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ship retrieved successfully", result)
}

// UpdateShip applies a partial update to one ship
// @Summary Update Ship
// @Description Update only the provided fields; the rating is recomputed when speed, usage or production date change
// @Tags Ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param request body dto.UpdateShipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ShipResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Ship not found"
// @Failure 500 {object} dto.APIResponse "Update failed"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShip(c fiber.Ctx) error {
	id, err := parseShipID(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ship id", "VALIDATION_ERROR", nil)
	}

	var req dto.UpdateShipRequest
	if err := c.Bind().Body(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.shipFlow.UpdateShip(h.createRequestContext(c, "/rest/ships/:id"), id, &req)
	if err != nil {
		return h.flowErrorResponse(c, err, "Ship update failed", "SHIP_UPDATE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ship updated successfully", result)
}

// DeleteShip removes one ship by id
// @Summary Delete Ship
// @Tags Ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid ship id"
// @Failure 404 {object} dto.APIResponse "Ship not found"
// @Failure 500 {object} dto.APIResponse "Delete failed"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShip(c fiber.Ctx) error {
	id, err := parseShipID(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ship id", "VALIDATION_ERROR", nil)
	}

	if err := h.shipFlow.DeleteShip(h.createRequestContext(c, "/rest/ships/:id"), id); err != nil {
		return h.flowErrorResponse(c, err, "Ship deletion failed", "SHIP_DELETE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ship deleted successfully", nil)
}

// flowErrorResponse maps business errors onto HTTP statuses: not-found to
// 404, validation errors to 400, everything else to 500.
func (h *ShipHandler) flowErrorResponse(c fiber.Ctx, err error, message, errorCode string) error {
	if businessflow.IsShipNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Ship not found", "SHIP_NOT_FOUND", nil)
	}
	if businessflow.IsShipValidationError(err) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), "VALIDATION_ERROR", nil)
	}

	log.Println(message+":", err)
	return h.ErrorResponse(c, fiber.StatusInternalServerError, message, errorCode, nil)
}

// parseShipID reads the id path parameter; any non-integer value is rejected
func parseShipID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// parseListShipsRequest reads the optional filter query parameters
func parseListShipsRequest(c fiber.Ctx) (*dto.ListShipsRequest, error) {
	req := &dto.ListShipsRequest{}

	if v := c.Query("name"); v != "" {
		req.Name = &v
	}
	if v := c.Query("planet"); v != "" {
		req.Planet = &v
	}
	if v := c.Query("shipType"); v != "" {
		req.ShipType = &v
	}
	var err error
	if req.After, err = queryInt64(c, "after"); err != nil {
		return nil, err
	}
	if req.Before, err = queryInt64(c, "before"); err != nil {
		return nil, err
	}
	if req.IsUsed, err = queryBool(c, "isUsed"); err != nil {
		return nil, err
	}
	if req.MinSpeed, err = queryFloat(c, "minSpeed"); err != nil {
		return nil, err
	}
	if req.MaxSpeed, err = queryFloat(c, "maxSpeed"); err != nil {
		return nil, err
	}
	if req.MinCrewSize, err = queryInt(c, "minCrewSize"); err != nil {
		return nil, err
	}
	if req.MaxCrewSize, err = queryInt(c, "maxCrewSize"); err != nil {
		return nil, err
	}
	if req.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return nil, err
	}
	if req.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return nil, err
	}
	if v := c.Query("order"); v != "" {
		req.Order = &v
	}
	if req.PageNumber, err = queryInt(c, "pageNumber"); err != nil {
		return nil, err
	}
	if req.PageSize, err = queryInt(c, "pageSize"); err != nil {
		return nil, err
	}

	return req, nil
}

func queryInt64(c fiber.Ctx, key string) (*int64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &parsed, nil
}

func queryInt(c fiber.Ctx, key string) (*int, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &parsed, nil
}

func queryFloat(c fiber.Ctx, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &parsed, nil
}

func queryBool(c fiber.Ctx, key string) (*bool, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &parsed, nil
}

func (h *ShipHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *ShipHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, requestID)
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
