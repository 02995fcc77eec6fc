package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/usecase"
	"travelbooking-service/pkg/logger"
)

// FlightHandler exposes the flight service over REST
type FlightHandler struct {
	service *usecase.FlightService
	logger  logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service *usecase.FlightService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes mounts the flight endpoints on the router
func (h *FlightHandler) RegisterRoutes(router fiber.Router) {
	flights := router.Group("/flights")
	flights.Get("/", h.List)
	flights.Get("/flightnumber/:flightnumber", h.GetByFlightNumber)
	flights.Get("/:id<int>", h.GetByID)
	flights.Post("/", h.Create)
	flights.Put("/:id<int>", h.Update)
	flights.Delete("/:id<int>", h.Delete)
}

// List returns all flights, optionally filtered by departure and
// destination. With both filters the result is the intersection of the two
// independently fetched lists.
func (h *FlightHandler) List(c *fiber.Ctx) error {
	departure := c.Query("departure")
	destination := c.Query("destination")

	var (
		flights []entity.Flight
		err     error
	)
	switch {
	case departure == "" && destination == "":
		flights, err = h.service.FindAll(c.Context())
	case destination == "":
		flights, err = h.service.FindAllByDeparture(c.Context(), departure)
	case departure == "":
		flights, err = h.service.FindAllByDestination(c.Context(), destination)
	default:
		var byDestination []entity.Flight
		flights, err = h.service.FindAllByDeparture(c.Context(), departure)
		if err == nil {
			byDestination, err = h.service.FindAllByDestination(c.Context(), destination)
			flights = intersect(flights, byDestination, func(e *entity.Flight) uint { return e.ID })
		}
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(flights)
}

// GetByID returns the flight with the given id
func (h *FlightHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid flight id supplied")
	}
	flight, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No flight with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(flight)
}

// GetByFlightNumber returns the flight with the given flight number
func (h *FlightHandler) GetByFlightNumber(c *fiber.Ctx) error {
	flight, err := h.service.FindByFlightNumber(c.Context(), c.Params("flightnumber"))
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No flight with the flight number was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(flight)
}

// Create adds a new flight
func (h *FlightHandler) Create(c *fiber.Ctx) error {
	var flight entity.Flight
	if err := c.BodyParser(&flight); err != nil {
		return badRequest(c, "Invalid flight supplied in request body")
	}
	flight.ID = 0

	created, err := h.service.Create(c.Context(), &flight)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the flight whose id is in the path
func (h *FlightHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid flight id supplied")
	}
	var flight entity.Flight
	if err := c.BodyParser(&flight); err != nil || flight.ID == 0 {
		return badRequest(c, "Invalid flight supplied in request body")
	}
	if flight.ID != id {
		return badRequest(c, "The flight id in the request body must match that of the flight being updated")
	}
	if _, err := h.service.FindByID(c.Context(), id); errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No flight with the id was found")
	} else if err != nil {
		return writeError(c, err)
	}

	updated, err := h.service.Update(c.Context(), &flight)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete removes the flight with the given id
func (h *FlightHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid flight id supplied")
	}
	flight, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No flight with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}

	deleted, err := h.service.Delete(c.Context(), flight)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(deleted)
}
