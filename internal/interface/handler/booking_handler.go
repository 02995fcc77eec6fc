package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/usecase"
	"travelbooking-service/pkg/logger"
)

// BookingHandler exposes the booking service over REST. Creating a booking
// requires the referenced customer and flight to exist, which is checked
// here before the core is invoked.
type BookingHandler struct {
	service         *usecase.BookingService
	customerService *usecase.CustomerService
	flightService   *usecase.FlightService
	logger          logger.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(
	service *usecase.BookingService,
	customerService *usecase.CustomerService,
	flightService *usecase.FlightService,
	logger logger.Logger,
) *BookingHandler {
	return &BookingHandler{
		service:         service,
		customerService: customerService,
		flightService:   flightService,
		logger:          logger,
	}
}

// RegisterRoutes mounts the booking endpoints on the router
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookings := router.Group("/bookings")
	bookings.Get("/", h.List)
	bookings.Get("/customer/:customerid<int>", h.GetByCustomerID)
	bookings.Get("/:id<int>", h.GetByID)
	bookings.Post("/", h.Create)
	bookings.Put("/:id<int>", h.Update)
	bookings.Delete("/:id<int>", h.Delete)
}

// List returns all bookings, or the intersection of the flight id and order
// date filters. Supplying only one of the two filters is rejected.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	flightID := c.Query("flightid")
	orderDate := c.Query("orderdate")

	if flightID == "" && orderDate == "" {
		bookings, err := h.service.FindAll(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(bookings)
	}
	if flightID == "" || orderDate == "" {
		return badRequest(c, "Both flightid and orderdate must be supplied to filter bookings")
	}

	fid, err := parseUintQuery(flightID)
	if err != nil {
		return badRequest(c, "Invalid flight id supplied")
	}
	date, err := parseOrderDate(orderDate)
	if err != nil {
		return badRequest(c, "Invalid order date supplied, expected YYYY-MM-DD")
	}

	byFlight, err := h.service.FindAllByFlightID(c.Context(), fid)
	if err != nil {
		return writeError(c, err)
	}
	byDate, err := h.service.FindAllByOrderDate(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	bookings := intersect(byFlight, byDate, func(e *entity.Booking) uint { return e.ID })
	return c.JSON(bookings)
}

// GetByID returns the booking with the given id
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid booking id supplied")
	}
	booking, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No booking with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// GetByCustomerID returns the first booking owned by the given customer
func (h *BookingHandler) GetByCustomerID(c *fiber.Ctx) error {
	customerID, err := parseUintQuery(c.Params("customerid"))
	if err != nil {
		return badRequest(c, "Invalid customer id supplied")
	}
	booking, err := h.service.FindByCustomerID(c.Context(), customerID)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No booking for the customer was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(booking)
}

// Create adds a new booking after verifying that the referenced customer
// and flight exist
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var booking entity.Booking
	if err := c.BodyParser(&booking); err != nil {
		return badRequest(c, "Invalid booking supplied in request body")
	}
	booking.ID = 0
	booking.Customer = nil

	if _, err := h.customerService.FindByID(c.Context(), booking.CustomerID); errors.Is(err, entity.ErrNotFound) {
		return badRequest(c, "No customer with the supplied customer id was found")
	} else if err != nil {
		return writeError(c, err)
	}
	if _, err := h.flightService.FindByID(c.Context(), booking.FlightID); errors.Is(err, entity.ErrNotFound) {
		return badRequest(c, "No flight with the supplied flight id was found")
	} else if err != nil {
		return writeError(c, err)
	}

	created, err := h.service.Create(c.Context(), &booking)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the booking whose id is in the path
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid booking id supplied")
	}
	var booking entity.Booking
	if err := c.BodyParser(&booking); err != nil || booking.ID == 0 {
		return badRequest(c, "Invalid booking supplied in request body")
	}
	if booking.ID != id {
		return badRequest(c, "The booking id in the request body must match that of the booking being updated")
	}
	if _, err := h.service.FindByID(c.Context(), id); errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No booking with the id was found")
	} else if err != nil {
		return writeError(c, err)
	}
	booking.Customer = nil

	updated, err := h.service.Update(c.Context(), &booking)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete removes the booking with the given id
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid booking id supplied")
	}
	booking, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No booking with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}

	deleted, err := h.service.Delete(c.Context(), booking)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(deleted)
}
