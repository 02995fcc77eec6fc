package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/usecase"
	"travelbooking-service/pkg/logger"
)

// CustomerHandler exposes the customer service over REST
type CustomerHandler struct {
	service *usecase.CustomerService
	logger  logger.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service *usecase.CustomerService, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes mounts the customer endpoints on the router
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("/", h.List)
	customers.Get("/email/:email", h.GetByEmail)
	customers.Get("/:id<int>", h.GetByID)
	customers.Post("/", h.Create)
	customers.Put("/:id<int>", h.Update)
	customers.Delete("/:id<int>", h.Delete)
}

// List returns all customers, optionally filtered by first and last name.
// With both filters present the result is the intersection of the two
// independently fetched lists.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	firstName := c.Query("firstname")
	lastName := c.Query("lastname")

	var (
		customers []entity.Customer
		err       error
	)
	switch {
	case firstName == "" && lastName == "":
		customers, err = h.service.FindAll(c.Context())
	case lastName == "":
		customers, err = h.service.FindAllByFirstName(c.Context(), firstName)
	case firstName == "":
		customers, err = h.service.FindAllByLastName(c.Context(), lastName)
	default:
		var byLast []entity.Customer
		customers, err = h.service.FindAllByFirstName(c.Context(), firstName)
		if err == nil {
			byLast, err = h.service.FindAllByLastName(c.Context(), lastName)
			customers = intersect(customers, byLast, func(e *entity.Customer) uint { return e.ID })
		}
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customers)
}

// GetByID returns the customer with the given id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid customer id supplied")
	}
	customer, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No customer with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// GetByEmail returns the customer with the given email
func (h *CustomerHandler) GetByEmail(c *fiber.Ctx) error {
	customer, err := h.service.FindByEmail(c.Context(), c.Params("email"))
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No customer with the email was found")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Create adds a new customer
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var customer entity.Customer
	if err := c.BodyParser(&customer); err != nil {
		return badRequest(c, "Invalid customer supplied in request body")
	}
	// The server assigns identity; drop any id sent by the client.
	customer.ID = 0

	created, err := h.service.Create(c.Context(), &customer)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the customer whose id is in the path. The body id must
// match the path id.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid customer id supplied")
	}
	var customer entity.Customer
	if err := c.BodyParser(&customer); err != nil || customer.ID == 0 {
		return badRequest(c, "Invalid customer supplied in request body")
	}
	if customer.ID != id {
		return badRequest(c, "The customer id in the request body must match that of the customer being updated")
	}
	if _, err := h.service.FindByID(c.Context(), id); errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No customer with the id was found")
	} else if err != nil {
		return writeError(c, err)
	}

	updated, err := h.service.Update(c.Context(), &customer)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete removes the customer with the given id along with its bookings
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid customer id supplied")
	}
	customer, err := h.service.FindByID(c.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(c, "No customer with the id was found")
	}
	if err != nil {
		return writeError(c, err)
	}

	deleted, err := h.service.Delete(c.Context(), customer)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(deleted)
}
