package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"travelbooking-service/internal/domain/entity"
)

const orderDateLayout = "2006-01-02"

// writeError maps the domain error taxonomy onto HTTP statuses. Field
// violations and missing references are client errors, natural-key
// collisions are conflicts, and anything unexpected is reported opaquely.
func writeError(c *fiber.Ctx, err error) error {
	var verrs entity.ValidationErrors
	var uerr *entity.UniqueConstraintError
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"reasons": verrs.Fields(),
		})
	case errors.As(err, &uerr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "Details supplied in request body conflict with another record",
			"reasons": map[string]string{uerr.Field: uerr.Message},
		})
	case errors.Is(err, entity.ErrCustomerNotFound) || errors.Is(err, entity.ErrFlightNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, entity.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "record not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "an unexpected error occurred whilst processing the request",
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseOrderDate(value string) (time.Time, error) {
	return time.Parse(orderDateLayout, value)
}

func parseUintQuery(value string) (uint, error) {
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// intersect keeps the records of a whose id also appears in b, preserving
// the order of a. Two-filter searches are the intersection of two
// independently fetched lists, not a combined query predicate.
func intersect[T any](a, b []T, id func(*T) uint) []T {
	seen := make(map[uint]struct{}, len(b))
	for i := range b {
		seen[id(&b[i])] = struct{}{}
	}
	out := make([]T, 0, len(a))
	for i := range a {
		if _, ok := seen[id(&a[i])]; ok {
			out = append(out, a[i])
		}
	}
	return out
}
