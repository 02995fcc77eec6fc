package usecase

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"travelbooking-service/internal/domain/entity"
)

var (
	namePattern         = regexp.MustCompile(`^[A-Za-z-']+$`)
	phonePattern        = regexp.MustCompile(`^0?[0-9]{10}$`)
	flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{5}$`)
	airportCodePattern  = regexp.MustCompile(`^[A-Z]{3}$`)
)

// NewValidate builds the shared field validator with the domain rules
// registered. Violation reports name fields after their json tags.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ukphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("flightnumber", func(fl validator.FieldLevel) bool {
		return flightNumberPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("airportcode", func(fl validator.FieldLevel) bool {
		return airportCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		// Order dates are held at day granularity, so strictly in the
		// future means tomorrow or later.
		return entity.DateOf(t).After(entity.DateOf(time.Now()))
	})
	return v
}

// checkFields runs every declarative field constraint on the candidate and
// collects the full set of violations; it never stops at the first failure.
func checkFields(v *validator.Validate, candidate interface{}, messages map[string]string) entity.ValidationErrors {
	err := v.Struct(candidate)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return entity.ValidationErrors{{Field: "body", Message: "is not a valid request body"}}
	}
	out := make(entity.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg := messages[fe.Field()]
		if fe.Tag() == "required" {
			msg = "must not be null"
		} else if msg == "" {
			msg = "is invalid"
		}
		out = append(out, entity.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// translateDuplicate converts the store's unique-index rejection into the
// same conflict error the pre-check produces. The pre-check is best effort;
// the index is the authority when two writers race.
func translateDuplicate(err error, field, message string) error {
	if errors.Is(err, entity.ErrDuplicateKey) {
		return &entity.UniqueConstraintError{Field: field, Message: message}
	}
	return err
}
