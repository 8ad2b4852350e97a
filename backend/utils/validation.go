package utils

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BodyError is returned when a request body cannot be decoded.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// ParamError is returned when a path parameter is malformed.
type ParamError struct {
	Name  string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not a valid id", e.Name, e.Value)
}

// ParseBody decodes a JSON body into out. An empty body leaves out untouched.
func ParseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return &BodyError{Err: err}
	}
	return nil
}

// ParseIDParam reads a UUID path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := c.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ParamError{Name: name, Value: raw}
	}
	return id, nil
}

// ValidateEmail accepts a bare address such as "a@b.example".
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	return nil
}
