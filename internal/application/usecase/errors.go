package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/domain"
)

// ValidationError formulario rechazado; envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Entity string
	Fields dto.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s inválido: %s", e.Entity, strings.Join(e.Fields.Fields(), ", "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(entity, field, msg string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: dto.FieldErrors{field: msg}}
}
