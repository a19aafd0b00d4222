package dto

import (
	"slices"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors campo -> mensaje legible. Vacío significa formulario válido.
type FieldErrors map[string]string

// Set registra el primer error de un campo; los siguientes se ignoran.
func (f FieldErrors) Set(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Empty indica que no hubo errores.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Fields nombres de campo con error, ordenados.
func (f FieldErrors) Fields() []string {
	// Equivalente a slices.Sorted(maps.Keys(f)) para Go 1.21 (nil si no hay claves).
	var keys []string
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ValidationErrorResponse respuesta 400 con errores por campo.
type ValidationErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"fields"`
}
