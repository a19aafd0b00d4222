package entity

import "time"

// Category agrupa productos en el tablero (color e ícono se eligen de catálogos fijos).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecordID implementa la restricción de registros del almacén.
func (c Category) RecordID() string { return c.ID }

// CategoryDraft datos de una categoría antes de asignar ID y fechas.
type CategoryDraft struct {
	Name        string
	Description *string
	Color       string
	Icon        string
}

// NewCategory construye el registro completo a partir del borrador.
func NewCategory(id string, d CategoryDraft, now time.Time) Category {
	return Category{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CategoryPatch actualización parcial. Description apuntando a "" la elimina.
type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// CategoryPatchFromDraft reemplaza todos los campos editables.
func CategoryPatchFromDraft(d CategoryDraft) CategoryPatch {
	return CategoryPatch{
		Name:        &d.Name,
		Description: clearable(d.Description),
		Color:       &d.Color,
		Icon:        &d.Icon,
	}
}

// Apply fusiona el patch sobre c.
func (pt CategoryPatch) Apply(c *Category) {
	if pt.Name != nil {
		c.Name = *pt.Name
	}
	if pt.Description != nil {
		c.Description = optional(*pt.Description)
	}
	if pt.Color != nil {
		c.Color = *pt.Color
	}
	if pt.Icon != nil {
		c.Icon = *pt.Icon
	}
}
