package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrCategoryInUse      = errors.New("la categoría tiene productos vinculados")
	ErrCorruptSlot        = errors.New("datos almacenados corruptos")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
