package repository

import (
	"context"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// No verifica productos vinculados: esa regla vive en el caso de uso.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
	Add(ctx context.Context, draft entity.CategoryDraft) (entity.Category, error)
	Update(ctx context.Context, id string, patch entity.CategoryPatch) (entity.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}
