// Package binding mantiene en memoria una copia versionada de cada colección del Record Store.
// Toda mutación pasa primero por el repositorio y luego se aplica igual en memoria, de modo
// que los observadores ven el nuevo estado sin releer el almacenamiento.
package binding

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

// Record registro identificable.
type Record interface {
	RecordID() string
}

// Repository puerto mínimo que la colección necesita (lo cumplen Product/CategoryRepository).
type Repository[T Record, D any, P any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Snapshot estado publicado a los observadores.
type Snapshot[T Record] struct {
	Version uint64
	Items   []T
}

// Collection copia en memoria de una colección, con versión e invalidación explícita (Reload).
// Los observadores se ejecutan de forma síncrona tras cada cambio y no deben mutar la colección.
type Collection[T Record, D any, P any] struct {
	name string
	repo Repository[T, D, P]
	log  zerolog.Logger

	writeMu sync.Mutex // serializa mutaciones y notificaciones

	mu      sync.RWMutex
	items   []T
	loaded  bool
	version uint64

	obsMu     sync.Mutex
	observers map[int]func(Snapshot[T])
	nextObs   int
}

// ProductCollection colección de productos.
type ProductCollection = Collection[entity.Product, entity.ProductDraft, entity.ProductPatch]

// CategoryCollection colección de categorías.
type CategoryCollection = Collection[entity.Category, entity.CategoryDraft, entity.CategoryPatch]

// New construye una colección sin cargar.
func New[T Record, D any, P any](name string, repo Repository[T, D, P], log zerolog.Logger) *Collection[T, D, P] {
	return &Collection[T, D, P]{
		name:      name,
		repo:      repo,
		log:       log.With().Str("collection", name).Logger(),
		observers: make(map[int]func(Snapshot[T])),
	}
}

// Name nombre de la colección.
func (c *Collection[T, D, P]) Name() string { return c.name }

// Loaded distingue "aún no cargada" de "cargada pero vacía".
func (c *Collection[T, D, P]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Version se incrementa con cada carga o mutación aplicada.
func (c *Collection[T, D, P]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Items copia de los registros en orden de almacenamiento.
func (c *Collection[T, D, P]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Find busca un registro por ID en memoria.
func (c *Collection[T, D, P]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Subscribe registra un observador; devuelve la función para darlo de baja.
func (c *Collection[T, D, P]) Subscribe(fn func(Snapshot[T])) (unsubscribe func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		delete(c.observers, id)
	}
}

// Load carga la colección una sola vez; si ya está cargada no hace nada.
func (c *Collection[T, D, P]) Load(ctx context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ensureLoaded(ctx)
}

// Reload descarta la copia en memoria y relee todo del repositorio.
// Si la lectura falla se conserva el estado anterior.
func (c *Collection[T, D, P]) Reload(ctx context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.fetch(ctx)
}

// Add delega en el repositorio y agrega el registro devuelto al final.
func (c *Collection[T, D, P]) Add(ctx context.Context, draft D) (T, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}
	rec, err := c.repo.Add(ctx, draft)
	if err != nil {
		return zero, err
	}
	c.apply(func(items []T) []T { return append(items, rec) })
	return rec, nil
}

// Update delega en el repositorio y reemplaza el registro en memoria.
// Devuelve el error del repositorio (domain.ErrNotFound) sin tocar la memoria.
func (c *Collection[T, D, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}
	rec, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return zero, err
	}
	c.apply(func(items []T) []T {
		for i := range items {
			if items[i].RecordID() == id {
				items[i] = rec
			}
		}
		return items
	})
	return rec, nil
}

// Delete delega en el repositorio; solo si hubo borrado se quita de memoria.
func (c *Collection[T, D, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return false, err
	}
	ok, err := c.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	c.apply(func(items []T) []T {
		return slices.DeleteFunc(items, func(it T) bool { return it.RecordID() == id })
	})
	return true, nil
}

// ensureLoaded requiere writeMu tomado.
func (c *Collection[T, D, P]) ensureLoaded(ctx context.Context) error {
	if c.Loaded() {
		return nil
	}
	return c.fetch(ctx)
}

// fetch requiere writeMu tomado.
func (c *Collection[T, D, P]) fetch(ctx context.Context) error {
	items, err := c.repo.GetAll(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("no se pudo cargar la colección")
		return fmt.Errorf("cargar %s: %w", c.name, err)
	}
	c.apply(func([]T) []T { return slices.Clone(items) })
	c.log.Debug().Int("records", len(items)).Msg("colección cargada")
	return nil
}

// apply reemplaza el estado (sobre una copia), incrementa la versión y notifica.
// Requiere writeMu tomado.
func (c *Collection[T, D, P]) apply(change func(items []T) []T) {
	c.mu.Lock()
	next := change(slices.Clone(c.items))
	if next == nil {
		next = []T{}
	}
	c.items = next
	c.loaded = true
	c.version++
	snap := Snapshot[T]{Version: c.version, Items: slices.Clone(next)}
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Collection[T, D, P]) notify(snap Snapshot[T]) {
	c.obsMu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.obsMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// NewProducts colección de productos sobre el repositorio.
func NewProducts(repo repository.ProductRepository, log zerolog.Logger) *ProductCollection {
	return New[entity.Product, entity.ProductDraft, entity.ProductPatch]("products", repo, log)
}

// NewCategories colección de categorías sobre el repositorio.
func NewCategories(repo repository.CategoryRepository, log zerolog.Logger) *CategoryCollection {
	return New[entity.Category, entity.CategoryDraft, entity.CategoryPatch]("categories", repo, log)
}
