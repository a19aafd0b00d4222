// Package recordstore implementa el Record Store: cada colección (productos, categorías)
// se guarda completa como un arreglo JSON en un slot de un repository.SlotStorage.
//
// Cada mutación hace lectura-modificación-escritura de la colección entera. El mutex por
// colección evita actualizaciones perdidas dentro del proceso; escritores en procesos
// distintos sobre el mismo backend siguen pudiendo pisarse.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/supermercado-dashboard/internal/domain"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

// Nombres de los slots persistidos.
const (
	ProductsSlot   = "products"
	CategoriesSlot = "categories"
)

// Operaciones reportadas al Recorder.
const (
	OpGetAll = "get_all"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpSeed   = "seed"
)

// Recorder recibe una notificación por operación (métricas).
type Recorder interface {
	StoreOperation(collection, operation string, err error)
}

// Config opciones comunes a ambos almacenes.
type Config struct {
	Namespace string           // prefijo opcional de las claves: "<ns>:products"
	Now       func() time.Time // reloj; time.Now por defecto
	NewID     func() string    // generador de IDs; uuid por defecto
	Logger    *zerolog.Logger
	Recorder  Recorder
}

// SlotKey compone la clave del slot con el namespace.
func SlotKey(namespace, slot string) string {
	if namespace == "" {
		return slot
	}
	return namespace + ":" + slot
}

type record interface {
	RecordID() string
}

// collection encapsula la lectura/escritura de un slot con registros de tipo T.
type collection[T record] struct {
	mu       sync.Mutex
	name     string
	key      string
	storage  repository.SlotStorage
	seed     func(now time.Time) []T
	now      func() time.Time
	newID    func() string
	log      zerolog.Logger
	recorder Recorder
}

func newCollection[T record](name string, storage repository.SlotStorage, cfg Config, seed func(time.Time) []T) *collection[T] {
	c := &collection[T]{
		name:     name,
		key:      SlotKey(cfg.Namespace, name),
		storage:  storage,
		seed:     seed,
		now:      cfg.Now,
		newID:    cfg.NewID,
		log:      zerolog.Nop(),
		recorder: cfg.Recorder,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = func() string { return uuid.New().String() }
	}
	if cfg.Logger != nil {
		c.log = cfg.Logger.With().Str("slot", c.key).Logger()
	}
	return c
}

// stamp devuelve la hora actual en UTC sin lectura monotónica (estable tras JSON).
func (c *collection[T]) stamp() time.Time {
	return c.now().UTC().Round(0)
}

// nextUpdate garantiza UpdatedAt estrictamente creciente aun con relojes de baja resolución.
func (c *collection[T]) nextUpdate(prev time.Time) time.Time {
	now := c.stamp()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

func (c *collection[T]) getAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	c.observe(OpGetAll, err)
	return items, err
}

// load lee el slot. Slot ausente: se siembra y persiste la colección por defecto.
// Slot ilegible: se devuelve domain.ErrCorruptSlot sin resembrar.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	data, found, err := c.storage.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("leer slot %s: %w", c.key, err)
	}
	if !found || len(data) == 0 {
		items := c.seed(c.stamp())
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		c.observe(OpSeed, nil)
		c.log.Info().Int("records", len(items)).Msg("slot vacío, datos por defecto sembrados")
		return items, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error().Err(err).Msg("slot corrupto, no se resiembra")
		return nil, fmt.Errorf("%w: slot %s: %v", domain.ErrCorruptSlot, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar slot %s: %w", c.key, err)
	}
	if err := c.storage.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("escribir slot %s: %w", c.key, err)
	}
	return nil
}

// add construye el registro con un ID nuevo (no presente en la colección) y lo agrega al final.
func (c *collection[T]) add(ctx context.Context, build func(id string, now time.Time) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		c.observe(OpAdd, err)
		return zero, err
	}
	id := c.newID()
	for indexOf(items, id) >= 0 {
		id = c.newID()
	}
	rec := build(id, c.stamp())
	items = append(items, rec)
	if err := c.save(ctx, items); err != nil {
		c.observe(OpAdd, err)
		return zero, err
	}
	c.observe(OpAdd, nil)
	return rec, nil
}

// update aplica mutate sobre el registro id. domain.ErrNotFound si no existe.
func (c *collection[T]) update(ctx context.Context, id string, mutate func(rec *T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		c.observe(OpUpdate, err)
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		c.observe(OpUpdate, domain.ErrNotFound)
		return zero, domain.ErrNotFound
	}
	mutate(&items[i])
	if err := c.save(ctx, items); err != nil {
		c.observe(OpUpdate, err)
		return zero, err
	}
	c.observe(OpUpdate, nil)
	return items[i], nil
}

// remove elimina el registro id. Solo persiste si hubo cambio.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	if err != nil {
		c.observe(OpDelete, err)
		return false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		c.observe(OpDelete, domain.ErrNotFound)
		return false, nil
	}
	filtered := make([]T, 0, len(items)-1)
	filtered = append(filtered, items[:i]...)
	filtered = append(filtered, items[i+1:]...)
	if err := c.save(ctx, filtered); err != nil {
		c.observe(OpDelete, err)
		return false, err
	}
	c.observe(OpDelete, nil)
	return true, nil
}

// reset reemplaza el contenido del slot por la colección por defecto, aun si está corrupto.
func (c *collection[T]) reset(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.seed(c.stamp())
	err := c.save(ctx, items)
	c.observe(OpSeed, err)
	if err != nil {
		return nil, err
	}
	c.log.Warn().Int("records", len(items)).Msg("slot restablecido a los datos por defecto")
	return items, nil
}

func (c *collection[T]) observe(op string, err error) {
	if c.recorder == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	c.recorder.StoreOperation(c.name, op, err)
}

func indexOf[T record](items []T, id string) int {
	for i := range items {
		if items[i].RecordID() == id {
			return i
		}
	}
	return -1
}
