package recordstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-dashboard/internal/domain"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/slots"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// fixedClock reloj que siempre devuelve el mismo instante (fuerza el ajuste de UpdatedAt).
func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

// countingStorage cuenta escrituras para verificar que Delete sin cambios no persiste.
type countingStorage struct {
	*slots.MemoryStorage
	mu     sync.Mutex
	writes int
}

func (c *countingStorage) Set(ctx context.Context, key string, data []byte) error {
	c.mu.Lock()
	c.writes++
	c.mu.Unlock()
	return c.MemoryStorage.Set(ctx, key, data)
}

func (c *countingStorage) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

type recorded struct {
	collection, op string
	err            error
}

type fakeRecorder struct {
	mu  sync.Mutex
	ops []recorded
}

func (f *fakeRecorder) StoreOperation(collection, op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, recorded{collection, op, err})
}

func newDraft(name string) entity.ProductDraft {
	brand := "Marca"
	return entity.ProductDraft{
		Name:       name,
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: "1",
		Code:       "789000",
		Stock:      3,
		MinStock:   1,
		Unit:       entity.UnitBox,
		Brand:      &brand,
		Active:     true,
	}
}

func assertSameProduct(t *testing.T, want, got entity.Product) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Description, got.Description)
	assert.True(t, want.Price.Equal(got.Price), "price %s != %s", want.Price, got.Price)
	assert.Equal(t, want.PromotionalPrice.Valid, got.PromotionalPrice.Valid)
	assert.True(t, want.PromotionalPrice.Decimal.Equal(got.PromotionalPrice.Decimal))
	assert.Equal(t, want.CategoryID, got.CategoryID)
	assert.Equal(t, want.Code, got.Code)
	assert.Equal(t, want.Stock, got.Stock)
	assert.Equal(t, want.MinStock, got.MinStock)
	assert.Equal(t, want.Unit, got.Unit)
	assert.Equal(t, want.Brand, got.Brand)
	assert.Equal(t, want.Supplier, got.Supplier)
	assert.Equal(t, want.Image, got.Image)
	assert.Equal(t, want.Active, got.Active)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func findProduct(list []entity.Product, id string) (entity.Product, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAll / siembra
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAll_SlotVacioSiembraYPersiste(t *testing.T) {
	ctx := context.Background()
	mem := slots.NewMemoryStorage()
	store := recordstore.NewProductStore(mem, recordstore.Config{})

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "Leite Integral", list[0].Name)

	data, found, err := mem.Get(ctx, recordstore.ProductsSlot)
	require.NoError(t, err)
	assert.True(t, found, "la siembra debe persistirse")
	assert.Contains(t, string(data), "Pão Francês")

	cats, err := recordstore.NewCategoryStore(mem, recordstore.Config{}).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 8)
}

func TestGetAll_SemillaPanBajoStock(t *testing.T) {
	store := recordstore.NewProductStore(slots.NewMemoryStorage(), recordstore.Config{})
	list, err := store.GetAll(context.Background())
	require.NoError(t, err)

	pan, ok := findProduct(list, "5")
	require.True(t, ok)
	assert.Equal(t, "Pão Francês", pan.Name)
	assert.True(t, pan.IsLowStock())
}

func TestGetAll_SlotCorruptoNoResiembra(t *testing.T) {
	ctx := context.Background()
	mem := slots.NewMemoryStorage()
	require.NoError(t, mem.Set(ctx, recordstore.ProductsSlot, []byte(`[{"id": "1",`)))
	store := recordstore.NewProductStore(mem, recordstore.Config{})

	_, err := store.GetAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptSlot)

	data, _, _ := mem.Get(ctx, recordstore.ProductsSlot)
	assert.Equal(t, `[{"id": "1",`, string(data), "los datos corruptos no se sobrescriben")

	_, err = store.Add(ctx, newDraft("X"))
	assert.ErrorIs(t, err, domain.ErrCorruptSlot)
}

func TestGetAll_Namespace(t *testing.T) {
	ctx := context.Background()
	mem := slots.NewMemoryStorage()
	store := recordstore.NewCategoryStore(mem, recordstore.Config{Namespace: "loja1"})

	_, err := store.GetAll(ctx)
	require.NoError(t, err)

	_, found, _ := mem.Get(ctx, "loja1:categories")
	assert.True(t, found)
	_, found, _ = mem.Get(ctx, recordstore.CategoriesSlot)
	assert.False(t, found)
}

func TestAlmacenamientoNoDisponible_DevuelveSemillaYDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewProductStore(slots.NewUnavailable(zerolog.Nop()), recordstore.Config{})

	added, err := store.Add(ctx, newDraft("Arroz"))
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID, "Add devuelve el registro aunque no se persista")

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)
	_, ok := findProduct(list, added.ID)
	assert.False(t, ok)
}

func TestReset_SobrescribeSlotCorrupto(t *testing.T) {
	ctx := context.Background()
	mem := slots.NewMemoryStorage()
	require.NoError(t, mem.Set(ctx, recordstore.ProductsSlot, []byte(`{roto`)))
	store := recordstore.NewProductStore(mem, recordstore.Config{})

	items, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 8)

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)
	assert.Equal(t, "Leite Integral", list[0].Name)
}

func TestReset_DescartaAltas(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewCategoryStore(slots.NewMemoryStorage(), recordstore.Config{})
	_, err := store.Add(ctx, entity.CategoryDraft{Name: "Pet Shop", Color: "#3B82F6", Icon: "dog"})
	require.NoError(t, err)

	_, err = store.Reset(ctx)
	require.NoError(t, err)
	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_IDNuevoYRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	storage, err := slots.NewFileStorage(fs, "/data")
	require.NoError(t, err)
	store := recordstore.NewProductStore(storage, recordstore.Config{})

	before, err := store.GetAll(ctx)
	require.NoError(t, err)

	added, err := store.Add(ctx, newDraft("Feijão Preto"))
	require.NoError(t, err)
	_, existed := findProduct(before, added.ID)
	assert.False(t, existed, "el ID no debe existir antes del alta")
	assert.Equal(t, added.CreatedAt, added.UpdatedAt)

	// Nueva instancia: fuerza la lectura desde el archivo.
	reopened := recordstore.NewProductStore(storage, recordstore.Config{})
	after, err := reopened.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assertSameProduct(t, added, after[len(after)-1])
}

func TestAdd_ReintentaIDDuplicado(t *testing.T) {
	ctx := context.Background()
	ids := []string{"1", "1", "nuevo"}
	next := 0
	store := recordstore.NewProductStore(slots.NewMemoryStorage(), recordstore.Config{
		NewID: func() string {
			id := ids[next]
			next++
			return id
		},
	})

	added, err := store.Add(ctx, newDraft("Açúcar"))
	require.NoError(t, err)
	assert.Equal(t, "nuevo", added.ID)
}

func TestUpdate_CampoYUpdatedAtCreciente(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewProductStore(slots.NewMemoryStorage(), recordstore.Config{Now: fixedClock()})

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	prev, _ := findProduct(list, "5")

	stock := 20
	updated, err := store.Update(ctx, "5", entity.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Stock)
	assert.True(t, updated.UpdatedAt.After(prev.UpdatedAt), "UpdatedAt debe crecer estrictamente")
	assert.True(t, updated.CreatedAt.Equal(prev.CreatedAt), "CreatedAt es inmutable")
	assert.Equal(t, prev.Name, updated.Name, "campos no enviados se conservan")
	assert.False(t, updated.IsLowStock())

	again, err := store.Update(ctx, "5", entity.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
}

func TestUpdate_LimpiaOpcionales(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewProductStore(slots.NewMemoryStorage(), recordstore.Config{})

	empty := ""
	noPromo := decimal.NullDecimal{}
	updated, err := store.Update(ctx, "2", entity.ProductPatch{
		Description:      &empty,
		PromotionalPrice: &noPromo,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.False(t, updated.OnPromotion())

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	stored, _ := findProduct(list, "2")
	assert.Nil(t, stored.Description)
	assert.False(t, stored.PromotionalPrice.Valid)
}

func TestUpdate_NoEncontrado(t *testing.T) {
	store := recordstore.NewCategoryStore(slots.NewMemoryStorage(), recordstore.Config{})
	name := "X"
	_, err := store.Update(context.Background(), "no-existe", entity.CategoryPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EliminaYNoExistenteNoEscribe(t *testing.T) {
	ctx := context.Background()
	storage := &countingStorage{MemoryStorage: slots.NewMemoryStorage()}
	store := recordstore.NewProductStore(storage, recordstore.Config{})

	ok, err := store.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	_, found := findProduct(list, "3")
	assert.False(t, found)
	assert.Len(t, list, 7)

	writes := storage.Writes()
	ok, err = store.Delete(ctx, "3")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, writes, storage.Writes(), "borrar un ID inexistente no persiste")

	list, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 7)
}

func TestCategoryStore_PermiteBorrarCategoriaReferenciada(t *testing.T) {
	ctx := context.Background()
	mem := slots.NewMemoryStorage()
	products := recordstore.NewProductStore(mem, recordstore.Config{})
	categories := recordstore.NewCategoryStore(mem, recordstore.Config{})

	list, err := products.GetAll(ctx)
	require.NoError(t, err)
	_, referenced := findProduct(list, "1") // Leite Integral -> categoría "2"
	require.True(t, referenced)

	ok, err := categories.Delete(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok, "el almacén no verifica integridad referencial")
}

func TestAdd_ConcurrenteNoPierdeActualizaciones(t *testing.T) {
	ctx := context.Background()
	store := recordstore.NewProductStore(slots.NewMemoryStorage(), recordstore.Config{})
	_, err := store.GetAll(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(ctx, newDraft(fmt.Sprintf("Produto %d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 28)
}

func TestRecorder_RecibeOperaciones(t *testing.T) {
	ctx := context.Background()
	rec := &fakeRecorder{}
	store := recordstore.NewCategoryStore(slots.NewMemoryStorage(), recordstore.Config{Recorder: rec})

	_, err := store.GetAll(ctx)
	require.NoError(t, err)
	_, err = store.Delete(ctx, "zzz")
	require.NoError(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.ops, 3)
	assert.Equal(t, recorded{"categories", recordstore.OpSeed, nil}, rec.ops[0])
	assert.Equal(t, recorded{"categories", recordstore.OpGetAll, nil}, rec.ops[1])
	assert.Equal(t, "delete", rec.ops[2].op)
	assert.ErrorIs(t, rec.ops[2].err, domain.ErrNotFound)
}
