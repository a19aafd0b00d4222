package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-dashboard/internal/application/auth"
	"github.com/jhoicas/supermercado-dashboard/internal/application/binding"
	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/slots"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/supermercado-dashboard/internal/interfaces/http"
)

// buildApp aplicación completa sobre almacenamiento en memoria con la semilla.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	m := metrics.New("test")
	mem := slots.NewMemoryStorage()
	storeCfg := recordstore.Config{Recorder: m}
	catalog := usecase.NewCatalog(
		binding.NewProducts(recordstore.NewProductStore(mem, storeCfg), zerolog.Nop()),
		binding.NewCategories(recordstore.NewCategoryStore(mem, storeCfg), zerolog.Nop()),
	)
	deps := apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(catalog, m, zerolog.Nop()),
		CategoryUC:  usecase.NewCategoryUseCase(catalog, m, zerolog.Nop()),
		DashboardUC: usecase.NewDashboardUseCase(catalog),
		ReportUC:    usecase.NewReportUseCase(catalog, pdf.NewMarotoPDFGenerator(), spreadsheet.NewExcelExporter()),
		AuthUC:      auth.NewAuthUseCase(auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, 0, zerolog.Nop()),
		JWTSecret:   testJWTSecret,
	}
	return apphttp.NewApp(apphttp.ServerConfig{AppName: "test", Logger: zerolog.Nop(), Metrics: m.Registry()}, deps)
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Health y métricas ─────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp := do(t, buildApp(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_ExponeOperacionesDelAlmacen(t *testing.T) {
	app := buildApp(t)
	do(t, app, http.MethodGet, "/api/products", nil).Body.Close()

	resp := do(t, app, http.MethodGet, "/metrics", nil)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `test_store_operations_total{collection="products",operation="seed",result="ok"} 1`)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func TestListProducts_Filtros(t *testing.T) {
	app := buildApp(t)

	out := decode[dto.ProductListResponse](t, do(t, app, http.MethodGet, "/api/products?status=low_stock", nil))
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Pão Francês", out.Items[0].Name)
	assert.Equal(t, "Padaria", out.Items[0].CategoryName)
	assert.True(t, out.Items[0].LowStock)

	out = decode[dto.ProductListResponse](t, do(t, app, http.MethodGet, "/api/products?status=promocao&sort=price", nil))
	require.Equal(t, 3, out.Total)
	assert.Equal(t, "Banana Prata", out.Items[0].Name)

	out = decode[dto.ProductListResponse](t, do(t, app, http.MethodGet, "/api/products?q=789123456789&category_id=2", nil))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Leite Integral", out.Items[0].Name)

	resp := do(t, app, http.MethodGet, "/api/products?status=agotado", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FILTER", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCreateProduct_ValidoEInvalido(t *testing.T) {
	app := buildApp(t)

	form := dto.ProductForm{
		Name: "Açúcar União 1kg", Price: "4.79", CategoryID: "5", Code: "7891000100103",
		Stock: "12", MinStock: "4",
	}
	resp := do(t, app, http.MethodPost, "/api/products", form)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "un", created.Unit)
	assert.Equal(t, "Unidade", created.UnitLabel)

	resp = do(t, app, http.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	form.PromotionalPrice = "4.79"
	form.Stock = "-1"
	resp = do(t, app, http.MethodPost, "/api/products", form)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verr := decode[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", verr.Code)
	assert.Contains(t, verr.Fields, "promotional_price")
	assert.Contains(t, verr.Fields, "stock")

	resp = do(t, app, http.MethodPost, "/api/products", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductPatchYDelete(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPatch, "/api/products/5/stock", map[string]int{"stock": 20})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.ProductResponse](t, resp).LowStock)

	resp = do(t, app, http.MethodPatch, "/api/products/5/stock", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPatch, "/api/products/8/active", map[string]bool{"active": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ProductResponse](t, resp).Active)

	resp = do(t, app, http.MethodDelete, "/api/products/8", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/products/8", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodGet, "/api/products/8", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ── Categorías ────────────────────────────────────────────────────────────────

func TestDeleteCategory_EnUso409(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodDelete, "/api/categories/5", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CATEGORY_IN_USE", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/categories", dto.CategoryForm{Name: "Pet", Icon: "dog", Color: "#A855F7"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CategoryResponse](t, resp)

	resp = do(t, app, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	list := decode[dto.CategoryListResponse](t, do(t, app, http.MethodGet, "/api/categories", nil))
	assert.Equal(t, 8, list.Total)
}

func TestUpdateCategory(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPut, "/api/categories/3", dto.CategoryForm{Name: "Açougue", Icon: "beef", Color: "#EF4444"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, "Açougue", out.Name)
	assert.Equal(t, 1, out.ProductCount)

	resp = do(t, app, http.MethodPut, "/api/categories/3", dto.CategoryForm{Name: "X", Icon: "rocket"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ValidationErrorResponse](t, resp).Fields, "icon")

	resp = do(t, app, http.MethodGet, "/api/categories/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ── Dashboard, reportes y login ───────────────────────────────────────────────

func TestDashboardSummaryYReload(t *testing.T) {
	app := buildApp(t)

	out := decode[dto.DashboardSummaryDTO](t, do(t, app, http.MethodGet, "/api/dashboard/summary", nil))
	assert.Equal(t, 8, out.Stats.TotalProducts)
	assert.Equal(t, 2, out.Stats.LowStockProducts)
	assert.Len(t, out.Recent, 5)

	resp := do(t, app, http.MethodPost, "/api/reload", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestReports(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodGet, "/api/reports/inventory.pdf?status=active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment"))
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = do(t, app, http.MethodGet, "/api/reports/products.xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/reports/products.xlsx?sort=peso", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: testEmail, Password: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testEmail, out.Email)

	resp = do(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: testEmail})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
