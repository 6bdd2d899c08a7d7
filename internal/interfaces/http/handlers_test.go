package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwarehouses/almacenes-api/internal/application/auth"
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
	"github.com/openwarehouses/almacenes-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/openwarehouses/almacenes-api/internal/infrastructure/pdf"
	apphttp "github.com/openwarehouses/almacenes-api/internal/interfaces/http"
)

// buildAPI monta la aplicación completa sobre un almacenamiento temporal: el
// mismo cableado que cmd/api, con los backends PDF reales.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()

	store, err := jsonstore.New(t.TempDir(), "almacenes.json")
	require.NoError(t, err)
	jerarquiaUC, err := usecase.NewJerarquiaUseCase(store)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		JerarquiaUC: jerarquiaUC,
		ImprimirUC:  labels.NewImprimirUseCase(infrapdf.NewGofpdfLabelRenderer(), t.TempDir(), false),
		ReporteUC:   labels.NewReporteUseCase(infrapdf.NewMarotoReportGenerator()),
		AuthUC: auth.NewAuthUseCase(store, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, metodo, ruta, token string, cuerpo any) *http.Response {
	t.Helper()
	var lector io.Reader
	if cuerpo != nil {
		data, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		lector = bytes.NewReader(data)
	}
	req := httptest.NewRequest(metodo, ruta, lector)
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificar[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// entrar obtiene un token con el PIN de migración por defecto.
func entrar(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/pin", "", fiber.Map{"pin": "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode, "el PIN por defecto debe abrir el modo edición")
	return decodificar[map[string]string](t, resp)["token"]
}

// montarJerarquia crea Central → pasillo 2 → estantería 3 → altura 1 →
// posiciones 1..2 a través de la API.
func montarJerarquia(t *testing.T, app *fiber.App, token string) {
	t.Helper()
	pasos := []struct {
		ruta   string
		cuerpo any
	}{
		{"/api/almacenes", fiber.Map{"nombre": "Central"}},
		{"/api/almacenes/Central/pasillos", fiber.Map{"numero": 2}},
		{"/api/almacenes/Central/pasillos/2/estanterias", fiber.Map{"numero": 3}},
		{"/api/almacenes/Central/pasillos/2/estanterias/3/alturas", fiber.Map{"numero": 1}},
	}
	for _, paso := range pasos {
		resp := doJSON(t, app, http.MethodPost, paso.ruta, token, paso.cuerpo)
		require.Equal(t, http.StatusCreated, resp.StatusCode, paso.ruta)
		resp.Body.Close()
	}
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/Central/pasillos/2/estanterias/3/alturas/1/posiciones/rango", token, fiber.Map{"desde": 1, "hasta": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_MutacionSinTokenRetorna401(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes", "", fiber.Map{"nombre": "Central"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_ConsultaEsPublica(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodificar[[]map[string]any](t, resp))
}

func TestAPI_AltaYListadoDeJerarquia(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes/Central/pasillos/2/estanterias/3/alturas/1/posiciones", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posiciones := decodificar[[]map[string]any](t, resp)
	require.Len(t, posiciones, 2)
	assert.Equal(t, "2.3.1.1", posiciones[0]["codigo"])
	assert.Equal(t, "2.3.1.2", posiciones[1]["codigo"])
}

func TestAPI_AlmacenDuplicadoRetorna409(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes", token, fiber.Map{"nombre": "Central"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/almacenes", token, fiber.Map{"nombre": "central"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_RangoDevuelveCreadosYOmitidos(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	// Las posiciones 1 y 2 ya existen; el rango 1..4 solo crea 3 y 4.
	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/Central/pasillos/2/estanterias/3/alturas/1/posiciones/rango", token, fiber.Map{"desde": 1, "hasta": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resumen := decodificar[map[string][]int](t, resp)
	assert.Equal(t, []int{3, 4}, resumen["creados"])
	assert.Equal(t, []int{1, 2}, resumen["omitidos"])
}

func TestAPI_RenumerarPasilloConflicto(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes/Central/pasillos", token, fiber.Map{"numero": 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/almacenes/Central/pasillos/5", token, fiber.Map{"nuevo_numero": 2})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_ImprimirDevuelvePDFConMetadatos(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodPost, "/api/etiquetas/imprimir", "", fiber.Map{
		"nivel":     "almacen",
		"almacenes": []string{"Central"},
		"copias":    2,
		"tamano":    "small",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Job-ID"))
	// 2 posiciones × 2 copias = 4 páginas.
	assert.Equal(t, "4", resp.Header.Get("X-Paginas"))

	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(cuerpo[:4]))
}

func TestAPI_ImprimirSeleccionVaciaRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodPost, "/api/etiquetas/imprimir", "", fiber.Map{
		"nivel":   "pasillo",
		"almacen": "Central",
		"numeros": []int{},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "EMPTY_SELECTION")
}

func TestAPI_ImprimirAlmacenSinPosicionesRetorna404(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/almacenes", token, fiber.Map{"nombre": "Vacío"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/etiquetas/imprimir", "", fiber.Map{
		"nivel":     "almacen",
		"almacenes": []string{"Vacío"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "No se han encontrado posiciones para imprimir.")
}

func TestAPI_ImprimirNivelDesconocidoRetorna400(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/etiquetas/imprimir", "", fiber.Map{"nivel": "galaxia"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ReporteDeAlmacen(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes/Central/reporte", "", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(cuerpo[:4]))
}

func TestAPI_ReporteAlmacenInexistenteRetorna404(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/almacenes/Nada/reporte", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_CambiarPinInvalidaElAnterior(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/auth/pin", token, fiber.Map{"nuevo_pin": "4321"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/pin", "", fiber.Map{"pin": "1234"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/pin", "", fiber.Map{"pin": "4321"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_EliminarPasillosEnLote(t *testing.T) {
	app := buildAPI(t)
	token := entrar(t, app)
	montarJerarquia(t, app, token)

	resp := doJSON(t, app, http.MethodDelete, "/api/almacenes/Central/pasillos", token, fiber.Map{"numeros": []int{2, 99}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[map[string]int](t, resp)
	assert.Equal(t, 1, out["eliminados"])

	resp = doJSON(t, app, http.MethodGet, "/api/almacenes/Central/pasillos", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodificar[[]map[string]any](t, resp))
}
