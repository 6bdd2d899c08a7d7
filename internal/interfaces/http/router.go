package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/auth"
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	JerarquiaUC *usecase.JerarquiaUseCase
	ImprimirUC  *labels.ImprimirUseCase
	ReporteUC   *labels.ReporteUseCase
	AuthUC      *auth.AuthUseCase
	Opciones    labels.OpcionesRender
	JWTSecret   string
}

// Router registra las rutas de la API. Consultas, impresión y reporte son
// públicas; las mutaciones y el cambio de PIN requieren el token del modo
// edición.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protegido := AuthMiddleware(deps.JWTSecret)

	// Auth: entrar es público, cambiar el PIN exige sesión de edición vigente
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/pin", authHandler.Entrar)
	api.Put("/auth/pin", protegido, authHandler.CambiarPin)

	// Etiquetas y reporte (público: imprimir no es editar)
	etiquetasHandler := NewEtiquetasHandler(deps.JerarquiaUC, deps.ImprimirUC, deps.ReporteUC, deps.Opciones)
	api.Post("/etiquetas/imprimir", etiquetasHandler.Imprimir)
	api.Get("/almacenes/:nombre/reporte", etiquetasHandler.Reporte)

	// Almacenes
	almacenHandler := NewAlmacenHandler(deps.JerarquiaUC)
	api.Get("/almacenes", almacenHandler.List)
	api.Post("/almacenes", protegido, almacenHandler.Create)
	api.Put("/almacenes/:nombre", protegido, almacenHandler.Update)
	api.Delete("/almacenes", protegido, almacenHandler.Delete)

	// Niveles anidados
	nivelesHandler := NewNivelesHandler(deps.JerarquiaUC)

	pasillos := "/almacenes/:almacen/pasillos"
	api.Get(pasillos, nivelesHandler.ListPasillos)
	api.Post(pasillos, protegido, nivelesHandler.CreatePasillo)
	api.Post(pasillos+"/rango", protegido, nivelesHandler.CreatePasillosRango)
	api.Put(pasillos+"/:pasillo", protegido, nivelesHandler.UpdatePasillo)
	api.Delete(pasillos, protegido, nivelesHandler.DeletePasillos)

	estanterias := pasillos + "/:pasillo/estanterias"
	api.Get(estanterias, nivelesHandler.ListEstanterias)
	api.Post(estanterias, protegido, nivelesHandler.CreateEstanteria)
	api.Post(estanterias+"/rango", protegido, nivelesHandler.CreateEstanteriasRango)
	api.Put(estanterias+"/:estanteria", protegido, nivelesHandler.UpdateEstanteria)
	api.Delete(estanterias, protegido, nivelesHandler.DeleteEstanterias)

	alturas := estanterias + "/:estanteria/alturas"
	api.Get(alturas, nivelesHandler.ListAlturas)
	api.Post(alturas, protegido, nivelesHandler.CreateAltura)
	api.Post(alturas+"/rango", protegido, nivelesHandler.CreateAlturasRango)
	api.Put(alturas+"/:altura", protegido, nivelesHandler.UpdateAltura)
	api.Delete(alturas, protegido, nivelesHandler.DeleteAlturas)

	posiciones := alturas + "/:altura/posiciones"
	api.Get(posiciones, nivelesHandler.ListPosiciones)
	api.Post(posiciones, protegido, nivelesHandler.CreatePosicion)
	api.Post(posiciones+"/rango", protegido, nivelesHandler.CreatePosicionesRango)
	api.Put(posiciones+"/:posicion", protegido, nivelesHandler.UpdatePosicion)
	api.Delete(posiciones, protegido, nivelesHandler.DeletePosiciones)
}
