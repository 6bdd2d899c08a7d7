package labels

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// ImprimirUseCase valida la petición de impresión, delega el render en el
// backend PDF y escribe el artefacto etiquetas_<tamaño>.pdf. El render se
// ejecuta una sola vez y se confirma una sola vez.
type ImprimirUseCase struct {
	generador EtiquetaPDFGenerator
	salidaDir string
	abrirPDF  bool // abrir el artefacto con la aplicación por defecto del sistema
}

// NewImprimirUseCase construye el caso de uso. salidaDir debe existir o ser
// creable; abrirPDF normalmente queda apagado en despliegues sin escritorio.
func NewImprimirUseCase(generador EtiquetaPDFGenerator, salidaDir string, abrirPDF bool) *ImprimirUseCase {
	return &ImprimirUseCase{generador: generador, salidaDir: salidaDir, abrirPDF: abrirPDF}
}

// ResultadoImpresion resume una impresión completada.
type ResultadoImpresion struct {
	JobID     string
	Archivo   string
	Etiquetas int
	Copias    int
	Paginas   int
	Contenido []byte
}

// Imprimir genera el documento de etiquetas: una página por (etiqueta ×
// copia), en orden etiqueta-luego-copia.
func (uc *ImprimirUseCase) Imprimir(etiquetas []entity.Etiqueta, copias int, tamano entity.TamanoEtiqueta, opts OpcionesRender) (*ResultadoImpresion, error) {
	if copias <= 0 {
		return nil, domain.ErrCopiasInvalidas
	}
	if !tamano.Valido() {
		return nil, domain.ErrTamanoInvalido
	}
	if len(etiquetas) == 0 {
		return nil, domain.ErrSinPosiciones
	}

	jobID := uuid.New().String()

	pdf, err := uc.generador.GenerarPDF(etiquetas, copias, tamano, opts)
	if err != nil {
		log.Error().Err(err).Str("job_id", jobID).Msg("render de etiquetas abortado")
		return nil, fmt.Errorf("imprimir etiquetas: %w", err)
	}

	if err := os.MkdirAll(uc.salidaDir, 0o755); err != nil {
		return nil, fmt.Errorf("imprimir etiquetas: crear directorio de salida: %w", err)
	}
	archivo := filepath.Join(uc.salidaDir, fmt.Sprintf("etiquetas_%s.pdf", tamano))
	if err := os.WriteFile(archivo, pdf.Contenido, 0o644); err != nil {
		log.Error().Err(err).Str("job_id", jobID).Msg("no se pudo escribir el PDF de etiquetas")
		return nil, fmt.Errorf("imprimir etiquetas: escribir %s: %w", archivo, err)
	}

	if uc.abrirPDF {
		abrirConSistema(archivo)
	}

	log.Info().
		Str("job_id", jobID).
		Str("archivo", archivo).
		Str("tamano", string(tamano)).
		Int("etiquetas", len(etiquetas)).
		Int("copias", copias).
		Int("paginas", pdf.Paginas).
		Msg("etiquetas impresas")

	return &ResultadoImpresion{
		JobID:     jobID,
		Archivo:   archivo,
		Etiquetas: len(etiquetas),
		Copias:    copias,
		Paginas:   pdf.Paginas,
		Contenido: pdf.Contenido,
	}, nil
}

// abrirConSistema lanza el visor por defecto del sistema operativo. Un fallo
// aquí no invalida la impresión: solo se registra.
func abrirConSistema(ruta string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", ruta)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", ruta)
	default:
		cmd = exec.Command("xdg-open", ruta)
	}
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Str("archivo", ruta).Msg("no se pudo abrir el PDF")
	}
}
