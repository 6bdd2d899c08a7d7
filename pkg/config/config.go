package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Labels  LabelsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token del modo edición.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig ubicación del archivo JSON de datos. Por defecto
// Documentos/Almacenes del usuario, o ./Almacenes si no existe (mismo
// criterio que la aplicación de escritorio original).
type StorageConfig struct {
	Dir     string
	Archivo string
}

// LabelsConfig opciones de impresión de etiquetas.
type LabelsConfig struct {
	SalidaDir string // directorio de los etiquetas_<tamaño>.pdf
	QR        bool   // dibujar QR por defecto
	Barras    bool   // dibujar Code128 por defecto
	AbrirPDF  bool   // abrir el PDF con el visor del sistema tras generarlo
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, STORAGE_DIR, LABELS_OUTPUT_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "almacenes-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "almacenes-api"),
		},
		Storage: StorageConfig{
			Dir:     getString(v, "STORAGE_DIR", dirDatosPorDefecto()),
			Archivo: getString(v, "STORAGE_FILE", "almacenes.json"),
		},
		Labels: LabelsConfig{
			SalidaDir: getString(v, "LABELS_OUTPUT_DIR", "."),
			QR:        getBool(v, "LABELS_QR", false),
			Barras:    getBool(v, "LABELS_BARCODE", false),
			AbrirPDF:  getBool(v, "LABELS_OPEN_AFTER", false),
		},
	}

	return cfg, nil
}

// dirDatosPorDefecto replica la ubicación de la aplicación de escritorio:
// Documentos/Almacenes si Documentos existe, si no ./Almacenes.
func dirDatosPorDefecto() string {
	home, err := os.UserHomeDir()
	if err == nil {
		documentos := filepath.Join(home, "Documents")
		if info, err := os.Stat(documentos); err == nil && info.IsDir() {
			return filepath.Join(documentos, "Almacenes")
		}
	}
	return "Almacenes"
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
