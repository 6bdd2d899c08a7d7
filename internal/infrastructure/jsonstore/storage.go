// Package jsonstore implementa el puerto repository.AlmacenRepository sobre un
// único documento JSON:
//
//	{ "config": { "pin": "1234" }, "almacenes": [ ... ] }
//
// Compatibilidad hacia atrás: si el archivo contiene el formato antiguo (un
// array JSON de almacenes a pelo), se detecta por el primer byte no blanco '['
// y se migra en memoria con el PIN por defecto; el formato nuevo no se escribe
// hasta el siguiente guardado.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// PinPorDefecto se usa cuando el archivo no existe, no trae config o el PIN
// está en blanco.
const PinPorDefecto = "1234"

type configuracion struct {
	Pin string `json:"pin"`
}

type envoltorio struct {
	Config    *configuracion    `json:"config"`
	Almacenes []*entity.Almacen `json:"almacenes"`
}

// Storage persiste el bosque de almacenes en un archivo JSON. Sin bloqueo de
// archivo: última escritura gana, archivo completo en cada guardado.
type Storage struct {
	ruta string
}

// New construye el almacenamiento sobre dir/archivo, creando el directorio si
// no existe.
func New(dir, archivo string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio %s: %w", dir, err)
	}
	return &Storage{ruta: filepath.Join(dir, archivo)}, nil
}

// Ruta devuelve la ruta del archivo de datos.
func (s *Storage) Ruta() string { return s.ruta }

// LoadAlmacenes carga el bosque completo. Archivo ausente o vacío devuelve
// una lista vacía.
func (s *Storage) LoadAlmacenes() ([]*entity.Almacen, error) {
	w, err := s.cargarEnvoltorio()
	if err != nil {
		return nil, err
	}
	if w == nil || w.Almacenes == nil {
		return []*entity.Almacen{}, nil
	}
	return w.Almacenes, nil
}

// SaveAlmacenes sobreescribe el bosque preservando el PIN existente.
func (s *Storage) SaveAlmacenes(almacenes []*entity.Almacen) error {
	pin := PinPorDefecto
	if w, err := s.cargarEnvoltorio(); err == nil && w != nil && w.Config != nil && strings.TrimSpace(w.Config.Pin) != "" {
		pin = w.Config.Pin
	}
	return s.escribir(&envoltorio{
		Config:    &configuracion{Pin: pin},
		Almacenes: almacenes,
	})
}

// LoadPin devuelve el PIN configurado, o el PIN por defecto si falta o está
// en blanco.
func (s *Storage) LoadPin() (string, error) {
	w, err := s.cargarEnvoltorio()
	if err != nil {
		return "", err
	}
	if w != nil && w.Config != nil && strings.TrimSpace(w.Config.Pin) != "" {
		return w.Config.Pin, nil
	}
	return PinPorDefecto, nil
}

// SavePin guarda el PIN preservando los almacenes existentes.
func (s *Storage) SavePin(pin string) error {
	actuales, err := s.LoadAlmacenes()
	if err != nil {
		return err
	}
	return s.escribir(&envoltorio{
		Config:    &configuracion{Pin: pin},
		Almacenes: actuales,
	})
}

func (s *Storage) cargarEnvoltorio() (*envoltorio, error) {
	data, err := os.ReadFile(s.ruta)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("jsonstore: leer %s: %w", s.ruta, err)
	}
	recortado := strings.TrimSpace(string(data))
	if recortado == "" {
		return nil, nil
	}

	// Formato antiguo: array de almacenes sin envoltorio. Migración en
	// memoria con PIN por defecto.
	if recortado[0] == '[' {
		var almacenes []*entity.Almacen
		if err := json.Unmarshal([]byte(recortado), &almacenes); err != nil {
			return nil, fmt.Errorf("jsonstore: formato antiguo inválido: %w", err)
		}
		return &envoltorio{
			Config:    &configuracion{Pin: PinPorDefecto},
			Almacenes: almacenes,
		}, nil
	}

	var w envoltorio
	if err := json.Unmarshal([]byte(recortado), &w); err != nil {
		return nil, fmt.Errorf("jsonstore: decodificar %s: %w", s.ruta, err)
	}
	return &w, nil
}

func (s *Storage) escribir(w *envoltorio) error {
	if w.Almacenes == nil {
		w.Almacenes = []*entity.Almacen{}
	}
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar: %w", err)
	}
	if err := os.WriteFile(s.ruta, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", s.ruta, err)
	}
	return nil
}
