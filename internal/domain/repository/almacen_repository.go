package repository

import "github.com/openwarehouses/almacenes-api/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia del bosque de almacenes
// y del PIN de edición (DIP). La implementación escribe el archivo completo en
// cada mutación; no hay persistencia parcial.
type AlmacenRepository interface {
	// LoadAlmacenes carga el bosque completo. Archivo ausente o vacío
	// equivale a una lista vacía, no a un error.
	LoadAlmacenes() ([]*entity.Almacen, error)

	// SaveAlmacenes sobreescribe el bosque preservando el PIN existente.
	SaveAlmacenes(almacenes []*entity.Almacen) error

	// LoadPin devuelve el PIN configurado, o "1234" si falta o está en blanco.
	LoadPin() (string, error)

	// SavePin guarda el PIN preservando los almacenes existentes.
	SavePin(pin string) error
}
