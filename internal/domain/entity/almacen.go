package entity

import "strings"

// Almacen es la raíz de la jerarquía física de almacenamiento:
// almacén → pasillo → estantería → altura → posición.
// Su identidad es el nombre, comparado sin distinguir mayúsculas.
type Almacen struct {
	Nombre   string              `json:"nombre"`
	Pasillos Coleccion[*Pasillo] `json:"pasillos"`
}

// NuevoAlmacen construye un almacén vacío.
func NuevoAlmacen(nombre string) *Almacen {
	return &Almacen{Nombre: nombre}
}

// MismoNombre compara el nombre sin distinguir mayúsculas.
func (a *Almacen) MismoNombre(nombre string) bool {
	return strings.EqualFold(a.Nombre, nombre)
}
