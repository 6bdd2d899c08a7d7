package entity

import "encoding/json"

// Numerado es cualquier entidad de la jerarquía identificada por su número
// dentro de su padre directo.
type Numerado interface {
	Num() int
}

// Coleccion mantiene los hijos de un nivel en orden de inserción, con unicidad
// por número resuelta contra un índice número→posición en lugar de recorridos
// lineales. Serializa como un array JSON plano, de modo que el archivo
// persistido conserva el formato original (listas anidadas).
//
// El número puede repetirse entre padres distintos; la unicidad es solo entre
// hermanos.
type Coleccion[T Numerado] struct {
	items  []T
	indice map[int]int
}

// Agregar añade un elemento al final. Devuelve false si ya existe un hermano
// con el mismo número (no muta nada en ese caso).
func (c *Coleccion[T]) Agregar(item T) bool {
	if c.Contiene(item.Num()) {
		return false
	}
	if c.indice == nil {
		c.indice = make(map[int]int)
	}
	c.indice[item.Num()] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// PorNumero busca un elemento por su número.
func (c *Coleccion[T]) PorNumero(numero int) (T, bool) {
	var cero T
	i, ok := c.indice[numero]
	if !ok {
		return cero, false
	}
	return c.items[i], true
}

// Contiene indica si existe un hermano con ese número.
func (c *Coleccion[T]) Contiene(numero int) bool {
	_, ok := c.indice[numero]
	return ok
}

// Eliminar quita el elemento con ese número conservando el orden del resto.
// Devuelve false si no existe.
func (c *Coleccion[T]) Eliminar(numero int) bool {
	i, ok := c.indice[numero]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindexar()
	return true
}

// Renumerar cambia la clave de un elemento aplicando la mutación recibida.
// Con viejo == nuevo es un no-op que devuelve true. Devuelve false si el
// elemento no existe o si el nuevo número colisiona con otro hermano.
func (c *Coleccion[T]) Renumerar(viejo, nuevo int, aplicar func(T)) bool {
	i, ok := c.indice[viejo]
	if !ok {
		return false
	}
	if viejo == nuevo {
		return true
	}
	if c.Contiene(nuevo) {
		return false
	}
	aplicar(c.items[i])
	delete(c.indice, viejo)
	c.indice[nuevo] = i
	return true
}

// Items devuelve una copia del slice interno en orden de inserción.
func (c *Coleccion[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len devuelve el número de hijos.
func (c *Coleccion[T]) Len() int { return len(c.items) }

func (c *Coleccion[T]) reindexar() {
	c.indice = make(map[int]int, len(c.items))
	for i, item := range c.items {
		c.indice[item.Num()] = i
	}
}

// MarshalJSON serializa la colección como array plano (nunca null).
func (c Coleccion[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON reconstruye la colección y su índice desde un array plano.
// Si el archivo trae números repetidos se queda con la primera aparición.
func (c *Coleccion[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = nil
	c.indice = make(map[int]int, len(items))
	for _, item := range items {
		if _, dup := c.indice[item.Num()]; dup {
			continue
		}
		c.indice[item.Num()] = len(c.items)
		c.items = append(c.items, item)
	}
	return nil
}
