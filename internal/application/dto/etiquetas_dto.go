package dto

// ImprimirRequest petición de impresión de etiquetas. Nivel decide qué campos
// de selección aplican:
//
//	almacen    → almacenes (nombres)
//	pasillo    → almacen + numeros
//	estanteria → almacen + pasillo + numeros
//	altura     → almacen + pasillo + estanteria + numeros
//	posicion   → almacen + pasillo + estanteria + altura + numeros
//
// QR y Barras son punteros para distinguir "no enviado" (se aplica el valor
// por defecto de configuración) de un false explícito.
type ImprimirRequest struct {
	Nivel      string   `json:"nivel"`
	Almacen    string   `json:"almacen"`
	Pasillo    int      `json:"pasillo"`
	Estanteria int      `json:"estanteria"`
	Altura     int      `json:"altura"`
	Almacenes  []string `json:"almacenes"`
	Numeros    []int    `json:"numeros"`
	Copias     int      `json:"copias"`
	Tamano     string   `json:"tamano"`
	QR         *bool    `json:"qr"`
	Barras     *bool    `json:"barras"`
}
