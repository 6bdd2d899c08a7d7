package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
)

// codificarQR genera el PNG en blanco y negro de un QR con el texto dado,
// sin margen interno, de al menos ancho×alto píxeles.
func codificarQR(texto string, ancho, alto int) ([]byte, error) {
	simbolo, err := qr.Encode(texto, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar QR: %w", err)
	}
	return rasterizar(simbolo, ancho, alto)
}

// codificarCode128 genera el PNG en blanco y negro de un código de barras
// lineal Code128 con el texto dado.
func codificarCode128(texto string, ancho, alto int) ([]byte, error) {
	simbolo, err := code128.Encode(texto)
	if err != nil {
		return nil, fmt.Errorf("codificar Code128: %w", err)
	}
	return rasterizar(simbolo, ancho, alto)
}

// rasterizar escala la matriz de módulos al tamaño pedido y la vuelca a un
// PNG binario negro/blanco. Si la matriz intrínseca ya es mayor que el
// destino se conserva su resolución; el rectángulo final lo impone el PDF al
// colocar la imagen.
func rasterizar(simbolo barcode.Barcode, ancho, alto int) ([]byte, error) {
	b := simbolo.Bounds()
	if w := b.Dx(); w > ancho {
		ancho = w
	}
	if h := b.Dy(); h > alto {
		alto = h
	}
	escalado, err := barcode.Scale(simbolo, ancho, alto)
	if err != nil {
		return nil, fmt.Errorf("escalar simbología: %w", err)
	}

	// Umbral duro a 1 bit: módulo activo → negro, resto → blanco.
	limites := escalado.Bounds()
	binaria := image.NewGray(limites)
	for y := limites.Min.Y; y < limites.Max.Y; y++ {
		for x := limites.Min.X; x < limites.Max.X; x++ {
			c := color.GrayModel.Convert(escalado.At(x, y)).(color.Gray)
			if c.Y < 128 {
				binaria.SetGray(x, y, color.Gray{Y: 0})
			} else {
				binaria.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, binaria); err != nil {
		return nil, fmt.Errorf("codificar PNG de simbología: %w", err)
	}
	return buf.Bytes(), nil
}
