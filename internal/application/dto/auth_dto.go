package dto

// PinRequest intercambio de PIN por token del modo edición.
type PinRequest struct {
	Pin string `json:"pin"`
}

// TokenResponse token emitido tras validar el PIN.
type TokenResponse struct {
	Token string `json:"token"`
}

// CambiarPinRequest cambio del PIN de edición.
type CambiarPinRequest struct {
	NuevoPin string `json:"nuevo_pin"`
}
