package advertising

import "errors"

var (
	// ErrAdNotFound cobre tanto anúncio inexistente quanto anúncio de outro
	// dono; os dois casos nunca são distinguidos para o cliente.
	ErrAdNotFound = errors.New("anúncio não encontrado")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidPlatform     = errors.New("plataforma inválida")
	ErrInvalidAudience     = errors.New("público inválido")
	ErrInvalidStatus       = errors.New("status inválido")
)
