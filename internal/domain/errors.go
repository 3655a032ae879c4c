package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrCSVInvalidHeader = errors.New("cabecera CSV no reconocida")
	ErrCSVNoRows        = errors.New("ninguna fila del CSV pudo importarse")
	ErrNoRecommendation = errors.New("no hay recomendación de precio aplicable")
	ErrLLMUnavailable   = errors.New("servicio de IA no configurado")
)
