package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sentinel errors. Handlers map each one to a status code; the wrapped detail
// (driver or host message) is logged and never sent to the client.
var (
	ErrConfiguration        = errors.New("servicio no configurado")
	ErrInvalidCredentials   = errors.New("usuario o contraseña incorrectos")
	ErrInvalidSession       = errors.New("sesión inválida o expirada")
	ErrInvalidSlug          = errors.New("el ID solo puede contener letras minúsculas y guiones")
	ErrDuplicateSlug        = errors.New("ya existe una categoría con ese ID")
	ErrNotFound             = errors.New("no encontrado")
	ErrStore                = errors.New("error de base de datos")
	ErrUploadFailed         = errors.New("error al subir la imagen")
	ErrUnsupportedMediaType = errors.New("el archivo debe ser una imagen")
	ErrPayloadTooLarge      = errors.New("la imagen no puede superar los 5MB")
	ErrDeliveryFailed       = errors.New("no se pudo enviar el mensaje")
)

// ValidationError carries one message per offending field, keyed by the JSON
// path of the field (e.g. "products[2].images").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// CategoryInUseError blocks a category delete while products reference it.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("No se puede eliminar. Hay %d producto(s) asociado(s) a esta categoría.", e.Count)
}

func storeErr(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("store failure")
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
