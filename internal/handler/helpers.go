package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/apierror"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

// bindJSON binds the body without running validation; used where the service
// owns the rules (categories, products, contact).
// Returns false and writes the error response if the body is not valid JSON.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido"))
		return false
	}
	return true
}

// bindAndValidate binds JSON body and runs the validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if !bindJSON(c, req) {
		return false
	}
	if fields := dto.Validate(req); fields != nil {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// handleError maps service errors onto status codes. Messages for downstream
// failures are generic; the wrapped detail was already logged by the service.
func handleError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var inUse *service.CategoryInUseError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apierror.NewValidation(verr.Fields))
	case errors.As(err, &inUse):
		c.JSON(http.StatusConflict, apierror.NewCategoryInUse(inUse.Error(), inUse.Count))
	case errors.Is(err, service.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, apierror.New("El ID solo puede contener letras minúsculas y guiones"))
	case errors.Is(err, service.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, apierror.New("Ya existe una categoría con ese ID"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("Usuario o contraseña incorrectos"))
	case errors.Is(err, service.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, apierror.New("No autorizado"))
	case errors.Is(err, service.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, apierror.New("El archivo debe ser una imagen"))
	case errors.Is(err, service.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("La imagen no puede superar los 5MB"))
	case errors.Is(err, service.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, apierror.New("Error al procesar la imagen"))
	case errors.Is(err, service.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, apierror.New("No se pudo enviar el mensaje. Intente más tarde."))
	case errors.Is(err, service.ErrConfiguration):
		c.JSON(http.StatusInternalServerError, apierror.New("Error de configuración del servidor"))
	case errors.Is(err, service.ErrStore):
		c.JSON(http.StatusInternalServerError, apierror.New("Error de base de datos"))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unmapped error")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
