package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

type ContactHandler struct{ svc service.ContactService }

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit godoc
// @Summary Formulario de contacto
// @Tags contacto
// @Accept json
// @Produce json
// @Param body body dto.ContactRequest true "Consulta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apierror.ValidationError
// @Failure 502 {object} apierror.APIError
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Submit(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK())
}
