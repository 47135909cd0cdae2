package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/apierror"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List serves GET /categories.
//
// @Summary Listar categorías
// @Tags categorias
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} apierror.APIError
// @Router /categories [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: list})
}

// Save serves POST /categories. A body carrying "_id" updates that category;
// without it a new one is created.
//
// @Summary Crear o actualizar categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CategoryRequest true "Categoría (con _id para actualizar)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /categories [post]
func (h *CategoriesHandler) Save(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	var err error
	if req.InternalID != "" {
		_, err = h.svc.Update(c.Request.Context(), req.InternalID, req)
	} else {
		_, err = h.svc.Create(c.Request.Context(), req)
	}
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK())
}

// Delete serves DELETE /categories?id=<internal id>.
//
// @Summary Eliminar categoría
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id query string true "ID interno (_id)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.CategoryInUse
// @Router /categories [delete]
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, apierror.New("ID requerido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK())
}
