package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Catalog serves GET /products with both collections.
//
// @Summary Catálogo público
// @Tags productos
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 500 {object} apierror.APIError
// @Router /products [get]
func (h *ProductsHandler) Catalog(c *gin.Context) {
	resp, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Replace serves POST /products: the body is the complete product set.
//
// @Summary Reemplazar productos
// @Description Reemplaza el conjunto completo de productos, y las categorías si se envían. Si un producto no es válido no se guarda nada.
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ReplaceProductsRequest true "Productos y categorías"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apierror.ValidationError
// @Router /products [post]
func (h *ProductsHandler) Replace(c *gin.Context) {
	var req dto.ReplaceProductsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.ReplaceAll(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK())
}
