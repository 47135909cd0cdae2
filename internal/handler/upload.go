package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/apierror"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

// multipartOverhead is the room left for boundaries and headers around the file part.
const multipartOverhead = 64 << 10

type UploadHandler struct {
	svc      service.ImageService
	maxBytes int64
}

func NewUploadHandler(svc service.ImageService, maxBytes int64) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes}
}

// Upload serves POST /upload with a multipart "file" field.
//
// @Summary Subir imagen
// @Tags imagenes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Imagen (máx. 5MB)"
// @Success 200 {object} dto.UploadResponse
// @Failure 413 {object} apierror.APIError
// @Failure 415 {object} apierror.APIError
// @Failure 502 {object} apierror.APIError
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(c, service.ErrPayloadTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se recibió ningún archivo"))
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	img, err := h.svc.Upload(c.Request.Context(), f, header.Size, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UploadResponse{Success: true, URL: img.URL, PublicID: img.PublicID})
}

// Delete serves DELETE /upload?public_id=<id>.
//
// @Summary Eliminar imagen
// @Tags imagenes
// @Produce json
// @Security BearerAuth
// @Param public_id query string true "public_id de Cloudinary"
// @Success 200 {object} dto.SuccessResponse
// @Failure 502 {object} apierror.APIError
// @Router /upload [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("public_id requerido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), publicID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK())
}
