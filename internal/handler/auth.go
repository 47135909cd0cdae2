package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/middleware"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

type AuthHandler struct {
	svc          service.AuthService
	secureCookie bool
}

// NewAuthHandler sets the Secure flag on the session cookie when secureCookie
// is true (production, served over HTTPS).
func NewAuthHandler(svc service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookie: secureCookie}
}

// Login godoc
// @Summary Login del administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.ValidationError
// @Failure 401 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sess.Token, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, ExpiresAt: sess.ExpiresAt, User: sess.User})
}

// Logout clears the cookie. Tokens are not revocable server side; a copied
// token stays valid until it expires.
//
// @Summary Cerrar sesión
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.OK())
}

// Session reports the current session. Mounted behind SessionAuth.
//
// @Summary Sesión actual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} apierror.APIError
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		handleError(c, service.ErrInvalidSession)
		return
	}
	resp := dto.SessionResponse{User: dto.SessionUser{ID: claims.Subject, Name: claims.Name}}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, resp)
}
