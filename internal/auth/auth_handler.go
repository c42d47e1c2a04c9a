package auth

import (
	"net/http"
	"os"

	"go-laundry/internal/shared/apperror"
	"go-laundry/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieMaxAge          = 15 * 60
	refreshCookieMaxAge         = 3600 * 24 * 7
	refreshCookieRememberMaxAge = 3600 * 24 * 30
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func setSessionCookie(c *gin.Context, name, value string, maxAge int) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	res, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	token, refreshToken, userResp, err := ctrl.service.Login(c.Request.Context(), req.Username, req.Password, req.Remember)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	refreshMaxAge := refreshCookieMaxAge
	if req.Remember {
		refreshMaxAge = refreshCookieRememberMaxAge
	}
	setSessionCookie(c, "access_token", token, accessCookieMaxAge)
	setSessionCookie(c, "refresh_token", refreshToken, refreshMaxAge)

	responseData := gin.H{
		"user":          userResp,
		"access_token":  token,
		"refresh_token": refreshToken,
	}

	response.Success(c, http.StatusOK, responseData, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	userResp, err := ctrl.service.GetMe(c.Request.Context(), userID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	setSessionCookie(c, "access_token", "", -1)
	setSessionCookie(c, "refresh_token", "", -1)

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (ctrl *Handler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "Missing refresh token", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	newAccess, newRefresh, userResp, err := ctrl.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	setSessionCookie(c, "access_token", newAccess, accessCookieMaxAge)
	setSessionCookie(c, "refresh_token", newRefresh, refreshCookieMaxAge)

	responseData := gin.H{
		"user":          userResp,
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	}

	response.Success(c, http.StatusOK, responseData, nil)
}
