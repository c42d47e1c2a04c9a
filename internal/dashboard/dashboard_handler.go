package dashboard

import (
	"net/http"

	"go-laundry/internal/role"
	"go-laundry/internal/shared/apperror"
	"go-laundry/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	svc Service
}

func NewHandler(service Service) *Handler {
	return &Handler{svc: service}
}

func actorFrom(c *gin.Context) (role.Actor, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return role.Actor{}, false
	}
	return role.Actor{ID: id, Role: role.Name(c.GetString("role"))}, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Stats(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.svc.Stats(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
