package user

import (
	"net/http"
	"strconv"

	"go-laundry/internal/role"
	"go-laundry/internal/shared/apperror"
	"go-laundry/internal/shared/contextutil"
	"go-laundry/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
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

func (h *Handler) ListCustomers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	reqLogger := h.logger
	if rid := contextutil.GetRequestID(c.Request.Context()); rid != "" {
		reqLogger = h.logger.With(zap.String("request_id", rid))
	}
	ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)

	resp, err := h.svc.ListCustomers(ctx, actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}
