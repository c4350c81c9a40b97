package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/services"
)

type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       base,
		moderationService: moderationService,
	}
}

func (h *ModerationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	moderation := rg.Group("/moderacion")
	moderation.Use(authMW, adminMW)
	{
		moderation.GET("", h.ListAll)
		moderation.GET("/pendientes", h.ListPending)
		moderation.POST("/:id/aprobar", h.resolveAs(models.PublicationStatusApproved))
		moderation.POST("/:id/rechazar-servicio", h.resolveAs(models.PublicationStatusRejected))
	}
}

func (h *ModerationHandler) ListPending(c *gin.Context) {
	db := h.GetDB(c)

	list, err := h.moderationService.ListPending(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registros": list})
}

func (h *ModerationHandler) ListAll(c *gin.Context) {
	limit, offset := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.moderationService.ListAll(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ModerationHandler) resolveAs(outcome string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		db := h.GetDB(c)

		record, err := h.moderationService.Resolve(db, adminID, c.Param("id"), outcome)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}
