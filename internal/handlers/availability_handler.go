package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type AvailabilityHandler struct {
	*BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availabilityService services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         base,
		availabilityService: availabilityService,
	}
}

func (h *AvailabilityHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := rg.Group("/disponibilidad")
	{
		public.GET("/trabajador/:id", h.GetWorkerAvailabilities)
	}

	own := rg.Group("/disponibilidad")
	own.Use(authMW)
	{
		own.POST("", h.CreateAvailability)
		own.GET("/mias", h.GetMyAvailabilities)
		own.PUT("/:id", h.UpdateAvailability)
		own.DELETE("/:id", h.DeleteAvailability)
	}
}

func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	entry, err := h.availabilityService.CreateAvailability(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *AvailabilityHandler) GetMyAvailabilities(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	list, err := h.availabilityService.GetMyAvailabilities(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"disponibilidades": list})
}

func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	entry, err := h.availabilityService.UpdateAvailability(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.availabilityService.DeleteAvailability(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}

func (h *AvailabilityHandler) GetWorkerAvailabilities(c *gin.Context) {
	db := h.GetDB(c)

	list, err := h.availabilityService.GetWorkerAvailabilities(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"disponibilidades": list})
}
