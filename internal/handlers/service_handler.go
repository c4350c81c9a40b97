package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type ServiceHandler struct {
	*BaseHandler
	serviceService services.ServiceService
	limits         UploadLimits
}

func NewServiceHandler(base *BaseHandler, serviceService services.ServiceService, limits UploadLimits) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		serviceService: serviceService,
		limits:         limits,
	}
}

func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := rg.Group("/servicios")
	{
		// The public catalog only ever shows approved services.
		public.GET("/publicos", h.ListPublicServices)
		public.GET("/publicos/:id", h.GetPublicService)
	}

	own := rg.Group("/servicios")
	own.Use(authMW)
	{
		own.POST("", h.CreateService)
		own.GET("/mios", h.GetMyServices)
		own.GET("/:id", h.GetService)
		own.PUT("/:id", h.UpdateService)
		own.DELETE("/:id", h.DeleteService)
		own.POST("/:id/foto", h.UploadServicePhoto)
	}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.serviceService.CreateService(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) GetMyServices(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	list, err := h.serviceService.GetMyServices(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"servicios": list})
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	service, err := h.serviceService.GetService(db, userID, h.GetRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.serviceService.UpdateService(db, userID, h.GetRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.serviceService.DeleteService(db, userID, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *ServiceHandler) UploadServicePhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	filename, file, contentType, ok := h.openUpload(c, "file", h.limits)
	if !ok {
		return
	}
	defer file.Close()

	db := h.GetDB(c)

	service, err := h.serviceService.UploadServicePhoto(c.Request.Context(), db, userID, c.Param("id"), filename, file, contentType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) ListPublicServices(c *gin.Context) {
	var query dto.ServiceListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	limit, offset := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.serviceService.ListPublicServices(db, &query, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ServiceHandler) GetPublicService(c *gin.Context) {
	db := h.GetDB(c)

	service, err := h.serviceService.GetPublicService(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}
