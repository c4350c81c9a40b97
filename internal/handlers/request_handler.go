package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	requests := rg.Group("/solicitudes")
	requests.Use(authMW)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("/cliente", h.GetClientRequests)
		requests.GET("/trabajador", h.GetWorkerRequests)
		requests.GET("/:id", h.GetRequest)

		// Lifecycle transitions, worker only. Invalid edges return a conflict.
		requests.POST("/:id/aceptar", h.transitionTo(models.RequestStatusAccepted))
		requests.POST("/:id/rechazar", h.transitionTo(models.RequestStatusRejected))
		requests.POST("/:id/finalizar", h.transitionTo(models.RequestStatusCompleted))
		requests.POST("/:id/cancelar", h.transitionTo(models.RequestStatusCancelled))
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	request, err := h.requestService.CreateRequest(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

func (h *RequestHandler) GetClientRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	list, err := h.requestService.GetClientRequests(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"solicitudes": list})
}

func (h *RequestHandler) GetWorkerRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	list, err := h.requestService.GetWorkerRequests(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"solicitudes": list})
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	request, err := h.requestService.GetRequest(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *RequestHandler) transitionTo(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		db := h.GetDB(c)

		request, err := h.requestService.Transition(db, userID, c.Param("id"), target)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, request)
	}
}
