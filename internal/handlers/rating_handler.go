package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := rg.Group("/calificaciones")
	{
		public.GET("/trabajador/:id", h.GetWorkerRatings)
	}

	own := rg.Group("/calificaciones")
	own.Use(authMW)
	{
		own.POST("", h.CreateRating)
	}
}

func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	rating, err := h.ratingService.CreateRating(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) GetWorkerRatings(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.ratingService.GetWorkerRatings(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
