package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
}

func NewMembershipHandler(base *BaseHandler, membershipService services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       base,
		membershipService: membershipService,
	}
}

func (h *MembershipHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	memberships := rg.Group("/membresias")
	memberships.Use(authMW)
	{
		memberships.POST("/ensure", h.EnsureMembership)
		memberships.GET("/mi", h.GetMyMembership)
	}

	admin := rg.Group("/membresias")
	admin.Use(authMW, adminMW)
	{
		admin.GET("", h.ListMemberships)
		admin.POST("/cambiar-plan", h.ChangePlan)
	}
}

func (h *MembershipHandler) EnsureMembership(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	membership, err := h.membershipService.EnsureMembership(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *MembershipHandler) GetMyMembership(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	membership, err := h.membershipService.GetMyMembership(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *MembershipHandler) ChangePlan(c *gin.Context) {
	var req dto.ChangePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	membership, err := h.membershipService.ChangePlan(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	limit, offset := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.membershipService.ListMemberships(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
