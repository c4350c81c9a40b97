package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/services"
	"skilllink_backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
	limits      UploadLimits
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService, limits UploadLimits) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
		limits:      limits,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	chat := rg.Group("/chat/solicitudes/:id")
	chat.Use(authMW)
	{
		chat.GET("/mensajes", h.GetMessages)
		chat.POST("/mensajes", h.SendMessage)
		chat.POST("/leidos", h.MarkRead)
		chat.POST("/archivos", h.UploadAttachment)
	}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.chatService.SendMessage(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	list, err := h.chatService.GetMessages(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensajes": list})
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.chatService.MarkRead(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ChatHandler) UploadAttachment(c *gin.Context) {
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

	url, err := h.chatService.UploadAttachment(c.Request.Context(), db, userID, c.Param("id"), filename, file, contentType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"archivo": url})
}
