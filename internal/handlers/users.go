package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUserByTelegramID handles GET /users/telegram/:telegramId.
func (h *Handlers) GetUserByTelegramID(c *gin.Context) {
	telegramID := c.Param("telegramId")

	user, err := h.userClient.GetUserByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
