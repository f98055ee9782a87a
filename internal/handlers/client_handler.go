package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/httpresp"
	ucClient "github.com/estilo26/booking-api/internal/usecase/client"
)

type ClientHandler struct {
	topClients *ucClient.GetTopClients
}

func NewClientHandler(topClients *ucClient.GetTopClients) *ClientHandler {
	return &ClientHandler{topClients: topClients}
}

// VIP ranks repeat clients by completed visits for the admin dashboard.
func (h *ClientHandler) VIP(c *gin.Context) {
	clients, err := h.topClients.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, clients)
}
