package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	ucClient "github.com/BruksfildServices01/barberpro/internal/usecase/client"
)

type ClientHandler struct {
	create *ucClient.CreateClient
	search *ucClient.SearchClients
}

func NewClientHandler(create *ucClient.CreateClient, search *ucClient.SearchClients) *ClientHandler {
	return &ClientHandler{create: create, search: search}
}

type CreateClientRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	BirthDate string `json:"birth_date"`
	Note      string `json:"note"`
}

// ======================================================
// LIST CLIENTS (?query= busca em nome, telefone e e-mail)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.search.Execute(c.Request.Context(), middleware.CurrentSession(c), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	client, err := h.create.Execute(c.Request.Context(), middleware.CurrentSession(c), ucClient.CreateClientInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Note:      req.Note,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, client)
}
