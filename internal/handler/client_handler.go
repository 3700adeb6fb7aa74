package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/nandhinijey/ClientFlow/internal/model"
	"github.com/nandhinijey/ClientFlow/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles client record requests
type ClientHandler struct {
	service service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		log.Printf("Error listing clients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clients"})
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	client, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting client by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload model.ClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), payload)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": vErr.Fields})
			return
		}
		log.Printf("Error creating client: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var payload model.ClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), id, payload)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": vErr.Fields})
		case errors.Is(err, service.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Error updating client: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting client: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

func (h *ClientHandler) ExportClientsCSV(c *gin.Context) {
	csvBuffer, err := h.service.ExportClientsCSV(c.Request.Context())
	if err != nil {
		log.Printf("Error exporting clients to CSV: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export clients"})
		return
	}

	fileName := fmt.Sprintf("clients_export_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv", csvBuffer.Bytes())
}

// RegisterClientRoutes registers the client record routes behind the auth gate
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	clientRoutes := rg.Group("/clients")
	clientRoutes.Use(authMW)
	{
		clientRoutes.GET("", h.ListClients)
		clientRoutes.GET("/export/csv", h.ExportClientsCSV)
		clientRoutes.GET("/:id", h.GetClient)
		clientRoutes.POST("", h.CreateClient)
		clientRoutes.PUT("/:id", h.UpdateClient)
		clientRoutes.DELETE("/:id", h.DeleteClient)
	}
}
