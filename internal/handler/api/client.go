package api

import (
	"net/http"

	reqdto "locadora-api/internal/handler/dto/request"
	resdto "locadora-api/internal/handler/dto/response"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/usecase/commands"
	"locadora-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary Register client
// @Tags clientes
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Client data"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /clientes [post]
func (h *ClientHandler) Register(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do cliente inválidos"})
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrClientValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "dados do cliente inválidos"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List clients
// @Tags clientes
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clientes [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]*resdto.ClientResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromClientView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update client
// @Description Partial update; only the provided fields are changed
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 404 {object} map[string]string
// @Router /clientes/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do cliente inválidos"})
		return
	}

	if err := h.cmds.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		switch {
		case errs.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente não encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Delete client
// @Description Refused while the client has active rentals
// @Tags clientes
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clientes/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errs.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente não encontrado"})
		case errs.Is(err, commands.ErrClientHasActiveRentals):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cliente possui locações ativas"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage("cliente removido com sucesso"))
}
