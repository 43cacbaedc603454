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

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Create rental
// @Description Create an active rental; the vehicle is marked unavailable
// @Tags locacoes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRentalRequest true "Rental data"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /locacoes [post]
func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados da locação inválidos"})
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRentalValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "placa e clienteId são obrigatórios"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary Cancel rental
// @Description Set the rental to cancelled and release its vehicle
// @Tags locacoes
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRentalRequest true "Rental reference"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 404 {object} map[string]string
// @Router /cancelar-locacao [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locacaoId é obrigatório"})
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), req.RentalID); err != nil {
		switch {
		case errs.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "locação não encontrada"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary List active rentals
// @Description Active rentals joined with current vehicle and client state
// @Tags locacoes
// @Produce json
// @Success 200 {array} resdto.ActiveRentalResponse
// @Router /veiculos/alugados [get]
func (h *RentalHandler) ListActive(c *gin.Context) {
	views, err := h.q.ActiveRentals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]*resdto.ActiveRentalResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromActiveRentalView(view)
	}
	c.JSON(http.StatusOK, response)
}
