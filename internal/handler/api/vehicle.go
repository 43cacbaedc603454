package api

import (
	"io"
	"mime/multipart"
	"net/http"

	reqdto "locadora-api/internal/handler/dto/request"
	resdto "locadora-api/internal/handler/dto/response"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/usecase/commands"
	"locadora-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const imageFormField = "imagem"

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle
// @Description Register a vehicle, optionally with an image file
// @Tags veiculos
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle data"
// @Success 201 {object} resdto.SuccessResponse
// @Failure 400 {object} map[string]string
// @Router /veiculos [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dados do veículo inválidos"})
		return
	}

	image, err := optionalImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falha ao ler a imagem enviada"})
		return
	}

	if err := h.cmds.Register(c.Request.Context(), req, image); err != nil {
		switch {
		case errs.Is(err, commands.ErrVehicleValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "dados do veículo inválidos"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OK())
}

// @Summary List available vehicles
// @Description List available vehicles, optionally filtered by brand and model
// @Tags veiculos
// @Produce json
// @Param marca query string false "Brand filter"
// @Param modelo query string false "Model filter"
// @Success 200 {array} resdto.VehicleResponse
// @Router /veiculos/disponiveis [get]
func (h *VehicleHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.ListAvailable(c.Request.Context(), c.Query("marca"), c.Query("modelo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]*resdto.VehicleResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromVehicleView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List brands
// @Description Distinct brands across all registered vehicles
// @Tags veiculos
// @Produce json
// @Success 200 {array} string
// @Router /marcas [get]
func (h *VehicleHandler) Brands(c *gin.Context) {
	brands, err := h.q.Brands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// @Summary List models for a brand
// @Description Distinct models among vehicles of the given brand
// @Tags veiculos
// @Produce json
// @Param marca path string true "Brand"
// @Success 200 {array} string
// @Router /modelos/{marca} [get]
func (h *VehicleHandler) ModelsByBrand(c *gin.Context) {
	models, err := h.q.ModelsByBrand(c.Request.Context(), c.Param("marca"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models)
}

// @Summary Upload vehicle image
// @Description Upload an image and get back its public URL
// @Tags veiculos
// @Accept mpfd
// @Produce json
// @Param imagem formData file true "Image file"
// @Success 200 {object} resdto.UploadResponse
// @Failure 400 {object} map[string]string
// @Router /upload-veiculo [post]
func (h *VehicleHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo de imagem é obrigatório"})
		return
	}

	image, err := readImage(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falha ao ler a imagem enviada"})
		return
	}

	url, err := h.cmds.UploadImage(c.Request.Context(), *image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resdto.UploadResponse{URL: url})
}

func optionalImage(c *gin.Context) (*commands.UploadedImage, error) {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		// No multipart body or no image part; registration proceeds without one.
		return nil, nil
	}
	return readImage(header)
}

func readImage(header *multipart.FileHeader) (*commands.UploadedImage, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &commands.UploadedImage{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
