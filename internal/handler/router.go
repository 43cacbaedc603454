package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"locadora-api/internal/handler/api"
	"locadora-api/internal/handler/middleware"
	"locadora-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
	rentalHandler *api.RentalHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, vehicleHandler, clientHandler, rentalHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
}

func setupRoutes(
	engine *gin.Engine,
	vehicleHandler *api.VehicleHandler,
	clientHandler *api.ClientHandler,
	rentalHandler *api.RentalHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/veiculos", Handler: vehicleHandler.Register},
		{Method: http.MethodGet, Path: "/veiculos/disponiveis", Handler: vehicleHandler.ListAvailable},
		{Method: http.MethodGet, Path: "/veiculos/alugados", Handler: rentalHandler.ListActive},
		{Method: http.MethodGet, Path: "/marcas", Handler: vehicleHandler.Brands},
		{Method: http.MethodGet, Path: "/modelos/:marca", Handler: vehicleHandler.ModelsByBrand},
		{Method: http.MethodPost, Path: "/upload-veiculo", Handler: vehicleHandler.UploadImage},

		{Method: http.MethodPost, Path: "/clientes", Handler: clientHandler.Register},
		{Method: http.MethodGet, Path: "/clientes", Handler: clientHandler.List},
		{Method: http.MethodPut, Path: "/clientes/:id", Handler: clientHandler.Update},
		{Method: http.MethodDelete, Path: "/clientes/:id", Handler: clientHandler.Delete},

		{Method: http.MethodPost, Path: "/locacoes", Handler: rentalHandler.Create},
		{Method: http.MethodPost, Path: "/cancelar-locacao", Handler: rentalHandler.Cancel},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			engine.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
