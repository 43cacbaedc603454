//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"locadora-api/internal/domain/rental"
	"locadora-api/internal/handler/api"
	resdto "locadora-api/internal/handler/dto/response"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/usecase/commands"
	"locadora-api/internal/usecase/queries"
	"locadora-api/tests/common/builder"
	"locadora-api/tests/common/httptest"
	commandsmock "locadora-api/tests/mock/commands"
	queriesmock "locadora-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/locacoes", s.handler.Create)
	s.router.POST("/cancelar-locacao", s.handler.Cancel)
	s.router.GET("/veiculos/alugados", s.handler.ListActive)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) TestCreate() {
	reqBody := builder.NewRentalBuilder().BuildCreateRequestDTO()

	s.Run("created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return("00001756400000000001", nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locacoes", reqBody)

		var res resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.True(res.Success)
		s.Equal("00001756400000000001", res.ID)
	})

	s.Run("validation failure from the engine", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return("", errs.Mark(rental.ErrEmptyVehiclePlate, commands.ErrRentalValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locacoes",
			map[string]any{"placa": "", "clienteId": ""})

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "placa e clienteId são obrigatórios")
	})

	s.Run("command failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return("", errors.New("store unavailable"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locacoes", reqBody)

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "")
	})
}

func (s *RentalHandlerTestSuite) TestCancel() {
	s.Run("cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "00001756400000000001").
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelar-locacao",
			map[string]any{"locacaoId": "00001756400000000001"})

		var res resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Success)
	})

	s.Run("missing id fails binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelar-locacao",
			map[string]any{})

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "locacaoId é obrigatório")
	})

	s.Run("unknown rental", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "00000000000000000000").
			Return(commands.ErrRentalNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelar-locacao",
			map[string]any{"locacaoId": "00000000000000000000"})

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "locação não encontrada")
	})
}

func (s *RentalHandlerTestSuite) TestListActive() {
	s.Run("rented vehicles with joined records", func() {
		view := &queries.ActiveRentalView{
			ID:         "00001756400000000001",
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-05",
			TotalValue: 600,
			Status:     "ativa",
			Vehicle:    builder.NewVehicleBuilder().BuildView(),
			Client:     builder.NewClientBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().ActiveRentals(gomock.Any()).
			Return([]*queries.ActiveRentalView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/veiculos/alugados", nil)

		var res []*resdto.ActiveRentalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal("ativa", res[0].Status)
		s.Require().NotNil(res[0].Vehicle)
		s.Equal("ABC1234", res[0].Vehicle.Plate)
	})

	s.Run("orphan rental serializes with null sub-objects", func() {
		view := &queries.ActiveRentalView{ID: "1", Status: "ativa"}
		s.mockQueries.EXPECT().ActiveRentals(gomock.Any()).
			Return([]*queries.ActiveRentalView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/veiculos/alugados", nil)

		var res []*resdto.ActiveRentalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Nil(res[0].Vehicle)
		s.Nil(res[0].Client)
	})

	s.Run("query failure", func() {
		s.mockQueries.EXPECT().ActiveRentals(gomock.Any()).
			Return(nil, errors.New("store unavailable"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/veiculos/alugados", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "")
	})
}
