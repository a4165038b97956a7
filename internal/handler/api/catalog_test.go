//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"institut-booking/internal/handler/api"
	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/queries"
	"institut-booking/tests/common/builder"
	"institut-booking/tests/common/httptest"
	queriesmock "institut-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/services", s.handler.ListServices)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	s.Run("success: returns the active catalog", func() {
		views := []*queries.ServiceView{
			builder.NewServiceBuilder().WithCategory("Massages").BuildView(),
			builder.NewServiceBuilder().WithName("Soin du visage").WithCategory("Soins").BuildView(),
		}
		s.mockQueries.EXPECT().ListActiveServices(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response []*resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Massages", response[0].Category)
	})

	s.Run("error: 503 when the catalog is unavailable", func() {
		s.mockQueries.EXPECT().ListActiveServices(gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection refused"), errs.ErrCatalogUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service catalog unavailable")
	})

	s.Run("error: 500 on other failures", func() {
		s.mockQueries.EXPECT().ListActiveServices(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
