//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"proposal-service/internal/handler/api"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/tests/common/builder"
	"proposal-service/tests/common/httptest"
	"proposal-service/tests/common/testutil"
	queriesmock "proposal-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries)

	s.router.POST("/pricing/preview", s.handler.Preview)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestPreview() {
	url := "/pricing/preview"

	b := builder.NewProposalBuilder()
	reqBody := b.BuildPreviewRequestDTO()
	breakdown := b.BuildBreakdown()

	s.Run("success: returns 200 OK with breakdown", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), gomock.Any()).
			Return(&breakdown, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.PricingPreviewResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(int64(16387), resp.Breakdown.FinalPrice)
		s.Equal("16,387", resp.Breakdown.FinalPriceDisplay)
	})

	s.Run("validation", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "unknown discount type", mutate: testutil.Field("package_discount", map[string]any{"type": "loyalty", "value": 10}), expectCode: http.StatusBadRequest},
			{name: "malformed package_id", mutate: testutil.Field("package_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(c.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}
