//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"proposal-service/internal/domain/user"
	"proposal-service/internal/handler/api"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"
	"proposal-service/tests/common/builder"
	"proposal-service/tests/common/httptest"
	"proposal-service/tests/common/testutil"
	commandsmock "proposal-service/tests/mock/commands"
	queriesmock "proposal-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProposalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProposalCommands
	mockQueries  *queriesmock.MockProposalQueries
	handler      *api.ProposalHandler
}

func (s *ProposalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProposalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProposalQueries(s.mockCtrl)
	s.handler = api.NewProposalHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleSales)
		c.Next()
	}

	s.router.POST("/proposals", authMiddleware, s.handler.Create)
	s.router.GET("/proposals", authMiddleware, s.handler.List)
	s.router.GET("/proposals/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/proposals/:id", authMiddleware, s.handler.Update)
	s.router.POST("/proposals/:id/send", authMiddleware, s.handler.Send)
	s.router.POST("/proposals/:id/accept", authMiddleware, s.handler.Accept)
	s.router.POST("/proposals/:id/decline", authMiddleware, s.handler.Decline)
}

func (s *ProposalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProposalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProposalHandlerTestSuite))
}

type testCaseProposal struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProposalHandlerTestSuite) TestCreate() {
	url := "/proposals"

	b := builder.NewProposalBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.ProposalResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(returnView.OrderID, resp.OrderID)
		s.Equal(int64(16387), resp.Breakdown.FinalPrice)
	})

	s.Run("validation", func() {
		cases := []testCaseProposal{
			{name: "missing field: client_id (required)", mutate: testutil.Field("client_id", nil), expectCode: http.StatusBadRequest},
			{name: "malformed client_id", mutate: testutil.Field("client_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "unknown discount type", mutate: testutil.Field("overall_discount", map[string]any{"type": "loyalty", "value": 5}), expectCode: http.StatusBadRequest},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(c.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			returnErr  error
			expectCode int
		}{
			{name: "unknown client maps to 404", returnErr: commands.ErrClientNotFound, expectCode: http.StatusNotFound},
			{name: "order id conflict maps to 409", returnErr: commands.ErrOrderIDConflict, expectCode: http.StatusConflict},
			{name: "domain validation maps to 422", returnErr: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
			{name: "database failure maps to 500", returnErr: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, c.returnErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(c.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("unauthorized: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ProposalHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with list items", func() {
		item := builder.NewProposalBuilder().BuildListItem()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.ProposalListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)

		var resp []*resdto.ProposalListResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp, 1)
		s.Equal(item.OrderID, resp[0].OrderID)
		s.Equal("16,387", resp[0].FinalPriceDisplay)
	})
}

func (s *ProposalHandlerTestSuite) TestGet() {
	returnView := builder.NewProposalBuilder().BuildView()
	url := "/proposals/" + returnView.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown id: returns 404", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), missing).
			Return(nil, commands.ErrProposalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals/"+missing.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ProposalHandlerTestSuite) TestUpdate() {
	b := builder.NewProposalBuilder()
	returnView := b.BuildView()
	url := "/proposals/" + returnView.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Revise(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("non-draft proposal: returns 409", func() {
		s.mockCommands.EXPECT().Revise(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, commands.ErrProposalNotDraft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ProposalHandlerTestSuite) TestSend() {
	returnView := builder.NewProposalBuilder().BuildView()
	url := "/proposals/" + returnView.ID.String() + "/send"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("already sent: returns 409", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, commands.ErrProposalNotDraft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *ProposalHandlerTestSuite) TestAccept() {
	returnView := builder.NewProposalBuilder().BuildView()
	url := "/proposals/" + returnView.ID.String() + "/accept"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("draft proposal: returns 409", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, commands.ErrProposalNotSent).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("expired proposal: returns 410", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), gomock.Any(), returnView.ID).
			Return(nil, commands.ErrProposalExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusGone, rec.Code)
	})
}

func (s *ProposalHandlerTestSuite) TestDecline() {
	returnView := builder.NewProposalBuilder().BuildView()
	url := "/proposals/" + returnView.ID.String() + "/decline"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Decline(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
