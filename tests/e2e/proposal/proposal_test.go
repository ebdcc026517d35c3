//go:build e2e

package proposal_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"proposal-service/internal/domain/ordernum"
	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/handler/dto/request"
	"proposal-service/internal/handler/dto/response"
	"proposal-service/tests/common/authtest"
	"proposal-service/tests/common/dbtest"
	"proposal-service/tests/common/httptest"
	"proposal-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	proposalsURL = "/api/proposals"
	previewURL   = "/api/pricing/preview"
	invoicesURL  = "/api/invoices"
)

type proposalSuite struct {
	e2e.SharedSuite

	salesToken string
	salesID    uuid.UUID
	clientID   uuid.UUID
	packageID  uuid.UUID
	serviceID  uuid.UUID
}

func TestProposalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(proposalSuite))
}

func (s *proposalSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.salesID = dbtest.CreateTestUser(s.T(), s.DB, "sales@example.com", "sales")
	s.salesToken = authtest.LoginUser(s.T(), s.Router, "sales@example.com", dbtest.TestPassword)
	s.clientID = dbtest.CreateTestClient(s.T(), s.DB, "Acme Media KK", s.salesID)
	s.packageID = dbtest.CreateTestPackage(s.T(), s.DB, "Full Marketing Suite", 17500)
	s.serviceID = dbtest.CreateTestService(s.T(), s.DB, "SNS Campaign", 2000)
}

// Package 17500 at 10% off, one service 2000 minus 500, then 5% off
// the 17250 subtotal: 16387 after half-up rounding.
func (s *proposalSuite) createRequest() request.CreateProposalRequest {
	return request.CreateProposalRequest{
		ClientID:       s.clientID,
		PackageID:      &s.packageID,
		IncludePackage: true,
		Services: []request.ProposalServiceRequest{{
			ServiceID: s.serviceID,
			Discount:  &request.DiscountRequest{Type: "absolute", Value: 500},
		}},
		PackageDiscount: &request.DiscountRequest{Type: "percentage", Value: 10},
		OverallDiscount: &request.DiscountRequest{Type: "percentage", Value: 5},
		Note:            "Autumn campaign proposal",
	}
}

func (s *proposalSuite) createProposal() map[string]any {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, proposalsURL,
		s.createRequest(), s.salesToken)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var body map[string]any
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
	return body
}

func breakdownOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	breakdown, ok := body["breakdown"].(map[string]any)
	require.True(t, ok, "response has no breakdown: %v", body)
	return breakdown
}

// ============ TestPricingPreview - Stateless pricing API tests ============

func (s *proposalSuite) TestPricingPreview() {
	s.Run("prices a catalog selection without persisting anything", func() {
		req := request.PricingPreviewRequest{
			PackageID:       &s.packageID,
			IncludePackage:  true,
			Services:        s.createRequest().Services,
			PackageDiscount: &request.DiscountRequest{Type: "percentage", Value: 10},
			OverallDiscount: &request.DiscountRequest{Type: "percentage", Value: 5},
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, previewURL, req, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
		breakdown := breakdownOf(s.T(), body)
		require.EqualValues(s.T(), 15750, breakdown["package_discounted"])
		require.EqualValues(s.T(), 17250, breakdown["subtotal"])
		require.EqualValues(s.T(), 16387, breakdown["final_price"])
		require.Equal(s.T(), "16,387", breakdown["final_price_display"])
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, previewURL,
			request.PricingPreviewRequest{}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// ============ TestCreateProposal - Proposal creation API tests ============

func (s *proposalSuite) TestCreateProposal() {
	s.Run("allocates month-scoped order ids in sequence", func() {
		now := time.Now().UTC()
		prefix := ordernum.MonthPrefix(now.Year(), now.Month())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, proposalsURL,
			s.createRequest(), s.salesToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
		var actual response.ProposalResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &actual))

		expected := &response.ProposalResponse{
			OrderID:        prefix + "00001",
			ClientID:       s.clientID,
			ClientCompany:  "Acme Media KK",
			CreatedBy:      s.salesID,
			CreatorEmail:   "sales@example.com",
			PackageID:      &s.packageID,
			PackageName:    lo.ToPtr("Full Marketing Suite"),
			IncludePackage: true,
			Services: []response.ProposalServiceResponse{{
				ServiceID:      s.serviceID,
				ServiceName:    "SNS Campaign",
				Original:       2000,
				Discounted:     1500,
				DiscountAmount: 500,
			}},
			Breakdown: pricing.Breakdown{
				PackageOriginal:       17500,
				PackageDiscounted:     15750,
				PackageDiscountAmount: 1750,
				Services: []pricing.LineItem{{
					ServiceID:      s.serviceID,
					Original:       2000,
					Discounted:     1500,
					DiscountAmount: 500,
				}},
				ServicesTotal:         1500,
				ServicesDiscountTotal: 500,
				Subtotal:              17250,
				OverallDiscountAmount: 863,
				FinalPrice:            16387,
				FinalPriceDisplay:     "16,387",
			},
			Status: "draft",
			Note:   lo.ToPtr("Autumn campaign proposal"),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ProposalResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			s.T().Errorf("Proposal response mismatch (-want +got):\n%s", diff)
		}

		second := s.createProposal()
		require.Equal(s.T(), prefix+"00002", second["order_id"])
	})

	s.Run("rejects an unknown client", func() {
		req := s.createRequest()
		req.ClientID = uuid.New()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, proposalsURL, req, s.salesToken)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("rejects an empty selection", func() {
		req := s.createRequest()
		req.PackageID = nil
		req.IncludePackage = false
		req.Services = nil
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, proposalsURL, req, s.salesToken)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

// ============ TestProposalLifecycle - Draft to invoice flow tests ============

func (s *proposalSuite) TestProposalLifecycle() {
	s.Run("revise, send, accept and invoice a proposal", func() {
		created := s.createProposal()
		id := created["id"].(string)
		orderID := created["order_id"].(string)

		// Dropping the overall discount reprices to the raw subtotal.
		update := request.UpdateProposalRequest(s.createRequest())
		update.OverallDiscount = nil
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s", proposalsURL, id), update, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var revised map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &revised))
		require.EqualValues(s.T(), 17250, breakdownOf(s.T(), revised)["final_price"])
		require.Equal(s.T(), orderID, revised["order_id"])

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/send", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var sent map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &sent))
		require.Equal(s.T(), "sent", sent["status"])
		require.NotEmpty(s.T(), sent["valid_until"])
		require.Equal(s.T(), 1, dbtest.CountNotificationJobs(s.T(), s.DB, "proposal_sent"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var accepted map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &accepted))
		require.Equal(s.T(), "accepted", accepted["status"])

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/invoice", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
		var invoice map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &invoice))
		require.Equal(s.T(), "INV-"+orderID, invoice["number"])
		require.EqualValues(s.T(), 17250, invoice["amount"])

		// Issuing twice is a conflict.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/invoice", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, invoicesURL, nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var invoices []map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &invoices))
		require.Len(s.T(), invoices, 1)
		require.Equal(s.T(), "INV-"+orderID, invoices[0]["number"])
	})

	s.Run("declines a sent proposal", func() {
		created := s.createProposal()
		id := created["id"].(string)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/send", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/decline", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var declined map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &declined))
		require.Equal(s.T(), "declined", declined["status"])
	})

	s.Run("rejects transitions out of order", func() {
		created := s.createProposal()
		id := created["id"].(string)

		// Accept before send.
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		// Send twice.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/send", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/send", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		// Revise after send.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s", proposalsURL, id),
			request.UpdateProposalRequest(s.createRequest()), s.salesToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		// Invoice before accept.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/invoice", proposalsURL, id), nil, s.salesToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})
}

// ============ TestProposalVisibility - Ownership tests ============

func (s *proposalSuite) TestProposalVisibility() {
	s.Run("hides proposals from other sales users but not admins", func() {
		created := s.createProposal()
		id := created["id"].(string)
		getURL := fmt.Sprintf("%s/%s", proposalsURL, id)

		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other-sales@example.com", "sales")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, getURL, nil, otherToken)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, proposalsURL, nil, otherToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var listed []map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &listed))
		require.Empty(s.T(), listed)

		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, getURL, nil, adminToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	})
}
