//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"proposal-service/internal/handler/dto/request"
	"proposal-service/tests/common/authtest"
	"proposal-service/tests/common/dbtest"
	"proposal-service/tests/common/httptest"
	"proposal-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "sales@example.com", "sales")
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "sales")

	_, err := s.DB.Exec(s.T().Context(),
		"UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

// ============ TestLogin - Login API tests ============

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "sales@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			email:          "sales@example.com",
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var body map[string]any
			require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
			require.NotEmpty(s.T(), body["access_token"])

			access := httptest.ExtractCookie(w, "access_token")
			require.NotNil(s.T(), access)
			require.NotEmpty(s.T(), access.Value)
			refresh := httptest.ExtractCookie(w, "refresh_token")
			require.NotNil(s.T(), refresh)
			require.NotEmpty(s.T(), refresh.Value)
		})
	}
}

// ============ TestMe - Current user profile tests ============

func (s *authSuite) TestMe() {
	s.Run("returns the logged-in profile", func() {
		token := authtest.LoginUser(s.T(), s.Router, "sales@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
		require.Equal(s.T(), "sales@example.com", body["email"])
		require.Equal(s.T(), "sales", body["role"])
	})

	s.Run("rejects a missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects a garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// ============ TestRefresh - Token refresh tests ============

func (s *authSuite) TestRefresh() {
	s.Run("rotates the token pair from the refresh cookie", func() {
		loginW := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "sales@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(s.T(), http.StatusOK, loginW.Code, loginW.Body.String())
		cookies := httptest.ExtractCookies(loginW)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		rotated := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), rotated)
		require.NotEmpty(s.T(), rotated.Value)
	})

	s.Run("rejects a request without the refresh cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// ============ TestLogout - Logout tests ============

func (s *authSuite) TestLogout() {
	s.Run("clears the token cookies", func() {
		loginW := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "sales@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(s.T(), http.StatusOK, loginW.Code, loginW.Body.String())

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL,
			nil, httptest.ExtractCookies(loginW), "")
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), cleared)
		require.Empty(s.T(), cleared.Value)
	})
}
