//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"institut-booking/internal/handler/dto/request"
	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/tests/common/authtest"
	"institut-booking/tests/common/dbtest"
	"institut-booking/tests/common/httptest"
	"institut-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	registerURL = "/api/auth/register"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "claire@example.com", false)
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", true)
	inactiveID := dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", false)

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE id = $1", inactiveID)
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials log in",
			email:          "claire@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user is rejected",
			email:          "nobody@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password is rejected",
			email:          "claire@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account is rejected",
			email:          "inactive@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email is rejected",
			email:          "",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password is rejected",
			email:          "claire@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
				require.NotEmpty(t, response.AccessToken)
				require.Equal(t, tt.email, response.User.Email)
				httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie)
				require.NotEmpty(t, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("register opens a session and /me works", func() {
		t := s.T()

		token := authtest.RegisterUser(t, s.Router, request.RegisterRequest{
			Email:     "new.client@example.com",
			Password:  "password123",
			FirstName: "Nouvelle",
			LastName:  "Cliente",
			Phone:     "0698765432",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "new.client@example.com", me.Email)
		require.False(t, me.IsAdmin)
	})

	s.Run("duplicate email is rejected with 409", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:     "claire@example.com",
			Password:  "password123",
			FirstName: "Claire",
			LastName:  "Dupont",
			Phone:     "0612345678",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestTokenValidation() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", false)
		expired := s.jwtHelper.CreateExpiredToken(t, userID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("token forged with another secret is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "forged@example.com", false)

		forgedCfg := s.Config.JWT
		forgedCfg.Secret = "some-other-secret"
		forged := authtest.NewJWTHelper(forgedCfg).GenerateToken(t, userID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, forged)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestSessionFlow() {
	s.Run("login, me, logout", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "claire@example.com", dbtest.TestUserPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		authtest.LogoutUser(t, s.Router, []*http.Cookie{{Name: "access_token", Value: token}})

		// Without a token the boundary rejects the request
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
