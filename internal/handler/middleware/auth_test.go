//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/middleware"
	middlewaremock "field-booking/internal/mock/middleware"
	"field-booking/internal/pkg/cookie"
	"field-booking/internal/pkg/jwt"
	"field-booking/internal/testing/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		opts       []httptest.Option
		setupMock  func(m *middlewaremock.MockTokenValidator)
		wantStatus int
		wantActor  *access.Actor
	}{
		{
			name: "bearer token",
			opts: []httptest.Option{httptest.WithBearer("good")},
			setupMock: func(m *middlewaremock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(&jwt.Claims{UserID: userID, Role: "owner"}, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  &access.Actor{ID: userID, Role: user.RoleOwner},
		},
		{
			name: "cookie token",
			opts: []httptest.Option{httptest.WithCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})},
			setupMock: func(m *middlewaremock.MockTokenValidator) {
				m.EXPECT().ValidateToken("from-cookie").Return(&jwt.Claims{UserID: userID, Role: "user"}, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  &access.Actor{ID: userID, Role: user.RoleUser},
		},
		{
			name:       "no token",
			setupMock:  func(*middlewaremock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			opts: []httptest.Option{httptest.WithBearer("stale")},
			setupMock: func(m *middlewaremock.MockTokenValidator) {
				m.EXPECT().ValidateToken("stale").Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown role claim",
			opts: []httptest.Option{httptest.WithBearer("odd")},
			setupMock: func(m *middlewaremock.MockTokenValidator) {
				m.EXPECT().ValidateToken("odd").Return(&jwt.Claims{UserID: userID, Role: "root"}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := middlewaremock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			var got *access.Actor
			router := httptest.NewTestEngine()
			router.GET("/private", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
				if actor, ok := middleware.GetActor(c); ok {
					got = &actor
				}
				c.Status(http.StatusOK)
			})

			w := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, tc.opts...)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantActor, got)
			if tc.wantStatus == http.StatusUnauthorized {
				httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "unauthenticated")
			}
		})
	}
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := middlewaremock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("broken").Return(nil, jwt.ErrInvalidToken)

	router := httptest.NewTestEngine()
	router.GET("/public", middleware.NewAuthMiddleware(validator).OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetActor(c)
		assert.False(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, httptest.WithBearer("broken"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
