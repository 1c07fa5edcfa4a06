package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-verification-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestUserContext_ValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(UserContext())
	r.GET("/test", func(c *gin.Context) {
		uid, _ := c.Get(CtxUserID)
		assert.Equal(t, int64(7), uid)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderUserID, "7")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserContext_MissingHeader(t *testing.T) {
	r := gin.New()
	r.Use(UserContext())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserContext_MalformedHeader(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0"} {
		r := gin.New()
		r.Use(UserContext())
		r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderUserID, raw)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "header %q should be rejected", raw)
	}
}

type stubTokenService struct {
	claims *ports.AdminClaims
	err    error
}

func (s *stubTokenService) Validate(string) (*ports.AdminClaims, error) {
	return s.claims, s.err
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := &stubTokenService{claims: &ports.AdminClaims{AdminID: 99, Role: "reviewer"}}

	r := gin.New()
	r.Use(JWTAuth(svc, zerolog.Nop()))
	r.GET("/test", func(c *gin.Context) {
		aid, _ := c.Get(CtxAdminID)
		assert.Equal(t, int64(99), aid)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	svc := &stubTokenService{claims: &ports.AdminClaims{AdminID: 99}}

	r := gin.New()
	r.Use(JWTAuth(svc, zerolog.Nop()))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	svc := &stubTokenService{err: assert.AnError}

	r := gin.New()
	r.Use(JWTAuth(svc, zerolog.Nop()))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecovery_Panic(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_003")
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(8))
	r.POST("/test", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"key":"a value well over the limit"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
