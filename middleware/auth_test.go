package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gabeesh-social/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	now := time.Now()
	claims["exp"] = now.Add(time.Hour).Unix()
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)
	return token
}

func testRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username":   c.GetString("username"),
			"role":       c.GetString("role"),
			"votePower":  c.GetInt("votePower"),
			"superAdmin": c.GetBool("superAdmin"),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuthMiddlewareRedirectsAnonymous(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAuthMiddlewareLoadsSnapshot(t *testing.T) {
	r := testRouter()
	token := signToken(t, jwt.MapClaims{
		"username":   "adrian",
		"role":       "Leader",
		"votePower":  6,
		"muted":      false,
		"superAdmin": true,
	})

	// Bearer header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"adrian"`)
	assert.Contains(t, w.Body.String(), `"votePower":6`)

	// Session cookie works too
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGates(t *testing.T) {
	memberToken := signToken(t, jwt.MapClaims{
		"username": "member1", "role": "Member", "votePower": 1,
	})
	modToken := signToken(t, jwt.MapClaims{
		"username": "ish", "role": "Mod", "votePower": 4, "superAdmin": true,
	})
	leaderToken := signToken(t, jwt.MapClaims{
		"username": "lead", "role": "Leader", "votePower": 1,
	})

	do := func(r *gin.Engine, token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	modGate := testRouter(RequireModOrLeader())
	assert.Equal(t, http.StatusForbidden, do(modGate, memberToken))
	assert.Equal(t, http.StatusOK, do(modGate, modToken))
	assert.Equal(t, http.StatusOK, do(modGate, leaderToken))

	leaderGate := testRouter(RequireLeader())
	assert.Equal(t, http.StatusForbidden, do(leaderGate, modToken))
	assert.Equal(t, http.StatusOK, do(leaderGate, leaderToken))

	adminGate := testRouter(RequireSuperAdmin())
	assert.Equal(t, http.StatusForbidden, do(adminGate, memberToken))
	assert.Equal(t, http.StatusForbidden, do(adminGate, leaderToken))
	assert.Equal(t, http.StatusOK, do(adminGate, modToken))
}
