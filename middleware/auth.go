package middleware

import (
	"net/http"
	"strings"

	"gabeesh-social/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie carries the token for browser clients; API clients may
// send it as a Bearer header instead.
const SessionCookie = "session"

// Claims are the login-time snapshot of the account. They are not
// refreshed per request: role, vote power and mute changes only reach
// the session at the next login.
type Claims struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	VotePower  int    `json:"votePower"`
	Muted      bool   `json:"muted"`
	SuperAdmin bool   `json:"superAdmin"`
	jwt.RegisteredClaims
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
			return token
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware resolves the session. Anonymous requests are sent to
// the login page.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil || !token.Valid {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("votePower", claims.VotePower)
		c.Set("muted", claims.Muted)
		c.Set("superAdmin", claims.SuperAdmin)

		c.Next()
	}
}

func forbidden(c *gin.Context) {
	c.String(http.StatusForbidden, "Forbidden")
	c.Abort()
}

func RequireModOrLeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != "Mod" && role != "Leader" {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func RequireLeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "Leader" {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("superAdmin") {
			forbidden(c)
			return
		}
		c.Next()
	}
}
