package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-jwt-middleware"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func organizerClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":      "user-7",
		"email":        "organizer@example.com",
		"role":         "organizer",
		"organizer_id": "org-42",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
}

// layoutRouter guards a designer route the way the server does and
// echoes the identity the middleware injected.
func layoutRouter(config *JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(JWTMiddleware(config))
	router.GET("/events/:event_id/layout", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetEmail(c)
		role, _ := GetRole(c)
		organizerID, _ := GetOrganizerID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":      userID,
			"email":        email,
			"role":         role,
			"organizer_id": organizerID,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func get(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware_InjectsIdentity(t *testing.T) {
	router := layoutRouter(&JWTConfig{Secret: testSecret})
	token := signToken(t, organizerClaims(), testSecret)

	w := get(router, "/events/event-1/layout", "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var identity map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &identity); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if identity["user_id"] != "user-7" {
		t.Errorf("expected user_id 'user-7', got %q", identity["user_id"])
	}
	if identity["email"] != "organizer@example.com" {
		t.Errorf("expected email 'organizer@example.com', got %q", identity["email"])
	}
	if identity["role"] != "organizer" {
		t.Errorf("expected role 'organizer', got %q", identity["role"])
	}
	if identity["organizer_id"] != "org-42" {
		t.Errorf("expected organizer_id 'org-42', got %q", identity["organizer_id"])
	}
}

func TestJWTMiddleware_Rejections(t *testing.T) {
	router := layoutRouter(&JWTConfig{Secret: testSecret})

	expired := organizerClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	anonymous := organizerClaims()
	delete(anonymous, "user_id")

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"malformed token", "Bearer not-a-valid-jwt"},
		{"expired token", "Bearer " + signToken(t, expired, testSecret)},
		{"wrong secret", "Bearer " + signToken(t, organizerClaims(), "wrong-secret")},
		{"missing user_id claim", "Bearer " + signToken(t, anonymous, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/events/event-1/layout", tt.authorization)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	router := layoutRouter(&JWTConfig{
		Secret:    testSecret,
		SkipPaths: []string{"/health"},
	})

	if w := get(router, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("expected skip path to bypass auth, got status %d", w.Code)
	}
	if w := get(router, "/events/event-1/layout", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected guarded path to require auth, got status %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	newRouter := func(roles ...string) *gin.Engine {
		router := gin.New()
		router.Use(JWTMiddleware(&JWTConfig{Secret: testSecret}))
		router.DELETE("/maps/:id", RequireRole(roles...), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
		})
		return router
	}

	deleteMap := func(router *gin.Engine, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/maps/map-1", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("organizer allowed", func(t *testing.T) {
		router := newRouter("organizer", "admin")
		w := deleteMap(router, signToken(t, organizerClaims(), testSecret))
		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("viewer forbidden", func(t *testing.T) {
		router := newRouter("organizer", "admin")
		claims := organizerClaims()
		claims["role"] = "viewer"
		w := deleteMap(router, signToken(t, claims, testSecret))
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := gin.New()
		router.DELETE("/maps/:id", RequireRole("organizer"), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})
		w := deleteMap(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestContextAccessors(t *testing.T) {
	t.Run("values set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextKeyUserID, "user-7")
		c.Set(ContextKeyEmail, "organizer@example.com")
		c.Set(ContextKeyRole, "organizer")
		c.Set(ContextKeyOrganizerID, "org-42")

		if id, ok := GetUserID(c); !ok || id != "user-7" {
			t.Errorf("GetUserID = %q, %v", id, ok)
		}
		if email, ok := GetEmail(c); !ok || email != "organizer@example.com" {
			t.Errorf("GetEmail = %q, %v", email, ok)
		}
		if role, ok := GetRole(c); !ok || role != "organizer" {
			t.Errorf("GetRole = %q, %v", role, ok)
		}
		if org, ok := GetOrganizerID(c); !ok || org != "org-42" {
			t.Errorf("GetOrganizerID = %q, %v", org, ok)
		}
	})

	t.Run("values unset", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		if _, ok := GetUserID(c); ok {
			t.Error("expected GetUserID to report missing")
		}
		if _, ok := GetOrganizerID(c); ok {
			t.Error("expected GetOrganizerID to report missing")
		}
	})
}
