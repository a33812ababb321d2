package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/talentflow/talentflow/internal/models"
)

func roleRouter(injected string, allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) {
			if injected != "" {
				c.Set("role", injected)
			}
		},
		RequireRole(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	r := roleRouter(string(models.RoleRecruiter), models.RoleAdmin, models.RoleRecruiter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsUnlistedRole(t *testing.T) {
	r := roleRouter(string(models.RoleRecruiter), models.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	r := roleRouter("", models.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleMatchesCaseInsensitively(t *testing.T) {
	r := roleRouter("hiring manager", models.RoleHiringManager)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{string(models.RoleAdmin), http.StatusOK},
		{string(models.RoleRecruiter), http.StatusForbidden},
		{string(models.RoleHRManager), http.StatusForbidden},
	}

	for _, tc := range cases {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) { c.Set("role", tc.role) },
			RequireAdmin(),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, tc.want, w.Code, tc.role)
	}
}
