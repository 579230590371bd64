package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	tenantdomain "github.com/managekarlo/backoffice/internal/tenant/domain"
)

func (s *Server) GetSettings(c *gin.Context) {
	tenantID, _ := tenantctx.TenantIDFromContext(c.Request.Context())
	resp, err := s.tenantSvc.Get(c.Request.Context(), tenantID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req tenantdomain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tenantID, _ := tenantctx.TenantIDFromContext(c.Request.Context())
	resp, err := s.tenantSvc.UpdateSettings(c.Request.Context(), tenantID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
