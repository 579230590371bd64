package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/managekarlo/backoffice/internal/report/domain"
)

func (s *Server) BuildReport(c *gin.Context) {
	var query struct {
		Period string `form:"period"`
		Anchor string `form:"anchor"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.reportSvc.BuildReport(c.Request.Context(), reportdomain.BuildReportRequest{
		Period: reportdomain.Period(strings.ToLower(strings.TrimSpace(query.Period))),
		Anchor: strings.TrimSpace(query.Anchor),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
