package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/managekarlo/backoffice/internal/form"
	stockdomain "github.com/managekarlo/backoffice/internal/stock/domain"
)

func (s *Server) GetStockQuantity(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	qty, err := s.ledger.CurrentQuantity(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"product_id": id,
		"quantity":   qty,
	}})
}

func (s *Server) GetStockHistory(c *gin.Context) {
	resp, err := s.ledger.History(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AdjustStock(c *gin.Context) {
	var req struct {
		Type      string `json:"type"`
		Quantity  string `json:"quantity"`
		Reference string `json:"reference_id"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	productID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, stockdomain.ErrInvalidID)
		return
	}

	txType := stockdomain.TransactionType(strings.ToLower(strings.TrimSpace(req.Type)))
	if txType == "" {
		txType = stockdomain.TransactionAdjustment
	}

	resp, err := s.ledger.Adjust(c.Request.Context(), stockdomain.AppendRequest{
		ProductID:   productID.Int64(),
		Type:        txType,
		Quantity:    form.Amount(req.Quantity),
		ReferenceID: strings.TrimSpace(req.Reference),
		Notes:       strings.TrimSpace(req.Notes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
