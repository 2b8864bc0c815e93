package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saranya-m1904/contract-risk-bot/model"
	"github.com/saranya-m1904/contract-risk-bot/service"
)

type AuditHandler struct {
	audit *service.AuditLog
}

func NewAuditHandler(audit *service.AuditLog) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns the full action history. A missing log file is an explicit
// empty state; a corrupted one is surfaced as an error, never discarded.
func (h *AuditHandler) List(c *gin.Context) {
	entries, available, err := h.audit.Entries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if entries == nil {
		entries = []model.AuditEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"entries":   entries,
	})
}
