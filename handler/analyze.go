package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saranya-m1904/contract-risk-bot/middleware"
	"github.com/saranya-m1904/contract-risk-bot/model"
	"github.com/saranya-m1904/contract-risk-bot/service"
)

// Audit action labels, matching the persisted history format.
const (
	auditActionAnalyzed = "Contract analyzed"
	auditActionReport   = "PDF report generated"
)

type AnalyzeHandler struct {
	analyzer *service.Analyzer
	store    *service.AnalysisStore
	audit    *service.AuditLog
	archive  *service.ReportArchive
}

func NewAnalyzeHandler(analyzer *service.Analyzer, store *service.AnalysisStore, audit *service.AuditLog, archive *service.ReportArchive) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		store:    store,
		audit:    audit,
		archive:  archive,
	}
}

type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Analyze runs the full pipeline on submitted contract text.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contract text is required"})
		return
	}

	if err := h.audit.Append(auditActionAnalyzed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record audit entry: " + err.Error()})
		return
	}

	analysis := h.analyzer.Analyze(req.Text)
	analysis.ID = uuid.New().String()
	analysis.Tenant = middleware.GetTenant(c)
	h.store.Save(analysis)

	c.JSON(http.StatusOK, analysis)
}

// List returns summaries of the current tenant's analyses, newest first.
func (h *AnalyzeHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(analyses))
	for i, a := range analyses {
		result[i] = gin.H{
			"id":               a.ID,
			"contract_type":    a.ContractType,
			"clause_count":     len(a.Clauses),
			"composite_score":  a.CompositeScore,
			"score_applicable": a.ScoreApplicable,
			"created_at":       a.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns one full analysis.
func (h *AnalyzeHandler) Get(c *gin.Context) {
	analysis := h.tenantAnalysis(c)
	if analysis == nil {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Report renders the PDF risk report for one analysis and offers it as a
// download. Render failures surface as errors; no partial report is sent.
func (h *AnalyzeHandler) Report(c *gin.Context) {
	analysis := h.tenantAnalysis(c)
	if analysis == nil {
		return
	}

	var buf bytes.Buffer
	if err := service.RenderReport(analysis, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report: " + err.Error()})
		return
	}

	if err := h.audit.Append(auditActionReport); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record audit entry: " + err.Error()})
		return
	}

	// Archiving is best-effort; the download proceeds regardless.
	if h.archive.Enabled() {
		if err := h.archive.Store(c.Request.Context(), analysis.Tenant, analysis.ID, buf.Bytes()); err != nil {
			slog.Warn("failed to archive report",
				"analysis_id", analysis.ID,
				"request_id", middleware.GetRequestID(c),
				"error", err,
			)
		}
	}

	c.Header("Content-Disposition", `attachment; filename=`+service.ReportFilename)
	c.Data(http.StatusOK, service.ReportContentType, buf.Bytes())
}

// Delete removes one analysis from the store.
func (h *AnalyzeHandler) Delete(c *gin.Context) {
	analysis := h.tenantAnalysis(c)
	if analysis == nil {
		return
	}

	h.store.Delete(analysis.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}

// tenantAnalysis loads the :id analysis if it belongs to the caller's
// tenant, answering 404 otherwise.
func (h *AnalyzeHandler) tenantAnalysis(c *gin.Context) *model.Analysis {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return nil
	}
	return analysis
}
