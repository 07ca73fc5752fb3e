package http

import (
	"procurement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze vendors
// @Description Run a per-query vendor analysis over the snapshot sample
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analysis request"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analysis [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}

// @Summary Compliance report
// @Description Generate a compliance report over the full snapshot
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Report request"
// @Success 200 {object} model.ComplianceReport
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analysis/compliance [post]
func (h *handler) ComplianceReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ComplianceReport: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ComplianceReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ComplianceReport: usecase ComplianceReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Final analysis report
// @Description Run the analysis and compose the full decision report
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Report request"
// @Success 200 {object} model.FinalReport
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analysis/final-report [post]
func (h *handler) FinalReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.FinalReport: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.FinalReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.FinalReport: usecase FinalReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
