package http

import (
	"procurement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List vendors
// @Description Filtered, paginated view over the current vendor snapshot
// @Tags Vendor
// @Accept json
// @Produce json
// @Param search query string false "Substring match on name or geography"
// @Param min_rating query number false "Minimum average rating (inclusive)"
// @Param max_price query number false "Maximum price (inclusive, first numeric token of pricing)"
// @Param location query string false "Substring match on geography"
// @Param compliant_only query bool false "Keep only compliant vendors"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 15)"
// @Success 200 {object} listVendorsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/vendors [get]
func (h *handler) ListVendors(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListVendorsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "vendor.delivery.http.ListVendors: processListVendorsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "vendor.delivery.http.ListVendors: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListVendorsResp(o))
}

// @Summary Refresh vendor data
// @Description Re-run the load cycle and replace the snapshot wholesale
// @Tags Vendor
// @Accept json
// @Produce json
// @Success 200 {object} refreshResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/vendors/refresh [post]
func (h *handler) RefreshVendors(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Refresh(ctx)
	if err != nil {
		h.l.Errorf(ctx, "vendor.delivery.http.RefreshVendors: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRefreshResp(o))
}

// @Summary Vendor analytics
// @Description Aggregated summary over the current vendor snapshot
// @Tags Vendor
// @Accept json
// @Produce json
// @Success 200 {object} model.AnalyticsSummary
// @Failure 404 {object} response.Resp
// @Router /api/v1/vendors/analytics [get]
func (h *handler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Analytics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "vendor.delivery.http.GetAnalytics: usecase Analytics failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
