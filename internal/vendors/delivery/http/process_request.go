package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListVendorsRequest(c *gin.Context) (listVendorsReq, error) {
	req := listVendorsReq{
		Search:        c.Query("search"),
		Location:      c.Query("location"),
		CompliantOnly: c.Query("compliant_only") == "true",
	}

	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errInvalidMinRating
		}
		req.MinRating = minRating
	}

	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errInvalidMaxPrice
		}
		req.MaxPrice = &maxPrice
	}

	req.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	req.Limit = int64(limit)

	return req, nil
}
