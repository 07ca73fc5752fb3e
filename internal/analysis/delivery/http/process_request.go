package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errQueryRequired
	}

	return req, nil
}
