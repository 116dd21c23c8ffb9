package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// processSyncReq binds the optional sync request body. An absent body
// means "sync today".
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, err
	}
	return req, nil
}
