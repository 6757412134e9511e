package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIdentRequired = errors.New("ident is required")

// processCreateReq binds and validates the create request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Ident = c.Param("ident")
	if req.Ident == "" {
		return req, errIdentRequired
	}
	return req, req.validate()
}

// processCompleteReq reads the URI param.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	req := completeReq{Ident: c.Param("ident")}
	if req.Ident == "" {
		return req, errIdentRequired
	}
	return req, nil
}
