package sync

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	pkgLog "smart-scheduler/pkg/log"
	pkgResponse "smart-scheduler/pkg/response"
)

// Handler is the HTTP surface of the pull service.
type Handler interface {
	PullCalendar(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	svc Service
}

// NewHandler creates the sync HTTP handler.
func NewHandler(l pkgLog.Logger, svc Service) Handler {
	return &handler{l: l, svc: svc}
}

// RegisterRoutes maps the sync routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/sync/calendar", mw.Auth(), h.PullCalendar)
}

type pullReq struct {
	HorizonDays int `form:"horizon_days"`
}

type pullResp struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// PullCalendar godoc
// @Summary     Pull provider calendar events
// @Description Fetches upcoming Google Calendar events and upserts them into the local store, deduplicated by provider id.
// @Tags        Sync
// @Produce     json
// @Param       X-Owner-ID   header string true  "Owner identifier"
// @Param       horizon_days query  int    false "Days ahead to fetch (default: 30)"
// @Success     200 {object} pullResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync/calendar [POST]
func (h *handler) PullCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		pkgResponse.Unauthorized(c)
		return
	}

	var req pullReq
	if err := c.ShouldBindQuery(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	output, err := h.svc.PullCalendar(ctx, sc, PullInput{HorizonDays: req.HorizonDays})
	if err != nil {
		h.l.Errorf(ctx, "sync.delivery.http.PullCalendar: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, pullResp{
		Fetched: output.Fetched,
		Created: output.Created,
		Updated: output.Updated,
	})
}
