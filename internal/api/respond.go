package api

import (
	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/models"
	"github.com/purduehcr/points-api/internal/observability"
	"go.uber.org/zap"
)

func respond(c *gin.Context, resp *models.APIResponse) {
	c.JSON(resp.Code, resp.JSON())
}

func abort(c *gin.Context, resp *models.APIResponse) {
	c.AbortWithStatusJSON(resp.Code, resp.JSON())
}

// respondErr writes the one terminal response for a failed request.
// Classified results pass through as-is; anything else is logged, captured
// and reported as a generic server error.
func (h *Handler) respondErr(c *gin.Context, err error) {
	if resp := models.AsAPIResponse(err); resp != nil {
		respond(c, resp)
		return
	}
	h.Log.Base.Error("unclassified handler error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	observability.CaptureErr(err)
	respond(c, models.ServerError())
}
