package api

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/config"
	"github.com/purduehcr/points-api/internal/logging"
)

// Handler carries the shared dependencies of every route.
type Handler struct {
	DB  *sql.DB
	Log *logging.Log
	Loc *time.Location
}

func (h *Handler) now() time.Time {
	if h.Loc != nil {
		return time.Now().In(h.Loc)
	}
	return time.Now()
}

// NewRouter builds the public HTTP surface. Everything sits behind bearer
// auth; health and metrics live on the separate ops listener.
func NewRouter(cfg *config.Config, database *sql.DB, log *logging.Log) *gin.Engine {
	if strings.EqualFold(cfg.Env, "prod") {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery(), Prometheus())

	h := &Handler{DB: database, Log: log, Loc: cfg.Location}
	authed := r.Group("/", Auth([]byte(cfg.JWTSecret)))

	points := authed.Group("/points")
	points.POST("/submit", h.SubmitPoint)
	points.POST("/handle", h.HandlePointLog)
	points.GET("/logs", h.ListPointLogs)
	points.POST("/messages", h.PostPointLogMessage)
	points.GET("/messages", h.GetPointLogMessages)

	codes := authed.Group("/house-codes")
	codes.GET("", h.ListHouseCodes)
	codes.POST("/refresh", h.RefreshHouseCodes)
	codes.GET("/preview", h.PreviewHouseCode)

	links := authed.Group("/links")
	links.GET("", h.GetLink)
	links.POST("/create", h.CreateLink)
	links.PUT("/update", h.UpdateLink)

	authed.GET("/competition/export", h.ExportCompetition)

	return r
}
