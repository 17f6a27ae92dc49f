package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/ctxutil"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/metrics"
	"github.com/purduehcr/points-api/internal/models"
)

// SubmitPoint records a new point claim for the caller. Submissions by an
// RHP for themselves are pre-approved; everything else lands in the house
// approval queue.
func (h *Handler) SubmitPoint(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	pointTypeID, err := parseNumber(body["point_type_id"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	description, err := parseString(body["description"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	dateOccurred := h.now()
	if raw, ok := body["date_occurred"]; ok {
		s, err := parseString(raw)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			h.respondErr(c, models.IncorrectFormat())
			return
		}
		dateOccurred = t.In(h.Loc)
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "points.submit"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	log, err := db.CreatePointLog(ctx, h.DB, user, pointTypeID, description, dateOccurred)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(201, gin.H{"code": 201, "message": "Success", "point_log_id": log.ID})
}

// HandlePointLog approves or rejects a pending or previously handled log.
// approve arrives as the strings "true"/"false"; a rejection must carry a
// reason for the resident.
func (h *Handler) HandlePointLog(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	rawApprove, hasApprove := body["approve"]
	rawLogID, hasLogID := body["point_log_id"]
	if !hasApprove || rawApprove == "" || !hasLogID || rawLogID == "" {
		respond(c, models.MissingRequiredParameters())
		return
	}
	approveStr, ok := rawApprove.(string)
	if !ok || (approveStr != "true" && approveStr != "false") {
		respond(c, models.IncorrectFormat())
		return
	}
	approve := approveStr == "true"
	logID, ok := rawLogID.(string)
	if !ok {
		respond(c, models.IncorrectFormat())
		return
	}

	message := ""
	if !approve {
		m, ok := body["message"].(string)
		if !ok || m == "" {
			respond(c, models.MissingRequiredParameters())
			return
		}
		message = m
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "points.handle"))
	defer cancel()

	didUpdate, err := db.UpdatePointLogStatus(ctx, h.DB, approve, UserID(c), logID, message)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if didUpdate {
		outcome := "rejected"
		if approve {
			outcome = "approved"
		}
		metrics.LogsHandled.WithLabelValues(outcome).Inc()
	}
	respond(c, models.SuccessCreated())
}

// ListPointLogs returns a house's logs, newest first. RHPs see their own
// house; professional staff pick one with ?house=.
func (h *Handler) ListPointLogs(c *gin.Context) {
	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "points.logs"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}

	var house string
	switch user.PermissionLevel {
	case models.ProfessionalStaff:
		house = c.Query("house")
		if house == "" {
			respond(c, models.MissingRequiredParameters())
			return
		}
	case models.RHP:
		house = user.HouseName()
	default:
		respond(c, models.InvalidPermissionLevel())
		return
	}

	logs, err := db.GetPointLogs(ctx, h.DB, house, c.Query("pending") == "true")
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, gin.H{"point_logs": logs})
}

// messageThreadAccess resolves the caller, the house the log lives under and
// the log itself for the message endpoints.
func (h *Handler) messageThreadAccess(c *gin.Context, logID, houseParam string) (*models.User, *models.PointLog, error) {
	ctx, cancel := ctxutil.WithDBTimeout(c.Request.Context())
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		return nil, nil, err
	}
	allowed := []models.PermissionLevel{
		models.Resident, models.RHP, models.ProfessionalStaff, models.PrivilegedResident,
	}
	if err := db.VerifyUserHasCorrectPermission(user, allowed); err != nil {
		return nil, nil, err
	}

	house := user.HouseName()
	if user.PermissionLevel == models.ProfessionalStaff {
		if houseParam == "" {
			return nil, nil, models.MissingRequiredParameters()
		}
		house = houseParam
	}

	log, err := db.GetPointLog(ctx, h.DB, user, house, logID)
	if err != nil {
		return nil, nil, err
	}
	return user, log, nil
}

// PostPointLogMessage appends a comment to a log's thread and bumps the
// unread counters for the other side of the conversation.
func (h *Handler) PostPointLogMessage(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	logID, err := parseString(body["point_log_id"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	message, err := parseString(body["message"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	houseParam, _ := body["house"].(string)

	user, log, err := h.messageThreadAccess(c, logID, houseParam)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "points.messages.post"))
	defer cancel()

	msg := models.NewComment(user, message, h.now())
	notifyAll := user.PermissionLevel.In([]models.PermissionLevel{models.RHP, models.ProfessionalStaff})
	if err := db.SubmitPointLogMessage(ctx, h.DB, log.House, log.ID, msg, notifyAll); err != nil {
		h.respondErr(c, err)
		return
	}
	respond(c, models.Success())
}

// GetPointLogMessages returns a log's thread in chronological order.
func (h *Handler) GetPointLogMessages(c *gin.Context) {
	logID := c.Query("point_log_id")
	if logID == "" {
		respond(c, models.MissingRequiredParameters())
		return
	}

	_, log, err := h.messageThreadAccess(c, logID, c.Query("house"))
	if err != nil {
		h.respondErr(c, err)
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "points.messages.get"))
	defer cancel()

	msgs, err := db.GetPointLogMessages(ctx, h.DB, log.House, log.ID)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, gin.H{"messages": msgs})
}
