package api

import (
	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/ctxutil"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/models"
)

// GetLink looks up a single link by id.
func (h *Handler) GetLink(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respond(c, models.MissingRequiredParameters())
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "links.get"))
	defer cancel()

	link, err := db.GetLinkByID(ctx, h.DB, id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, link)
}

// CreateLink mints a shareable claim for a point type. Non-staff creators
// may only build links for point types at their own permission level.
func (h *Handler) CreateLink(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	description, err := parseString(body["description"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	pointTypeID, err := parseNumber(body["point_id"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	singleUse, err := parseBool(body["single_use"])
	if err != nil {
		h.respondErr(c, err)
		return
	}
	enabled, err := parseBool(body["is_enabled"])
	if err != nil {
		h.respondErr(c, err)
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "links.create"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	allowed := []models.PermissionLevel{
		models.RHP, models.ProfessionalStaff, models.Faculty,
		models.PrivilegedResident, models.ExternalAdvisor,
	}
	if err := db.VerifyUserHasCorrectPermission(user, allowed); err != nil {
		h.respondErr(c, err)
		return
	}

	link, err := db.CreateLink(ctx, h.DB, user, pointTypeID, singleUse, enabled, description)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, link)
}

// UpdateLink applies the optional fields present in the body to a link the
// caller owns.
func (h *Handler) UpdateLink(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	id, err := parseString(body["link_id"])
	if err != nil {
		h.respondErr(c, err)
		return
	}

	var upd models.LinkUpdate
	if raw, ok := body["archived"]; ok {
		v, err := parseBool(raw)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		upd.Archived = &v
	}
	if raw, ok := body["enabled"]; ok {
		v, err := parseBool(raw)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		upd.Enabled = &v
	}
	if raw, ok := body["description"]; ok {
		v, err := parseString(raw)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		upd.Description = &v
	}
	if raw, ok := body["single_use"]; ok {
		v, err := parseBool(raw)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		upd.SingleUse = &v
	}
	if upd.Empty() {
		respond(c, models.MissingRequiredParameters())
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "links.update"))
	defer cancel()

	link, err := db.GetLinkByID(ctx, h.DB, id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if link.CreatorID != UserID(c) {
		respond(c, models.LinkDoesntBelongToUser())
		return
	}
	if err := db.UpdateLink(ctx, h.DB, id, upd); err != nil {
		h.respondErr(c, err)
		return
	}
	respond(c, models.Success())
}
