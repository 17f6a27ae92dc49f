package api

import (
	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/ctxutil"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/models"
)

// ListHouseCodes returns the registration codes the caller may see: staff
// see everything, RHPs and faculty the codes of their own house.
func (h *Handler) ListHouseCodes(c *gin.Context) {
	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "housecodes.list"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	codes, err := db.GetViewableHouseCodes(ctx, h.DB, user)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, gin.H{"house_codes": codes})
}

// RefreshHouseCodes rotates the random code string. With an id in the body
// a single code is rotated (an RHP only within their own house); without
// one, professional staff rotate every code at once.
func (h *Handler) RefreshHouseCodes(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "housecodes.refresh"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}

	raw, hasID := body["id"]
	if !hasID {
		if err := db.VerifyUserHasCorrectPermission(user, []models.PermissionLevel{models.ProfessionalStaff}); err != nil {
			h.respondErr(c, err)
			return
		}
		codes, err := db.GetViewableHouseCodes(ctx, h.DB, user)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		if err := db.RefreshHouseCodes(ctx, h.DB, codes); err != nil {
			h.respondErr(c, err)
			return
		}
		refreshed, err := db.GetViewableHouseCodes(ctx, h.DB, user)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		c.JSON(200, gin.H{"house_codes": refreshed})
		return
	}

	if err := db.VerifyUserHasCorrectPermission(user, []models.PermissionLevel{models.ProfessionalStaff, models.RHP}); err != nil {
		h.respondErr(c, err)
		return
	}
	id, err := parseString(raw)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	code, err := db.GetHouseCodeByID(ctx, h.DB, id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if user.PermissionLevel == models.RHP && code.House != user.HouseName() {
		respond(c, models.InvalidPermissionLevel())
		return
	}
	if err := db.RefreshHouseCode(ctx, h.DB, code); err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(200, gin.H{"house_codes": []models.HouseCode{*code}})
}

// PreviewHouseCode resolves a raw code string to what an account created
// with it would look like, so the signup flow can show the house first.
func (h *Handler) PreviewHouseCode(c *gin.Context) {
	raw := c.Query("code")
	if raw == "" {
		respond(c, models.MissingRequiredParameters())
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "housecodes.preview"))
	defer cancel()

	code, err := db.GetHouseCodeByCode(ctx, h.DB, raw)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	resp := gin.H{"house_code": code}
	if code.House != "" {
		house, err := db.GetHouse(ctx, h.DB, code.House)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		resp["house"] = house
	}
	c.JSON(200, resp)
}
