package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/purduehcr/points-api/internal/ctxutil"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/export"
	"github.com/purduehcr/points-api/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCompetition streams an xlsx snapshot of the standings. Professional
// staff get every house; an RHP gets the standings plus their own house's
// logs.
func (h *Handler) ExportCompetition(c *gin.Context) {
	ctx, cancel := ctxutil.WithDBTimeout(ctxutil.WithOp(c.Request.Context(), "competition.export"))
	defer cancel()

	user, err := db.GetUser(ctx, h.DB, UserID(c))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	if err := db.VerifyUserHasCorrectPermission(user, []models.PermissionLevel{models.ProfessionalStaff, models.RHP}); err != nil {
		h.respondErr(c, err)
		return
	}

	houses, err := db.ListHouses(ctx, h.DB)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	exportHouses := houses
	if user.PermissionLevel == models.RHP {
		exportHouses = nil
		for _, house := range houses {
			if house.Name == user.HouseName() {
				exportHouses = append(exportHouses, house)
			}
		}
	}

	logsByHouse := make(map[string][]models.PointLog, len(exportHouses))
	for _, house := range exportHouses {
		logs, err := db.GetPointLogs(ctx, h.DB, house.Name, false)
		if err != nil {
			h.respondErr(c, err)
			return
		}
		logsByHouse[house.Name] = logs
	}

	pointTypes, err := db.ListPointTypes(ctx, h.DB, true)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	values := make(map[int]int, len(pointTypes))
	for _, pt := range pointTypes {
		values[pt.ID] = pt.Value
	}

	f, err := export.PointsWorkbook(houses, logsByHouse, values)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	filename := fmt.Sprintf("competition_%s.xlsx", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.Log.Sugar.Errorw("write export", "err", err)
	}
}
