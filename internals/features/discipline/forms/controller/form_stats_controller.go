// file: internals/features/discipline/forms/controller/form_stats_controller.go
package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	formDTO "schoolku_backend/internals/features/discipline/forms/dto"
	formModel "schoolku_backend/internals/features/discipline/forms/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FormStatsResponse struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByMonth      map[string]int `json:"by_month"`      // "2006-01" → count
	ByMisconduct map[string]int `json:"by_misconduct"` // label turunan → count
	Period       string         `json:"period"`
}

// ===================== STATS =====================
// GET /api/a/discipline/forms/stats?period=all|month|term
//
// Agregasi linear-scan di memori; skala panel admin, bukan untuk N besar.
func (h *FormController) Stats(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	period := strings.TrimSpace(c.Query("period", "all"))
	now := time.Now()

	tx := h.DB.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_school_id = ?", schoolID)
	switch period {
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		tx = tx.Where("discipline_form_created_at >= ?", monthStart)
	case "term":
		tx = tx.Where("discipline_form_created_at >= ?", now.AddDate(0, -4, 0))
	case "all", "":
		period = "all"
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid period")
	}

	var rows []formModel.DisciplineFormModel
	if err := tx.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load form statistics")
	}

	resp := FormStatsResponse{
		Total: len(rows),
		ByStatus: map[string]int{
			formModel.StatusDraft:              0,
			formModel.StatusSubmitted:          0,
			formModel.StatusAwaitingStudentAck: 0,
			formModel.StatusAwaitingParentAck:  0,
			formModel.StatusCompleted:          0,
		},
		ByMonth:      map[string]int{},
		ByMisconduct: map[string]int{},
		Period:       period,
	}

	for i := range rows {
		resp.ByStatus[rows[i].DisciplineFormStatus]++
		resp.ByMonth[rows[i].DisciplineFormCreatedAt.Format("2006-01")]++

		var mis formDTO.MisconductFlags
		_ = json.Unmarshal(rows[i].DisciplineFormMisconduct, &mis)
		for _, label := range mis.SelectedLabels() {
			// deskripsi bebas "Other: ..." dihitung sebagai satu bucket
			if strings.HasPrefix(label, "Other") {
				label = "Other"
			}
			resp.ByMisconduct[label]++
		}
	}

	return helper.JsonOK(c, "ok", resp)
}
