// file: internals/features/discipline/forms/controller/form_controller.go
package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	tplModel "schoolku_backend/internals/features/discipline/form_templates/model"
	formDTO "schoolku_backend/internals/features/discipline/forms/dto"
	formModel "schoolku_backend/internals/features/discipline/forms/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FormController struct{ DB *gorm.DB }

func NewFormController(db *gorm.DB) *FormController {
	return &FormController{DB: db}
}

var validateForm = validator.New()

// ===================== Utils =====================

func parseFormID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid form id")
	}
	return id, nil
}

// --- tenant guard fetch
func (h *FormController) findWithTenantGuard(id, schoolID uuid.UUID) (*formModel.DisciplineFormModel, error) {
	var m formModel.DisciplineFormModel
	if err := h.DB.
		Where("discipline_form_id = ? AND discipline_form_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Form not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load form")
	}
	return &m, nil
}

func decodeWorkflowSnapshot(m *formModel.DisciplineFormModel) tplDTO.WorkflowSettings {
	var ws tplDTO.WorkflowSettings
	_ = json.Unmarshal(m.DisciplineFormWorkflowSnapshot, &ws)
	return ws
}

// resolveTemplate memilih template sumber untuk form baru:
// id eksplisit → harus ada & aktif; tanpa id → default sekolah bila ada; sisanya nil (pakai bawaan).
func (h *FormController) resolveTemplate(schoolID uuid.UUID, explicit *uuid.UUID) (*tplModel.DisciplineFormTemplateModel, error) {
	if explicit != nil && *explicit != uuid.Nil {
		var t tplModel.DisciplineFormTemplateModel
		if err := h.DB.
			Where("discipline_form_template_id = ? AND discipline_form_template_school_id = ?", *explicit, schoolID).
			First(&t).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fiber.NewError(fiber.StatusNotFound, "Template not found")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load template")
		}
		if !t.DisciplineFormTemplateIsActive {
			return nil, fiber.NewError(fiber.StatusConflict, "Template is inactive")
		}
		return &t, nil
	}

	var t tplModel.DisciplineFormTemplateModel
	err := h.DB.
		Where("discipline_form_template_school_id = ? AND discipline_form_template_is_default = ? AND discipline_form_template_is_active = ?",
			schoolID, true, true).
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // tanpa template → pakai workflow bawaan
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load default template")
	}
	return &t, nil
}

// ===================== LIST =====================
// GET /api/a/discipline/forms
func (h *FormController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q formDTO.ListFormQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_school_id = ?", schoolID)
	if q.Status != nil {
		if s := strings.TrimSpace(*q.Status); s != "" {
			tx = tx.Where("discipline_form_status = ?", s)
		}
	}
	if q.Grade != nil {
		if g := strings.TrimSpace(*q.Grade); g != "" {
			tx = tx.Where("discipline_form_grade = ?", g)
		}
	}
	if q.Q != nil {
		if needle := strings.TrimSpace(*q.Q); needle != "" {
			pat := "%" + needle + "%"
			tx = tx.Where(
				"discipline_form_student_name ILIKE ? OR discipline_form_roll_number ILIKE ?",
				pat, pat,
			)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load forms")
	}

	var rows []formModel.DisciplineFormModel
	if err := tx.
		Order("discipline_form_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load forms")
	}

	return helper.JsonList(c, "ok",
		formDTO.NewFormResponseList(rows),
		helper.BuildPagination(paging, total, len(rows)),
	)
}

// ===================== DETAIL =====================
// GET /api/a/discipline/forms/:id (dengan preview turunan)
func (h *FormController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", formDTO.NewFormDetailResponse(m))
}

// ===================== CREATE (Save baru) =====================
// POST /api/a/discipline/forms — selalu mulai di draft.
func (h *FormController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req formDTO.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// Gate field wajib: SEMUA field yang kosong disebutkan sekaligus, tanpa write.
	if missing := req.MissingRequiredFields(); len(missing) > 0 {
		fieldErrors := make(map[string][]string, len(missing))
		for _, f := range missing {
			fieldErrors[f] = []string{"required"}
		}
		return helper.JsonValidationError(c,
			"Roll number, date of incident, and description of incident are required",
			fieldErrors)
	}

	if err := validateForm.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tpl, err := h.resolveTemplate(schoolID, req.DisciplineFormTemplateID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Snapshot workflow + nama sekolah dari template (atau bawaan bila tanpa template)
	ws := tplDTO.DefaultFormConfig().WorkflowSettings
	schoolName := ""
	if tpl != nil {
		// Template tanpa taksonomi tidak boleh dipakai membuat form.
		var misTypes []tplDTO.MisconductType
		var actTypes []tplDTO.ActionType
		_ = json.Unmarshal(tpl.DisciplineFormTemplateMisconductTypes, &misTypes)
		_ = json.Unmarshal(tpl.DisciplineFormTemplateActionTypes, &actTypes)
		if len(misTypes) == 0 || len(actTypes) == 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"Template has no misconduct or action types configured")
		}

		var cfg tplDTO.FormConfig
		_ = json.Unmarshal(tpl.DisciplineFormTemplateFormConfig, &cfg)
		ws = cfg.WorkflowSettings

		var info tplDTO.SchoolInfo
		_ = json.Unmarshal(tpl.DisciplineFormTemplateSchoolInfo, &info)
		schoolName = info.SchoolName
	}

	m := req.ToModel(schoolID, helperAuth.GetUserNameFromToken(c), role)
	m.DisciplineFormSchoolName = schoolName
	if raw, err := json.Marshal(ws); err == nil {
		m.DisciplineFormWorkflowSnapshot = raw
	}
	if tpl != nil {
		tid := tpl.DisciplineFormTemplateID
		m.DisciplineFormTemplateID = &tid
	} else {
		m.DisciplineFormTemplateID = nil
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if tpl != nil {
			// usage counter dipelihara server
			return tx.Model(&tplModel.DisciplineFormTemplateModel{}).
				Where("discipline_form_template_id = ?", tpl.DisciplineFormTemplateID).
				UpdateColumn("discipline_form_template_forms_created",
					gorm.Expr("discipline_form_template_forms_created + 1")).Error
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save form")
	}

	return helper.JsonCreated(c, "Form saved as draft", formDTO.NewFormResponse(m))
}

// ===================== UPDATE (Save edit) =====================
// PUT /api/a/discipline/forms/:id — TIDAK PERNAH mengubah status.
func (h *FormController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Form yang sudah selesai bersifat read-only.
	if existing.DisciplineFormStatus == formModel.StatusCompleted {
		return helper.JsonError(c, fiber.StatusConflict, "Completed form cannot be edited")
	}

	var req formDTO.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// Field wajib tidak boleh dikosongkan lewat update.
	var emptied []string
	if req.DisciplineFormRollNumber != nil && strings.TrimSpace(*req.DisciplineFormRollNumber) == "" {
		emptied = append(emptied, "discipline_form_roll_number")
	}
	if req.DisciplineFormDateOfIncident != nil && strings.TrimSpace(*req.DisciplineFormDateOfIncident) == "" {
		emptied = append(emptied, "discipline_form_date_of_incident")
	}
	if req.DisciplineFormDescriptionOfIncident != nil && strings.TrimSpace(*req.DisciplineFormDescriptionOfIncident) == "" {
		emptied = append(emptied, "discipline_form_description_of_incident")
	}
	if len(emptied) > 0 {
		fieldErrors := make(map[string][]string, len(emptied))
		for _, f := range emptied {
			fieldErrors[f] = []string{"required"}
		}
		return helper.JsonValidationError(c,
			"Roll number, date of incident, and description of incident are required",
			fieldErrors)
	}

	if err := validateForm.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save form")
	}

	return helper.JsonUpdated(c, "Form saved", formDTO.NewFormResponse(existing))
}

// ===================== SUBMIT =====================
// POST /api/a/discipline/forms/:id/submit — hanya dari draft.
// Endpoint ini butuh id tersimpan; form yang belum pernah di-save tidak bisa sampai ke sini.
func (h *FormController) Submit(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if existing.DisciplineFormStatus != formModel.StatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Only draft forms can be submitted")
	}

	ws := decodeWorkflowSnapshot(existing)
	now := time.Now()
	updates := map[string]interface{}{
		"discipline_form_status":       formDTO.NextStatusAfterSubmit(ws),
		"discipline_form_submitted_at": now,
	}
	if err := h.DB.Model(existing).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit form")
	}
	existing.DisciplineFormStatus = updates["discipline_form_status"].(string)
	existing.DisciplineFormSubmittedAt = &now

	return helper.JsonUpdated(c, "Form submitted. Student and parent have been notified",
		formDTO.NewFormResponse(existing))
}

// ===================== ACKNOWLEDGE =====================
// POST /api/u/discipline/forms/:id/acknowledge — role student/parent dari token.
func (h *FormController) Acknowledge(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ws := decodeWorkflowSnapshot(existing)
	now := time.Now()
	updates := map[string]interface{}{}

	switch role {
	case constants.RoleStudent:
		if existing.DisciplineFormStatus != formModel.StatusAwaitingStudentAck {
			return helper.JsonError(c, fiber.StatusConflict, "Form is not awaiting student acknowledgment")
		}
		updates["discipline_form_status"] = formDTO.NextStatusAfterStudentAck(ws)
		updates["discipline_form_student_ack_at"] = now
	case constants.RoleParent:
		if existing.DisciplineFormStatus != formModel.StatusAwaitingParentAck {
			return helper.JsonError(c, fiber.StatusConflict, "Form is not awaiting parent acknowledgment")
		}
		updates["discipline_form_status"] = formDTO.NextStatusAfterParentAck(ws)
		updates["discipline_form_parent_ack_at"] = now
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Only students and parents can acknowledge")
	}

	if updates["discipline_form_status"] == formModel.StatusCompleted {
		updates["discipline_form_completed_at"] = now
	}

	if err := h.DB.Model(existing).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to acknowledge form")
	}
	existing.DisciplineFormStatus = updates["discipline_form_status"].(string)

	return helper.JsonUpdated(c, "Acknowledgment recorded", formDTO.NewFormResponse(existing))
}

// ===================== COMPLETE =====================
// POST /api/a/discipline/forms/:id/complete — penutupan admin untuk form
// yang berhenti di "submitted" (require_admin_approval).
func (h *FormController) Complete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if existing.DisciplineFormStatus != formModel.StatusSubmitted {
		return helper.JsonError(c, fiber.StatusConflict, "Only submitted forms can be completed")
	}

	now := time.Now()
	if err := h.DB.Model(existing).Updates(map[string]interface{}{
		"discipline_form_status":       formModel.StatusCompleted,
		"discipline_form_completed_at": now,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete form")
	}
	existing.DisciplineFormStatus = formModel.StatusCompleted
	existing.DisciplineFormCompletedAt = &now

	return helper.JsonUpdated(c, "Form completed", formDTO.NewFormResponse(existing))
}

// ===================== DELETE =====================
// DELETE /api/a/discipline/forms/:id — hanya draft yang boleh dibuang.
// Soft delete; purge permanen dilakukan scheduler setelah lewat TTL.
func (h *FormController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseFormID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if existing.DisciplineFormStatus != formModel.StatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Only draft forms can be deleted")
	}

	if err := h.DB.Delete(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete form")
	}
	return helper.JsonDeleted(c, "Form deleted", fiber.Map{
		"discipline_form_id": existing.DisciplineFormID,
	})
}
