// file: internals/features/discipline/form_templates/controller/form_template_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	tplModel "schoolku_backend/internals/features/discipline/form_templates/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FormTemplateController struct{ DB *gorm.DB }

func NewFormTemplateController(db *gorm.DB) *FormTemplateController {
	return &FormTemplateController{DB: db}
}

var validateFormTemplate = validator.New()

// --- tenant guard fetch
func (h *FormTemplateController) findWithTenantGuard(id, schoolID uuid.UUID) (*tplModel.DisciplineFormTemplateModel, error) {
	var m tplModel.DisciplineFormTemplateModel
	if err := h.DB.
		Where("discipline_form_template_id = ? AND discipline_form_template_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load template")
	}
	return &m, nil
}

// Nama template unik per sekolah (rekan index uq_discipline_form_templates_school_name).
func (h *FormTemplateController) nameTaken(schoolID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	q := h.DB.Model(&tplModel.DisciplineFormTemplateModel{}).
		Where("discipline_form_template_school_id = ? AND discipline_form_template_name = ?", schoolID, name)
	if excludeID != uuid.Nil {
		q = q.Where("discipline_form_template_id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func parseTemplateID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid template id")
	}
	return id, nil
}

// ===================== LIST =====================
// GET /api/a/discipline/form-templates
func (h *FormTemplateController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q tplDTO.ListFormTemplateQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&tplModel.DisciplineFormTemplateModel{}).
		Where("discipline_form_template_school_id = ?", schoolID)
	if q.Active != nil {
		tx = tx.Where("discipline_form_template_is_active = ?", *q.Active)
	}
	if q.Q != nil {
		if needle := strings.TrimSpace(*q.Q); needle != "" {
			tx = tx.Where("discipline_form_template_name ILIKE ?", "%"+needle+"%")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load templates")
	}

	var rows []tplModel.DisciplineFormTemplateModel
	if err := tx.
		Order("discipline_form_template_is_default DESC, discipline_form_template_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load templates")
	}

	return helper.JsonList(c, "ok",
		tplDTO.NewFormTemplateResponseList(rows),
		helper.BuildPagination(paging, total, len(rows)),
	)
}

// ===================== DETAIL =====================
// GET /api/a/discipline/form-templates/:id
func (h *FormTemplateController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", tplDTO.NewFormTemplateResponse(m))
}

// ===================== CREATE =====================
// POST /api/a/discipline/form-templates
func (h *FormTemplateController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tplDTO.CreateFormTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// Gate sisi server: nama template & nama sekolah wajib — tanpa ini tidak ada write.
	if strings.TrimSpace(req.DisciplineFormTemplateName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Template name is required")
	}
	if req.SchoolInfo == nil || strings.TrimSpace(req.SchoolInfo.SchoolName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "School name is required")
	}

	if err := validateFormTemplate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	taken, err := h.nameTaken(schoolID, strings.TrimSpace(req.DisciplineFormTemplateName), uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Template name already in use")
	}

	m := req.ToModel(schoolID, helperAuth.GetUserNameFromToken(c))
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
	}

	return helper.JsonCreated(c, "Template created", tplDTO.NewFormTemplateResponse(m))
}

// ===================== UPDATE =====================
// PUT /api/a/discipline/form-templates/:id
func (h *FormTemplateController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tplDTO.UpdateFormTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// Nama tidak boleh dikosongkan lewat update
	if req.DisciplineFormTemplateName != nil && strings.TrimSpace(*req.DisciplineFormTemplateName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Template name is required")
	}
	if req.SchoolInfo != nil && strings.TrimSpace(req.SchoolInfo.SchoolName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "School name is required")
	}

	if err := validateFormTemplate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if req.DisciplineFormTemplateName != nil {
		taken, err := h.nameTaken(schoolID, strings.TrimSpace(*req.DisciplineFormTemplateName), id)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Template name already in use")
		}
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
	}

	return helper.JsonUpdated(c, "Template updated", tplDTO.NewFormTemplateResponse(existing))
}

// ===================== DELETE =====================
// DELETE /api/a/discipline/form-templates/:id (soft delete)
func (h *FormTemplateController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Template default tidak boleh dihapus; ganti default dulu.
	if existing.DisciplineFormTemplateIsDefault {
		return helper.JsonError(c, fiber.StatusConflict, "Default template cannot be deleted")
	}

	if err := h.DB.
		Where("discipline_form_template_id = ? AND discipline_form_template_school_id = ?", id, schoolID).
		Delete(&tplModel.DisciplineFormTemplateModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete template")
	}

	return helper.JsonDeleted(c, "Template deleted", fiber.Map{
		"discipline_form_template_id":            existing.DisciplineFormTemplateID,
		"discipline_form_template_forms_created": existing.DisciplineFormTemplateFormsCreated,
	})
}

// ===================== TOGGLE STATUS =====================
// PATCH /api/a/discipline/form-templates/:id/toggle-status
func (h *FormTemplateController) ToggleStatus(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Default aktif tidak boleh dinonaktifkan langsung
	if existing.DisciplineFormTemplateIsDefault && existing.DisciplineFormTemplateIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Default template cannot be deactivated")
	}

	newState := !existing.DisciplineFormTemplateIsActive
	if err := h.DB.Model(existing).
		Update("discipline_form_template_is_active", newState).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update template status")
	}
	existing.DisciplineFormTemplateIsActive = newState

	msg := "Template deactivated"
	if newState {
		msg = "Template activated"
	}
	return helper.JsonUpdated(c, msg, tplDTO.NewFormTemplateResponse(existing))
}

// ===================== SET DEFAULT =====================
// PATCH /api/a/discipline/form-templates/:id/set-default
//
// Invariant: setelah sukses, TEPAT SATU template per sekolah punya is_default=true.
// Dijalankan dalam satu transaksi: clear semua default lain, lalu set target.
func (h *FormTemplateController) SetDefault(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	existing, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !existing.DisciplineFormTemplateIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Inactive template cannot be set as default")
	}
	if existing.DisciplineFormTemplateIsDefault {
		// idempotent
		return helper.JsonUpdated(c, "Template is already the default", tplDTO.NewFormTemplateResponse(existing))
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tplModel.DisciplineFormTemplateModel{}).
			Where("discipline_form_template_school_id = ? AND discipline_form_template_id <> ?", schoolID, id).
			Update("discipline_form_template_is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&tplModel.DisciplineFormTemplateModel{}).
			Where("discipline_form_template_id = ?", id).
			Update("discipline_form_template_is_default", true).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to set default template")
	}

	existing.DisciplineFormTemplateIsDefault = true
	return helper.JsonUpdated(c, "Default template updated", tplDTO.NewFormTemplateResponse(existing))
}

// ===================== CLONE =====================
// POST /api/a/discipline/form-templates/:id/clone
func (h *FormTemplateController) Clone(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseTemplateID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	src, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// "Nama (Copy)", lalu "Nama (Copy 2)" dst bila sudah terpakai.
	copyName := src.DisciplineFormTemplateName + " (Copy)"
	for i := 2; ; i++ {
		taken, err := h.nameTaken(schoolID, copyName, uuid.Nil)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clone template")
		}
		if !taken {
			break
		}
		copyName = fmt.Sprintf("%s (Copy %d)", src.DisciplineFormTemplateName, i)
	}

	dup := tplModel.DisciplineFormTemplateModel{
		DisciplineFormTemplateSchoolID:        schoolID,
		DisciplineFormTemplateName:            copyName,
		DisciplineFormTemplateDescription:     src.DisciplineFormTemplateDescription,
		DisciplineFormTemplateIsActive:        src.DisciplineFormTemplateIsActive,
		DisciplineFormTemplateIsDefault:       false,
		DisciplineFormTemplateSchoolInfo:      src.DisciplineFormTemplateSchoolInfo,
		DisciplineFormTemplateFormConfig:      src.DisciplineFormTemplateFormConfig,
		DisciplineFormTemplateMisconductTypes: src.DisciplineFormTemplateMisconductTypes,
		DisciplineFormTemplateActionTypes:     src.DisciplineFormTemplateActionTypes,
		DisciplineFormTemplateInstructions:    src.DisciplineFormTemplateInstructions,
		DisciplineFormTemplateStyling:         src.DisciplineFormTemplateStyling,
		DisciplineFormTemplateFormsCreated:    0,
		DisciplineFormTemplateCreatedByName:   helperAuth.GetUserNameFromToken(c),
	}
	if err := h.DB.Create(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clone template")
	}

	return helper.JsonCreated(c, "Template cloned", tplDTO.NewFormTemplateResponse(&dup))
}
