// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "schoolku_backend/internals/features/school/students/dto"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentController struct{ DB *gorm.DB }

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validateStudent = validator.New()

func (h *StudentController) findWithTenantGuard(id, schoolID uuid.UUID) (*studentModel.SchoolStudentModel, error) {
	var m studentModel.SchoolStudentModel
	if err := h.DB.
		Where("school_student_id = ? AND school_student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}
	return &m, nil
}

func parseStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	return id, nil
}

// ===================== LIST =====================
// GET /api/a/school/students?q= — dipakai autocomplete pada form pelanggaran
func (h *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&studentModel.SchoolStudentModel{}).
		Where("school_student_school_id = ?", schoolID).
		Where("school_student_is_active = ?", true)

	if needle := strings.TrimSpace(c.Query("q")); needle != "" {
		like := needle + "%"
		tx = tx.Where("school_student_roll_number ILIKE ? OR school_student_name ILIKE ?", like, like)
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		tx = tx.Where("school_student_grade = ?", grade)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	var rows []studentModel.SchoolStudentModel
	if err := tx.
		Order("school_student_roll_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonList(c, "ok",
		studentDTO.NewStudentResponseList(rows),
		helper.BuildPagination(paging, total, len(rows)),
	)
}

// ===================== CREATE =====================
// POST /api/a/school/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Roll number unik per sekolah (soft delete tidak dihitung)
	var dupe int64
	if err := h.DB.Model(&studentModel.SchoolStudentModel{}).
		Where("school_student_school_id = ? AND school_student_roll_number = ?",
			schoolID, strings.TrimSpace(req.SchoolStudentRollNumber)).
		Count(&dupe).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}
	if dupe > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Roll number already registered")
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}
	return helper.JsonCreated(c, "Student created", studentDTO.NewStudentResponse(m))
}

// ===================== UPDATE =====================
// PUT /api/a/school/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if req.SchoolStudentRollNumber != nil {
		if strings.TrimSpace(*req.SchoolStudentRollNumber) == "" {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Roll number is required")
		}
	}
	if req.SchoolStudentName != nil && strings.TrimSpace(*req.SchoolStudentName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Student name is required")
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}
	return helper.JsonUpdated(c, "Student updated", studentDTO.NewStudentResponse(m))
}

// ===================== DELETE =====================
// DELETE /api/a/school/students/:id (soft delete)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := h.findWithTenantGuard(id, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{
		"school_student_id": m.SchoolStudentID,
	})
}
