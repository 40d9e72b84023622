// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	SchoolStudentRollNumber         string `json:"school_student_roll_number" validate:"required,max=40"`
	SchoolStudentName               string `json:"school_student_name" validate:"required,max=160"`
	SchoolStudentGrade              string `json:"school_student_grade" validate:"omitempty,max=20"`
	SchoolStudentSection            string `json:"school_student_section" validate:"omitempty,max=20"`
	SchoolStudentParentGuardianName string `json:"school_student_parent_guardian_name" validate:"omitempty,max=160"`
	SchoolStudentContactNumber      string `json:"school_student_contact_number" validate:"omitempty,max=40"`
}

func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.SchoolStudentModel {
	return &model.SchoolStudentModel{
		SchoolStudentSchoolID:           schoolID,
		SchoolStudentRollNumber:         strings.TrimSpace(r.SchoolStudentRollNumber),
		SchoolStudentName:               strings.TrimSpace(r.SchoolStudentName),
		SchoolStudentGrade:              strings.TrimSpace(r.SchoolStudentGrade),
		SchoolStudentSection:            strings.TrimSpace(r.SchoolStudentSection),
		SchoolStudentParentGuardianName: strings.TrimSpace(r.SchoolStudentParentGuardianName),
		SchoolStudentContactNumber:      strings.TrimSpace(r.SchoolStudentContactNumber),
		SchoolStudentIsActive:           true,
	}
}

type UpdateStudentRequest struct {
	SchoolStudentRollNumber         *string `json:"school_student_roll_number" validate:"omitempty,max=40"`
	SchoolStudentName               *string `json:"school_student_name" validate:"omitempty,max=160"`
	SchoolStudentGrade              *string `json:"school_student_grade" validate:"omitempty,max=20"`
	SchoolStudentSection            *string `json:"school_student_section" validate:"omitempty,max=20"`
	SchoolStudentParentGuardianName *string `json:"school_student_parent_guardian_name" validate:"omitempty,max=160"`
	SchoolStudentContactNumber      *string `json:"school_student_contact_number" validate:"omitempty,max=40"`
	SchoolStudentIsActive           *bool   `json:"school_student_is_active" validate:"omitempty"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.SchoolStudentModel) {
	if r.SchoolStudentRollNumber != nil {
		m.SchoolStudentRollNumber = strings.TrimSpace(*r.SchoolStudentRollNumber)
	}
	if r.SchoolStudentName != nil {
		m.SchoolStudentName = strings.TrimSpace(*r.SchoolStudentName)
	}
	if r.SchoolStudentGrade != nil {
		m.SchoolStudentGrade = strings.TrimSpace(*r.SchoolStudentGrade)
	}
	if r.SchoolStudentSection != nil {
		m.SchoolStudentSection = strings.TrimSpace(*r.SchoolStudentSection)
	}
	if r.SchoolStudentParentGuardianName != nil {
		m.SchoolStudentParentGuardianName = strings.TrimSpace(*r.SchoolStudentParentGuardianName)
	}
	if r.SchoolStudentContactNumber != nil {
		m.SchoolStudentContactNumber = strings.TrimSpace(*r.SchoolStudentContactNumber)
	}
	if r.SchoolStudentIsActive != nil {
		m.SchoolStudentIsActive = *r.SchoolStudentIsActive
	}
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	SchoolStudentID                 uuid.UUID `json:"school_student_id"`
	SchoolStudentRollNumber         string    `json:"school_student_roll_number"`
	SchoolStudentName               string    `json:"school_student_name"`
	SchoolStudentGrade              string    `json:"school_student_grade,omitempty"`
	SchoolStudentSection            string    `json:"school_student_section,omitempty"`
	SchoolStudentParentGuardianName string    `json:"school_student_parent_guardian_name,omitempty"`
	SchoolStudentContactNumber      string    `json:"school_student_contact_number,omitempty"`
	SchoolStudentIsActive           bool      `json:"school_student_is_active"`
	SchoolStudentCreatedAt          time.Time `json:"school_student_created_at"`
}

func NewStudentResponse(m *model.SchoolStudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		SchoolStudentID:                 m.SchoolStudentID,
		SchoolStudentRollNumber:         m.SchoolStudentRollNumber,
		SchoolStudentName:               m.SchoolStudentName,
		SchoolStudentGrade:              m.SchoolStudentGrade,
		SchoolStudentSection:            m.SchoolStudentSection,
		SchoolStudentParentGuardianName: m.SchoolStudentParentGuardianName,
		SchoolStudentContactNumber:      m.SchoolStudentContactNumber,
		SchoolStudentIsActive:           m.SchoolStudentIsActive,
		SchoolStudentCreatedAt:          m.SchoolStudentCreatedAt,
	}
}

func NewStudentResponseList(ms []model.SchoolStudentModel) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewStudentResponse(&ms[i]))
	}
	return out
}
