// file: internals/features/discipline/forms/dto/form_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	model "schoolku_backend/internals/features/discipline/forms/model"
)

/* ===================== FIXED TAXONOMY (flag boolean) ===================== */

// Catatan: taksonomi form ini TETAP (bukan daftar configurable milik template).
// Form menyimpan referensi template + snapshot workflow-nya, tapi checkbox-nya
// taksonomi paralel yang dibakukan.

type MisconductFlags struct {
	DisruptiveBehavior         bool   `json:"disruptive_behavior"`
	DisrespectToStaff          bool   `json:"disrespect_to_staff"`
	BullyingHarassment         bool   `json:"bullying_harassment"`
	Fighting                   bool   `json:"fighting"`
	VandalismPropertyDamage    bool   `json:"vandalism_property_damage"`
	CheatingAcademicDishonesty bool   `json:"cheating_academic_dishonesty"`
	SkippingClasses            bool   `json:"skipping_classes"`
	DressCodeViolation         bool   `json:"dress_code_violation"`
	PhoneUseViolation          bool   `json:"phone_use_violation"`
	Other                      bool   `json:"other"`
	OtherDescription           string `json:"other_description,omitempty"`
}

type SuspensionDetail struct {
	Selected     bool `json:"selected"`
	NumberOfDays int  `json:"number_of_days" validate:"omitempty,min=0"`
}

type ActionTakenFlags struct {
	VerbalWarning      bool             `json:"verbal_warning"`
	WrittenWarning     bool             `json:"written_warning"`
	ParentConference   bool             `json:"parent_conference"`
	Detention          bool             `json:"detention"`
	CounselingReferral bool             `json:"counseling_referral"`
	CommunityService   bool             `json:"community_service"`
	Suspension         SuspensionDetail `json:"suspension"`
	Other              bool             `json:"other"`
	OtherDescription   string           `json:"other_description,omitempty"`
}

/* ===================== REQUESTS ===================== */

// Create: school_id & created_by_* diambil dari token oleh controller.
// Status SELALU mulai dari draft — tidak bisa di-set lewat body.
type CreateFormRequest struct {
	DisciplineFormTemplateID *uuid.UUID `json:"discipline_form_template_id" validate:"omitempty"`

	DisciplineFormRollNumber         string `json:"discipline_form_roll_number" validate:"omitempty,max=40"`
	DisciplineFormStudentName        string `json:"discipline_form_student_name" validate:"omitempty,max=160"`
	DisciplineFormGrade              string `json:"discipline_form_grade" validate:"omitempty,max=20"`
	DisciplineFormSection            string `json:"discipline_form_section" validate:"omitempty,max=20"`
	DisciplineFormParentGuardianName string `json:"discipline_form_parent_guardian_name" validate:"omitempty,max=160"`
	DisciplineFormContactNumber      string `json:"discipline_form_contact_number" validate:"omitempty,max=40"`

	DisciplineFormDateOfIncident        string `json:"discipline_form_date_of_incident" validate:"omitempty,datetime=2006-01-02"`
	DisciplineFormTimeOfIncident        string `json:"discipline_form_time_of_incident" validate:"omitempty,max=8"`
	DisciplineFormLocation              string `json:"discipline_form_location" validate:"omitempty,max=200"`
	DisciplineFormReportingStaffName    string `json:"discipline_form_reporting_staff_name" validate:"omitempty,max=160"`
	DisciplineFormDescriptionOfIncident string `json:"discipline_form_description_of_incident" validate:"omitempty"`

	Misconduct  *MisconductFlags  `json:"discipline_form_misconduct" validate:"omitempty"`
	ActionTaken *ActionTakenFlags `json:"discipline_form_action_taken" validate:"omitempty"`

	DisciplineFormFollowUpRequired bool   `json:"discipline_form_follow_up_required"`
	DisciplineFormFollowUpDate     string `json:"discipline_form_follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	DisciplineFormFollowUpNotes    string `json:"discipline_form_follow_up_notes"`
}

// MissingRequiredFields mengembalikan field wajib yang kosong
// (roll number, date of incident, description of incident).
func (r CreateFormRequest) MissingRequiredFields() []string {
	var missing []string
	if strings.TrimSpace(r.DisciplineFormRollNumber) == "" {
		missing = append(missing, "discipline_form_roll_number")
	}
	if strings.TrimSpace(r.DisciplineFormDateOfIncident) == "" {
		missing = append(missing, "discipline_form_date_of_incident")
	}
	if strings.TrimSpace(r.DisciplineFormDescriptionOfIncident) == "" {
		missing = append(missing, "discipline_form_description_of_incident")
	}
	return missing
}

func (r CreateFormRequest) ToModel(schoolID uuid.UUID, createdByName, createdByRole string) *model.DisciplineFormModel {
	mis := MisconductFlags{}
	if r.Misconduct != nil {
		mis = *r.Misconduct
	}
	act := ActionTakenFlags{}
	if r.ActionTaken != nil {
		act = *r.ActionTaken
	}

	return &model.DisciplineFormModel{
		DisciplineFormSchoolID:   schoolID,
		DisciplineFormTemplateID: r.DisciplineFormTemplateID,

		DisciplineFormRollNumber:         strings.TrimSpace(r.DisciplineFormRollNumber),
		DisciplineFormStudentName:        strings.TrimSpace(r.DisciplineFormStudentName),
		DisciplineFormGrade:              strings.TrimSpace(r.DisciplineFormGrade),
		DisciplineFormSection:            strings.TrimSpace(r.DisciplineFormSection),
		DisciplineFormParentGuardianName: strings.TrimSpace(r.DisciplineFormParentGuardianName),
		DisciplineFormContactNumber:      strings.TrimSpace(r.DisciplineFormContactNumber),

		DisciplineFormDateOfIncident:        strings.TrimSpace(r.DisciplineFormDateOfIncident),
		DisciplineFormTimeOfIncident:        strings.TrimSpace(r.DisciplineFormTimeOfIncident),
		DisciplineFormLocation:              strings.TrimSpace(r.DisciplineFormLocation),
		DisciplineFormReportingStaffName:    strings.TrimSpace(r.DisciplineFormReportingStaffName),
		DisciplineFormDescriptionOfIncident: strings.TrimSpace(r.DisciplineFormDescriptionOfIncident),

		DisciplineFormMisconduct:  mustJSON(mis),
		DisciplineFormActionTaken: mustJSON(act),

		DisciplineFormFollowUpRequired: r.DisciplineFormFollowUpRequired,
		DisciplineFormFollowUpDate:     strings.TrimSpace(r.DisciplineFormFollowUpDate),
		DisciplineFormFollowUpNotes:    strings.TrimSpace(r.DisciplineFormFollowUpNotes),

		DisciplineFormStatus:        model.StatusDraft,
		DisciplineFormCreatedByName: strings.TrimSpace(createdByName),
		DisciplineFormCreatedByRole: strings.TrimSpace(createdByRole),
	}
}

// Update (partial): Save TIDAK PERNAH mengubah status — tidak ada field status di sini.
type UpdateFormRequest struct {
	DisciplineFormRollNumber         *string `json:"discipline_form_roll_number" validate:"omitempty,max=40"`
	DisciplineFormStudentName        *string `json:"discipline_form_student_name" validate:"omitempty,max=160"`
	DisciplineFormGrade              *string `json:"discipline_form_grade" validate:"omitempty,max=20"`
	DisciplineFormSection            *string `json:"discipline_form_section" validate:"omitempty,max=20"`
	DisciplineFormParentGuardianName *string `json:"discipline_form_parent_guardian_name" validate:"omitempty,max=160"`
	DisciplineFormContactNumber      *string `json:"discipline_form_contact_number" validate:"omitempty,max=40"`

	DisciplineFormDateOfIncident        *string `json:"discipline_form_date_of_incident" validate:"omitempty,datetime=2006-01-02"`
	DisciplineFormTimeOfIncident        *string `json:"discipline_form_time_of_incident" validate:"omitempty,max=8"`
	DisciplineFormLocation              *string `json:"discipline_form_location" validate:"omitempty,max=200"`
	DisciplineFormReportingStaffName    *string `json:"discipline_form_reporting_staff_name" validate:"omitempty,max=160"`
	DisciplineFormDescriptionOfIncident *string `json:"discipline_form_description_of_incident" validate:"omitempty"`

	Misconduct  *MisconductFlags  `json:"discipline_form_misconduct" validate:"omitempty"`
	ActionTaken *ActionTakenFlags `json:"discipline_form_action_taken" validate:"omitempty"`

	DisciplineFormFollowUpRequired *bool   `json:"discipline_form_follow_up_required" validate:"omitempty"`
	DisciplineFormFollowUpDate     *string `json:"discipline_form_follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	DisciplineFormFollowUpNotes    *string `json:"discipline_form_follow_up_notes" validate:"omitempty"`
}

// ApplyToModel: terapkan hanya field yang dikirim.
func (r *UpdateFormRequest) ApplyToModel(m *model.DisciplineFormModel) {
	if r.DisciplineFormRollNumber != nil {
		m.DisciplineFormRollNumber = strings.TrimSpace(*r.DisciplineFormRollNumber)
	}
	if r.DisciplineFormStudentName != nil {
		m.DisciplineFormStudentName = strings.TrimSpace(*r.DisciplineFormStudentName)
	}
	if r.DisciplineFormGrade != nil {
		m.DisciplineFormGrade = strings.TrimSpace(*r.DisciplineFormGrade)
	}
	if r.DisciplineFormSection != nil {
		m.DisciplineFormSection = strings.TrimSpace(*r.DisciplineFormSection)
	}
	if r.DisciplineFormParentGuardianName != nil {
		m.DisciplineFormParentGuardianName = strings.TrimSpace(*r.DisciplineFormParentGuardianName)
	}
	if r.DisciplineFormContactNumber != nil {
		m.DisciplineFormContactNumber = strings.TrimSpace(*r.DisciplineFormContactNumber)
	}
	if r.DisciplineFormDateOfIncident != nil {
		m.DisciplineFormDateOfIncident = strings.TrimSpace(*r.DisciplineFormDateOfIncident)
	}
	if r.DisciplineFormTimeOfIncident != nil {
		m.DisciplineFormTimeOfIncident = strings.TrimSpace(*r.DisciplineFormTimeOfIncident)
	}
	if r.DisciplineFormLocation != nil {
		m.DisciplineFormLocation = strings.TrimSpace(*r.DisciplineFormLocation)
	}
	if r.DisciplineFormReportingStaffName != nil {
		m.DisciplineFormReportingStaffName = strings.TrimSpace(*r.DisciplineFormReportingStaffName)
	}
	if r.DisciplineFormDescriptionOfIncident != nil {
		m.DisciplineFormDescriptionOfIncident = strings.TrimSpace(*r.DisciplineFormDescriptionOfIncident)
	}
	if r.Misconduct != nil {
		m.DisciplineFormMisconduct = mustJSON(*r.Misconduct)
	}
	if r.ActionTaken != nil {
		m.DisciplineFormActionTaken = mustJSON(*r.ActionTaken)
	}
	if r.DisciplineFormFollowUpRequired != nil {
		m.DisciplineFormFollowUpRequired = *r.DisciplineFormFollowUpRequired
	}
	if r.DisciplineFormFollowUpDate != nil {
		m.DisciplineFormFollowUpDate = strings.TrimSpace(*r.DisciplineFormFollowUpDate)
	}
	if r.DisciplineFormFollowUpNotes != nil {
		m.DisciplineFormFollowUpNotes = strings.TrimSpace(*r.DisciplineFormFollowUpNotes)
	}
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

/* ===================== QUERIES (list) ===================== */

type ListFormQuery struct {
	Status *string `query:"status"`
	Grade  *string `query:"grade"`
	Q      *string `query:"q"`
}

/* ===================== RESPONSES ===================== */

type FormResponse struct {
	DisciplineFormID       uuid.UUID `json:"discipline_form_id"`
	DisciplineFormSchoolID uuid.UUID `json:"discipline_form_school_id"`

	DisciplineFormTemplateID *uuid.UUID              `json:"discipline_form_template_id,omitempty"`
	WorkflowSnapshot         tplDTO.WorkflowSettings `json:"discipline_form_workflow_snapshot"`
	DisciplineFormSchoolName string                  `json:"discipline_form_school_name,omitempty"`

	DisciplineFormRollNumber         string `json:"discipline_form_roll_number"`
	DisciplineFormStudentName        string `json:"discipline_form_student_name,omitempty"`
	DisciplineFormGrade              string `json:"discipline_form_grade,omitempty"`
	DisciplineFormSection            string `json:"discipline_form_section,omitempty"`
	DisciplineFormParentGuardianName string `json:"discipline_form_parent_guardian_name,omitempty"`
	DisciplineFormContactNumber      string `json:"discipline_form_contact_number,omitempty"`

	DisciplineFormDateOfIncident        string `json:"discipline_form_date_of_incident"`
	DisciplineFormTimeOfIncident        string `json:"discipline_form_time_of_incident,omitempty"`
	DisciplineFormLocation              string `json:"discipline_form_location,omitempty"`
	DisciplineFormReportingStaffName    string `json:"discipline_form_reporting_staff_name,omitempty"`
	DisciplineFormDescriptionOfIncident string `json:"discipline_form_description_of_incident"`

	Misconduct  MisconductFlags  `json:"discipline_form_misconduct"`
	ActionTaken ActionTakenFlags `json:"discipline_form_action_taken"`

	DisciplineFormFollowUpRequired bool   `json:"discipline_form_follow_up_required"`
	DisciplineFormFollowUpDate     string `json:"discipline_form_follow_up_date,omitempty"`
	DisciplineFormFollowUpNotes    string `json:"discipline_form_follow_up_notes,omitempty"`

	DisciplineFormStatus string            `json:"discipline_form_status"`
	StatusBadge          model.StatusBadge `json:"discipline_form_status_badge"`

	DisciplineFormCreatedByName string `json:"discipline_form_created_by_name,omitempty"`
	DisciplineFormCreatedByRole string `json:"discipline_form_created_by_role,omitempty"`

	DisciplineFormCreatedAt time.Time `json:"discipline_form_created_at"`
	DisciplineFormUpdatedAt time.Time `json:"discipline_form_updated_at"`

	// Preview hanya diisi di endpoint detail
	Preview *FormPreview `json:"discipline_form_preview,omitempty"`
}

func NewFormResponse(m *model.DisciplineFormModel) *FormResponse {
	if m == nil {
		return nil
	}
	resp := &FormResponse{
		DisciplineFormID:                    m.DisciplineFormID,
		DisciplineFormSchoolID:              m.DisciplineFormSchoolID,
		DisciplineFormTemplateID:            m.DisciplineFormTemplateID,
		DisciplineFormSchoolName:            m.DisciplineFormSchoolName,
		DisciplineFormRollNumber:            m.DisciplineFormRollNumber,
		DisciplineFormStudentName:           m.DisciplineFormStudentName,
		DisciplineFormGrade:                 m.DisciplineFormGrade,
		DisciplineFormSection:               m.DisciplineFormSection,
		DisciplineFormParentGuardianName:    m.DisciplineFormParentGuardianName,
		DisciplineFormContactNumber:         m.DisciplineFormContactNumber,
		DisciplineFormDateOfIncident:        m.DisciplineFormDateOfIncident,
		DisciplineFormTimeOfIncident:        m.DisciplineFormTimeOfIncident,
		DisciplineFormLocation:              m.DisciplineFormLocation,
		DisciplineFormReportingStaffName:    m.DisciplineFormReportingStaffName,
		DisciplineFormDescriptionOfIncident: m.DisciplineFormDescriptionOfIncident,
		DisciplineFormFollowUpRequired:      m.DisciplineFormFollowUpRequired,
		DisciplineFormFollowUpDate:          m.DisciplineFormFollowUpDate,
		DisciplineFormFollowUpNotes:         m.DisciplineFormFollowUpNotes,
		DisciplineFormStatus:                m.DisciplineFormStatus,
		StatusBadge:                         model.BadgeForStatus(m.DisciplineFormStatus),
		DisciplineFormCreatedByName:         m.DisciplineFormCreatedByName,
		DisciplineFormCreatedByRole:         m.DisciplineFormCreatedByRole,
		DisciplineFormCreatedAt:             m.DisciplineFormCreatedAt,
		DisciplineFormUpdatedAt:             m.DisciplineFormUpdatedAt,
	}
	_ = json.Unmarshal(m.DisciplineFormWorkflowSnapshot, &resp.WorkflowSnapshot)
	_ = json.Unmarshal(m.DisciplineFormMisconduct, &resp.Misconduct)
	_ = json.Unmarshal(m.DisciplineFormActionTaken, &resp.ActionTaken)
	return resp
}

// NewFormDetailResponse: response detail + preview turunan.
func NewFormDetailResponse(m *model.DisciplineFormModel) *FormResponse {
	resp := NewFormResponse(m)
	if resp == nil {
		return nil
	}
	resp.Preview = BuildFormPreview(resp.Misconduct, resp.ActionTaken)
	return resp
}

func NewFormResponseList(ms []model.DisciplineFormModel) []*FormResponse {
	out := make([]*FormResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewFormResponse(&ms[i]))
	}
	return out
}
