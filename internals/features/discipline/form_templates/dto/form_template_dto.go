// file: internals/features/discipline/form_templates/dto/form_template_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/discipline/form_templates/model"
)

/* ===================== NESTED PAYLOADS (isi kolom JSONB) ===================== */

type SchoolInfo struct {
	SchoolName    string `json:"school_name"`
	SchoolAddress string `json:"school_address,omitempty"`
	SchoolPhone   string `json:"school_phone,omitempty"`
	SchoolEmail   string `json:"school_email,omitempty" validate:"omitempty,email"`
	Logo          string `json:"logo,omitempty"`
}

type HeaderConfig struct {
	ShowLogo          bool `json:"show_logo"`
	ShowDate          bool `json:"show_date"`
	ShowWarningNumber bool `json:"show_warning_number"`
}

type StudentFieldConfig struct {
	RequireParentContact bool `json:"require_parent_contact"`
	RequireGradeSection  bool `json:"require_grade_section"`
	RequireRollNumber    bool `json:"require_roll_number"`
}

type IncidentFieldConfig struct {
	RequireLocation       bool `json:"require_location"`
	RequireTime           bool `json:"require_time"`
	RequireReportingStaff bool `json:"require_reporting_staff"`
}

type WorkflowSettings struct {
	RequireStudentAcknowledgment bool `json:"require_student_acknowledgment"`
	RequireParentAcknowledgment  bool `json:"require_parent_acknowledgment"`
	RequireAdminApproval         bool `json:"require_admin_approval"`
	AllowFollowUp                bool `json:"allow_follow_up"`
}

type FormConfig struct {
	Header           HeaderConfig        `json:"header"`
	StudentFields    StudentFieldConfig  `json:"student_fields"`
	IncidentFields   IncidentFieldConfig `json:"incident_fields"`
	WorkflowSettings WorkflowSettings    `json:"workflow_settings"`
}

type MisconductType struct {
	Label       string `json:"label" validate:"required,max=160"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity" validate:"omitempty,oneof=low medium high"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

type ActionType struct {
	Label           string `json:"label" validate:"required,max=160"`
	Description     string `json:"description,omitempty"`
	Severity        string `json:"severity" validate:"omitempty,oneof=light moderate severe"`
	RequiresDetails bool   `json:"requires_details"`
	DetailsLabel    string `json:"details_label,omitempty"`
	Enabled         *bool  `json:"enabled,omitempty"`
}

type Instructions struct {
	TeacherInstructions string `json:"teacher_instructions,omitempty"`
	StudentInstructions string `json:"student_instructions,omitempty"`
	ParentInstructions  string `json:"parent_instructions,omitempty"`
	GeneralNotes        string `json:"general_notes,omitempty"`
}

type Styling struct {
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
	FontFamily   string `json:"font_family" validate:"omitempty,oneof=arial times roboto georgia"`
	LogoPosition string `json:"logo_position" validate:"omitempty,oneof=left center right"`
}

/* ===================== DEFAULTS ===================== */

// DefaultFormConfig: semua toggle workflow aktif kecuali require_admin_approval.
func DefaultFormConfig() FormConfig {
	return FormConfig{
		Header: HeaderConfig{
			ShowLogo:          true,
			ShowDate:          true,
			ShowWarningNumber: true,
		},
		StudentFields: StudentFieldConfig{
			RequireParentContact: true,
			RequireGradeSection:  true,
			RequireRollNumber:    true,
		},
		IncidentFields: IncidentFieldConfig{
			RequireLocation:       true,
			RequireTime:           true,
			RequireReportingStaff: true,
		},
		WorkflowSettings: WorkflowSettings{
			RequireStudentAcknowledgment: true,
			RequireParentAcknowledgment:  true,
			RequireAdminApproval:         false,
			AllowFollowUp:                true,
		},
	}
}

func DefaultStyling() Styling {
	return Styling{
		PrimaryColor: "#1976d2",
		FontFamily:   "arial",
		LogoPosition: "left",
	}
}

// Taksonomi bawaan — dipakai seed template default.
func BuiltinMisconductTypes() []MisconductType {
	return NormalizeMisconductTypes([]MisconductType{
		{Label: "Disruptive Behavior", Severity: "medium"},
		{Label: "Disrespect To Staff", Severity: "medium"},
		{Label: "Bullying / Harassment", Severity: "high"},
		{Label: "Fighting", Severity: "high"},
		{Label: "Vandalism / Property Damage", Severity: "high"},
		{Label: "Cheating / Academic Dishonesty", Severity: "medium"},
		{Label: "Skipping Classes", Severity: "low"},
		{Label: "Dress Code Violation", Severity: "low"},
		{Label: "Phone Use Violation", Severity: "low"},
		{Label: "Other", Severity: "medium"},
	})
}

func BuiltinActionTypes() []ActionType {
	return NormalizeActionTypes([]ActionType{
		{Label: "Verbal Warning", Severity: "light"},
		{Label: "Written Warning", Severity: "light"},
		{Label: "Parent Conference", Severity: "moderate"},
		{Label: "Detention", Severity: "moderate"},
		{Label: "Counseling Referral", Severity: "moderate"},
		{Label: "Community Service", Severity: "moderate"},
		{Label: "Suspension", Severity: "severe", RequiresDetails: true, DetailsLabel: "Number of days"},
		{Label: "Other", Severity: "moderate", RequiresDetails: true, DetailsLabel: "Describe the action"},
	})
}

// NormalizeMisconductTypes: severity default "medium", enabled default true.
func NormalizeMisconductTypes(items []MisconductType) []MisconductType {
	out := make([]MisconductType, 0, len(items))
	for _, it := range items {
		it.Label = strings.TrimSpace(it.Label)
		if it.Severity == "" {
			it.Severity = "medium"
		}
		if it.Enabled == nil {
			t := true
			it.Enabled = &t
		}
		out = append(out, it)
	}
	return out
}

// NormalizeActionTypes: severity default "moderate", enabled default true.
func NormalizeActionTypes(items []ActionType) []ActionType {
	out := make([]ActionType, 0, len(items))
	for _, it := range items {
		it.Label = strings.TrimSpace(it.Label)
		if it.Severity == "" {
			it.Severity = "moderate"
		}
		if it.Enabled == nil {
			t := true
			it.Enabled = &t
		}
		if !it.RequiresDetails {
			it.DetailsLabel = ""
		}
		out = append(out, it)
	}
	return out
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

/* ===================== REQUESTS ===================== */

// Create: school_id & created_by_name diambil dari token oleh controller (BUKAN dari body)
type CreateFormTemplateRequest struct {
	DisciplineFormTemplateName        string  `json:"discipline_form_template_name" validate:"omitempty,max=160"`
	DisciplineFormTemplateDescription *string `json:"discipline_form_template_description" validate:"omitempty"`

	SchoolInfo      *SchoolInfo      `json:"discipline_form_template_school_info" validate:"omitempty"`
	FormConfig      *FormConfig      `json:"discipline_form_template_form_config" validate:"omitempty"`
	MisconductTypes []MisconductType `json:"discipline_form_template_misconduct_types" validate:"omitempty,dive"`
	ActionTypes     []ActionType     `json:"discipline_form_template_action_types" validate:"omitempty,dive"`
	Instructions    *Instructions    `json:"discipline_form_template_instructions" validate:"omitempty"`
	Styling         *Styling         `json:"discipline_form_template_styling" validate:"omitempty"`

	DisciplineFormTemplateIsActive *bool `json:"discipline_form_template_is_active" validate:"omitempty"`
}

// ToModel: merge request ke atas objek default tetap.
func (r CreateFormTemplateRequest) ToModel(schoolID uuid.UUID, createdByName string) *model.DisciplineFormTemplateModel {
	info := SchoolInfo{}
	if r.SchoolInfo != nil {
		info = *r.SchoolInfo
		info.SchoolName = strings.TrimSpace(info.SchoolName)
	}

	cfg := DefaultFormConfig()
	if r.FormConfig != nil {
		cfg = *r.FormConfig
	}

	sty := DefaultStyling()
	if r.Styling != nil {
		sty = *r.Styling
		if sty.PrimaryColor == "" {
			sty.PrimaryColor = "#1976d2"
		}
		if sty.FontFamily == "" {
			sty.FontFamily = "arial"
		}
		if sty.LogoPosition == "" {
			sty.LogoPosition = "left"
		}
	}

	ins := Instructions{}
	if r.Instructions != nil {
		ins = *r.Instructions
	}

	m := &model.DisciplineFormTemplateModel{
		DisciplineFormTemplateSchoolID:        schoolID,
		DisciplineFormTemplateName:            strings.TrimSpace(r.DisciplineFormTemplateName),
		DisciplineFormTemplateDescription:     r.DisciplineFormTemplateDescription,
		DisciplineFormTemplateIsActive:        true,
		DisciplineFormTemplateIsDefault:       false,
		DisciplineFormTemplateSchoolInfo:      mustJSON(info),
		DisciplineFormTemplateFormConfig:      mustJSON(cfg),
		DisciplineFormTemplateMisconductTypes: mustJSON(NormalizeMisconductTypes(r.MisconductTypes)),
		DisciplineFormTemplateActionTypes:     mustJSON(NormalizeActionTypes(r.ActionTypes)),
		DisciplineFormTemplateInstructions:    mustJSON(ins),
		DisciplineFormTemplateStyling:         mustJSON(sty),
		DisciplineFormTemplateCreatedByName:   strings.TrimSpace(createdByName),
	}
	if r.DisciplineFormTemplateIsActive != nil {
		m.DisciplineFormTemplateIsActive = *r.DisciplineFormTemplateIsActive
	}
	return m
}

/* ===================== UPDATE (partial, per section) ===================== */

// Setiap field adalah pointer: hanya section yang dikirim yang ditulis ulang,
// section lain tidak tersentuh.
type UpdateFormTemplateRequest struct {
	DisciplineFormTemplateName        *string `json:"discipline_form_template_name" validate:"omitempty,max=160"`
	DisciplineFormTemplateDescription *string `json:"discipline_form_template_description" validate:"omitempty"`

	SchoolInfo      *SchoolInfo       `json:"discipline_form_template_school_info" validate:"omitempty"`
	FormConfig      *FormConfig       `json:"discipline_form_template_form_config" validate:"omitempty"`
	MisconductTypes *[]MisconductType `json:"discipline_form_template_misconduct_types" validate:"omitempty,dive"`
	ActionTypes     *[]ActionType     `json:"discipline_form_template_action_types" validate:"omitempty,dive"`
	Instructions    *Instructions     `json:"discipline_form_template_instructions" validate:"omitempty"`
	Styling         *Styling          `json:"discipline_form_template_styling" validate:"omitempty"`

	DisciplineFormTemplateIsActive *bool `json:"discipline_form_template_is_active" validate:"omitempty"`
}

// ApplyToModel: terapkan hanya section yang dikirim.
func (r *UpdateFormTemplateRequest) ApplyToModel(m *model.DisciplineFormTemplateModel) {
	if r.DisciplineFormTemplateName != nil {
		m.DisciplineFormTemplateName = strings.TrimSpace(*r.DisciplineFormTemplateName)
	}
	if r.DisciplineFormTemplateDescription != nil {
		m.DisciplineFormTemplateDescription = r.DisciplineFormTemplateDescription
	}
	if r.SchoolInfo != nil {
		info := *r.SchoolInfo
		info.SchoolName = strings.TrimSpace(info.SchoolName)
		m.DisciplineFormTemplateSchoolInfo = mustJSON(info)
	}
	if r.FormConfig != nil {
		m.DisciplineFormTemplateFormConfig = mustJSON(*r.FormConfig)
	}
	if r.MisconductTypes != nil {
		m.DisciplineFormTemplateMisconductTypes = mustJSON(NormalizeMisconductTypes(*r.MisconductTypes))
	}
	if r.ActionTypes != nil {
		m.DisciplineFormTemplateActionTypes = mustJSON(NormalizeActionTypes(*r.ActionTypes))
	}
	if r.Instructions != nil {
		m.DisciplineFormTemplateInstructions = mustJSON(*r.Instructions)
	}
	if r.Styling != nil {
		m.DisciplineFormTemplateStyling = mustJSON(*r.Styling)
	}
	if r.DisciplineFormTemplateIsActive != nil {
		m.DisciplineFormTemplateIsActive = *r.DisciplineFormTemplateIsActive
	}
}

/* ===================== RESPONSES ===================== */

type FormTemplateResponse struct {
	DisciplineFormTemplateID       uuid.UUID `json:"discipline_form_template_id"`
	DisciplineFormTemplateSchoolID uuid.UUID `json:"discipline_form_template_school_id"`

	DisciplineFormTemplateName        string  `json:"discipline_form_template_name"`
	DisciplineFormTemplateDescription *string `json:"discipline_form_template_description,omitempty"`

	DisciplineFormTemplateIsActive  bool `json:"discipline_form_template_is_active"`
	DisciplineFormTemplateIsDefault bool `json:"discipline_form_template_is_default"`

	SchoolInfo      SchoolInfo       `json:"discipline_form_template_school_info"`
	FormConfig      FormConfig       `json:"discipline_form_template_form_config"`
	MisconductTypes []MisconductType `json:"discipline_form_template_misconduct_types"`
	ActionTypes     []ActionType     `json:"discipline_form_template_action_types"`
	Instructions    Instructions     `json:"discipline_form_template_instructions"`
	Styling         Styling          `json:"discipline_form_template_styling"`

	DisciplineFormTemplateFormsCreated  int    `json:"discipline_form_template_forms_created"`
	DisciplineFormTemplateCreatedByName string `json:"discipline_form_template_created_by_name,omitempty"`

	DisciplineFormTemplateCreatedAt time.Time `json:"discipline_form_template_created_at"`
	DisciplineFormTemplateUpdatedAt time.Time `json:"discipline_form_template_updated_at"`
}

func NewFormTemplateResponse(m *model.DisciplineFormTemplateModel) *FormTemplateResponse {
	if m == nil {
		return nil
	}
	resp := &FormTemplateResponse{
		DisciplineFormTemplateID:            m.DisciplineFormTemplateID,
		DisciplineFormTemplateSchoolID:      m.DisciplineFormTemplateSchoolID,
		DisciplineFormTemplateName:          m.DisciplineFormTemplateName,
		DisciplineFormTemplateDescription:   m.DisciplineFormTemplateDescription,
		DisciplineFormTemplateIsActive:      m.DisciplineFormTemplateIsActive,
		DisciplineFormTemplateIsDefault:     m.DisciplineFormTemplateIsDefault,
		MisconductTypes:                     []MisconductType{},
		ActionTypes:                         []ActionType{},
		DisciplineFormTemplateFormsCreated:  m.DisciplineFormTemplateFormsCreated,
		DisciplineFormTemplateCreatedByName: m.DisciplineFormTemplateCreatedByName,
		DisciplineFormTemplateCreatedAt:     m.DisciplineFormTemplateCreatedAt,
		DisciplineFormTemplateUpdatedAt:     m.DisciplineFormTemplateUpdatedAt,
	}
	_ = json.Unmarshal(m.DisciplineFormTemplateSchoolInfo, &resp.SchoolInfo)
	_ = json.Unmarshal(m.DisciplineFormTemplateFormConfig, &resp.FormConfig)
	_ = json.Unmarshal(m.DisciplineFormTemplateMisconductTypes, &resp.MisconductTypes)
	_ = json.Unmarshal(m.DisciplineFormTemplateActionTypes, &resp.ActionTypes)
	_ = json.Unmarshal(m.DisciplineFormTemplateInstructions, &resp.Instructions)
	_ = json.Unmarshal(m.DisciplineFormTemplateStyling, &resp.Styling)
	return resp
}

func NewFormTemplateResponseList(ms []model.DisciplineFormTemplateModel) []*FormTemplateResponse {
	out := make([]*FormTemplateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewFormTemplateResponse(&ms[i]))
	}
	return out
}

/* ===================== QUERIES (list) ===================== */

type ListFormTemplateQuery struct {
	Active *bool   `query:"active"`
	Q      *string `query:"q"`
}
