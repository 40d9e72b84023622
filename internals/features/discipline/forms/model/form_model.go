// file: internals/features/discipline/forms/model/form_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DisciplineFormModel struct {
	DisciplineFormID       uuid.UUID `gorm:"column:discipline_form_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisciplineFormSchoolID uuid.UUID `gorm:"column:discipline_form_school_id;type:uuid;not null;index"`

	// Referensi template asal + snapshot konfigurasinya saat form dibuat.
	// Setelah dibuat, form tidak mengikuti perubahan template (decoupled).
	DisciplineFormTemplateID       *uuid.UUID     `gorm:"column:discipline_form_template_id;type:uuid;index"`
	DisciplineFormWorkflowSnapshot datatypes.JSON `gorm:"column:discipline_form_workflow_snapshot;type:jsonb;not null"`
	DisciplineFormSchoolName       string         `gorm:"column:discipline_form_school_name;type:varchar(200)"`

	// Identitas siswa
	DisciplineFormRollNumber         string `gorm:"column:discipline_form_roll_number;type:varchar(40);not null"`
	DisciplineFormStudentName        string `gorm:"column:discipline_form_student_name;type:varchar(160)"`
	DisciplineFormGrade              string `gorm:"column:discipline_form_grade;type:varchar(20)"`
	DisciplineFormSection            string `gorm:"column:discipline_form_section;type:varchar(20)"`
	DisciplineFormParentGuardianName string `gorm:"column:discipline_form_parent_guardian_name;type:varchar(160)"`
	DisciplineFormContactNumber      string `gorm:"column:discipline_form_contact_number;type:varchar(40)"`

	// Insiden
	DisciplineFormDateOfIncident        string `gorm:"column:discipline_form_date_of_incident;type:varchar(10);not null"` // YYYY-MM-DD
	DisciplineFormTimeOfIncident        string `gorm:"column:discipline_form_time_of_incident;type:varchar(8)"`           // HH:MM
	DisciplineFormLocation              string `gorm:"column:discipline_form_location;type:varchar(200)"`
	DisciplineFormReportingStaffName    string `gorm:"column:discipline_form_reporting_staff_name;type:varchar(160)"`
	DisciplineFormDescriptionOfIncident string `gorm:"column:discipline_form_description_of_incident;type:text;not null"`

	// Taksonomi tetap (flag boolean), disimpan sebagai JSONB
	DisciplineFormMisconduct  datatypes.JSON `gorm:"column:discipline_form_misconduct;type:jsonb;not null"`
	DisciplineFormActionTaken datatypes.JSON `gorm:"column:discipline_form_action_taken;type:jsonb;not null"`

	// Follow-up
	DisciplineFormFollowUpRequired bool   `gorm:"column:discipline_form_follow_up_required;not null;default:false"`
	DisciplineFormFollowUpDate     string `gorm:"column:discipline_form_follow_up_date;type:varchar(10)"`
	DisciplineFormFollowUpNotes    string `gorm:"column:discipline_form_follow_up_notes;type:text"`

	// Lifecycle
	DisciplineFormStatus string `gorm:"column:discipline_form_status;type:varchar(24);not null;default:draft;index"`

	DisciplineFormStudentAckAt *time.Time `gorm:"column:discipline_form_student_ack_at;type:timestamptz"`
	DisciplineFormParentAckAt  *time.Time `gorm:"column:discipline_form_parent_ack_at;type:timestamptz"`
	DisciplineFormSubmittedAt  *time.Time `gorm:"column:discipline_form_submitted_at;type:timestamptz"`
	DisciplineFormCompletedAt  *time.Time `gorm:"column:discipline_form_completed_at;type:timestamptz"`

	DisciplineFormCreatedByName string `gorm:"column:discipline_form_created_by_name;type:varchar(120)"`
	DisciplineFormCreatedByRole string `gorm:"column:discipline_form_created_by_role;type:varchar(24)"`

	DisciplineFormCreatedAt time.Time      `gorm:"column:discipline_form_created_at;type:timestamptz;not null;autoCreateTime"`
	DisciplineFormUpdatedAt time.Time      `gorm:"column:discipline_form_updated_at;type:timestamptz;not null;autoUpdateTime"`
	DisciplineFormDeletedAt gorm.DeletedAt `gorm:"column:discipline_form_deleted_at;index"`
}

func (DisciplineFormModel) TableName() string {
	return "discipline_forms"
}

func (m *DisciplineFormModel) BeforeCreate(tx *gorm.DB) error {
	if m.DisciplineFormID == uuid.Nil {
		m.DisciplineFormID = uuid.New()
	}
	return nil
}
