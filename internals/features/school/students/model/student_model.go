// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolStudentModel struct {
	SchoolStudentID       uuid.UUID `gorm:"column:school_student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolStudentSchoolID uuid.UUID `gorm:"column:school_student_school_id;type:uuid;not null;index"`

	SchoolStudentRollNumber         string `gorm:"column:school_student_roll_number;type:varchar(40);not null"`
	SchoolStudentName               string `gorm:"column:school_student_name;type:varchar(160);not null"`
	SchoolStudentGrade              string `gorm:"column:school_student_grade;type:varchar(20)"`
	SchoolStudentSection            string `gorm:"column:school_student_section;type:varchar(20)"`
	SchoolStudentParentGuardianName string `gorm:"column:school_student_parent_guardian_name;type:varchar(160)"`
	SchoolStudentContactNumber      string `gorm:"column:school_student_contact_number;type:varchar(40)"`

	SchoolStudentIsActive bool `gorm:"column:school_student_is_active;not null;default:true"`

	SchoolStudentCreatedAt time.Time      `gorm:"column:school_student_created_at;type:timestamptz;not null;autoCreateTime"`
	SchoolStudentUpdatedAt time.Time      `gorm:"column:school_student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SchoolStudentDeletedAt gorm.DeletedAt `gorm:"column:school_student_deleted_at;index"`
}

func (SchoolStudentModel) TableName() string {
	return "school_students"
}

func (m *SchoolStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolStudentID == uuid.Nil {
		m.SchoolStudentID = uuid.New()
	}
	return nil
}
