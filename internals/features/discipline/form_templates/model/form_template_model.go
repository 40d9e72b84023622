// file: internals/features/discipline/form_templates/model/form_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DisciplineFormTemplateModel struct {
	DisciplineFormTemplateID       uuid.UUID `gorm:"column:discipline_form_template_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisciplineFormTemplateSchoolID uuid.UUID `gorm:"column:discipline_form_template_school_id;type:uuid;not null;index;uniqueIndex:uq_discipline_form_templates_school_name,priority:1;uniqueIndex:uq_discipline_form_templates_school_default,priority:1"`

	// Nama unik per sekolah (cek duplikat di controller, index menjaga race)
	DisciplineFormTemplateName        string  `gorm:"column:discipline_form_template_name;type:varchar(160);not null;uniqueIndex:uq_discipline_form_templates_school_name,priority:2,where:discipline_form_template_deleted_at IS NULL"`
	DisciplineFormTemplateDescription *string `gorm:"column:discipline_form_template_description;type:text"`

	DisciplineFormTemplateIsActive bool `gorm:"column:discipline_form_template_is_active;not null;default:true"`
	// Maksimal satu default per sekolah; eksklusivitas dijaga transaksi SetDefault
	// + partial unique index di bawah.
	DisciplineFormTemplateIsDefault bool `gorm:"column:discipline_form_template_is_default;not null;default:false;uniqueIndex:uq_discipline_form_templates_school_default,priority:2,where:discipline_form_template_is_default AND discipline_form_template_deleted_at IS NULL"`

	DisciplineFormTemplateSchoolInfo      datatypes.JSON `gorm:"column:discipline_form_template_school_info;type:jsonb;not null"`
	DisciplineFormTemplateFormConfig      datatypes.JSON `gorm:"column:discipline_form_template_form_config;type:jsonb;not null"`
	DisciplineFormTemplateMisconductTypes datatypes.JSON `gorm:"column:discipline_form_template_misconduct_types;type:jsonb;not null"`
	DisciplineFormTemplateActionTypes     datatypes.JSON `gorm:"column:discipline_form_template_action_types;type:jsonb;not null"`
	DisciplineFormTemplateInstructions    datatypes.JSON `gorm:"column:discipline_form_template_instructions;type:jsonb;not null"`
	DisciplineFormTemplateStyling         datatypes.JSON `gorm:"column:discipline_form_template_styling;type:jsonb;not null"`

	// Counter dipelihara server (increment saat form dibuat dari template ini)
	DisciplineFormTemplateFormsCreated int `gorm:"column:discipline_form_template_forms_created;not null;default:0"`

	DisciplineFormTemplateCreatedByName string `gorm:"column:discipline_form_template_created_by_name;type:varchar(120)"`

	DisciplineFormTemplateCreatedAt time.Time      `gorm:"column:discipline_form_template_created_at;type:timestamptz;not null;autoCreateTime"`
	DisciplineFormTemplateUpdatedAt time.Time      `gorm:"column:discipline_form_template_updated_at;type:timestamptz;not null;autoUpdateTime"`
	DisciplineFormTemplateDeletedAt gorm.DeletedAt `gorm:"column:discipline_form_template_deleted_at;index"`
}

func (DisciplineFormTemplateModel) TableName() string {
	return "discipline_form_templates"
}

func (m *DisciplineFormTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.DisciplineFormTemplateID == uuid.Nil {
		m.DisciplineFormTemplateID = uuid.New()
	}
	return nil
}
