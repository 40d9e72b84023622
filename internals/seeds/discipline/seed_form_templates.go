// file: internals/seeds/discipline/seed_form_templates.go
package discipline

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	tplModel "schoolku_backend/internals/features/discipline/form_templates/model"
)

func asJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

// SeedDefaultFormTemplate memasang template default sekolah kalau belum ada.
// Idempotent: sekolah yang sudah punya default dilewati.
func SeedDefaultFormTemplate(db *gorm.DB, schoolID uuid.UUID) {
	var existing int64
	if err := db.Model(&tplModel.DisciplineFormTemplateModel{}).
		Where("discipline_form_template_school_id = ? AND discipline_form_template_is_default = ?", schoolID, true).
		Count(&existing).Error; err != nil {
		log.Printf("❌ Gagal cek template default: %v", err)
		return
	}
	if existing > 0 {
		log.Println("ℹ️ Template default sudah ada, lewati...")
		return
	}

	desc := "Standard disciplinary warning form"
	tpl := tplModel.DisciplineFormTemplateModel{
		DisciplineFormTemplateSchoolID:    schoolID,
		DisciplineFormTemplateName:        "Standard Disciplinary Form",
		DisciplineFormTemplateDescription: &desc,
		DisciplineFormTemplateIsActive:    true,
		DisciplineFormTemplateIsDefault:   true,
		DisciplineFormTemplateSchoolInfo: asJSON(tplDTO.SchoolInfo{
			SchoolName: "Demo High School",
		}),
		DisciplineFormTemplateFormConfig:      asJSON(tplDTO.DefaultFormConfig()),
		DisciplineFormTemplateMisconductTypes: asJSON(tplDTO.BuiltinMisconductTypes()),
		DisciplineFormTemplateActionTypes:     asJSON(tplDTO.BuiltinActionTypes()),
		DisciplineFormTemplateInstructions:    asJSON(tplDTO.Instructions{}),
		DisciplineFormTemplateStyling:         asJSON(tplDTO.DefaultStyling()),
		DisciplineFormTemplateCreatedByName:   "system",
	}

	if err := db.Create(&tpl).Error; err != nil {
		log.Printf("❌ Gagal insert template default: %v", err)
		return
	}
	log.Printf("✅ Template default terpasang (%s)", tpl.DisciplineFormTemplateID)
}
