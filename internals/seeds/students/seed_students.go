// file: internals/seeds/students/seed_students.go
package students

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolku_backend/internals/features/school/students/model"
)

type StudentSeed struct {
	SchoolStudentRollNumber         string `json:"school_student_roll_number"`
	SchoolStudentName               string `json:"school_student_name"`
	SchoolStudentGrade              string `json:"school_student_grade"`
	SchoolStudentSection            string `json:"school_student_section"`
	SchoolStudentParentGuardianName string `json:"school_student_parent_guardian_name"`
	SchoolStudentContactNumber      string `json:"school_student_contact_number"`
}

// SeedStudentsFromJSON memuat roster demo. Idempotent per roll number.
func SeedStudentsFromJSON(db *gorm.DB, schoolID uuid.UUID, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var rows []StudentSeed
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range rows {
		var existing model.SchoolStudentModel
		err := db.Where("school_student_school_id = ? AND school_student_roll_number = ?",
			schoolID, s.SchoolStudentRollNumber).
			First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ Siswa %s sudah ada, lewati...", s.SchoolStudentRollNumber)
			continue
		}

		m := model.SchoolStudentModel{
			SchoolStudentSchoolID:           schoolID,
			SchoolStudentRollNumber:         s.SchoolStudentRollNumber,
			SchoolStudentName:               s.SchoolStudentName,
			SchoolStudentGrade:              s.SchoolStudentGrade,
			SchoolStudentSection:            s.SchoolStudentSection,
			SchoolStudentParentGuardianName: s.SchoolStudentParentGuardianName,
			SchoolStudentContactNumber:      s.SchoolStudentContactNumber,
			SchoolStudentIsActive:           true,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal insert siswa %s: %v", s.SchoolStudentRollNumber, err)
		} else {
			log.Printf("✅ Berhasil insert siswa %s (%s)", m.SchoolStudentName, m.SchoolStudentRollNumber)
		}
	}
}
