// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	discipline "schoolku_backend/internals/seeds/discipline"
	students "schoolku_backend/internals/seeds/students"
)

// Sekolah demo untuk lingkungan dev (dipakai kalau SEED_SCHOOL_ID tidak diset)
const demoSchoolID = "00000000-0000-0000-0000-000000000001"

func resolveSchoolID() uuid.UUID {
	raw := strings.TrimSpace(os.Getenv("SEED_SCHOOL_ID"))
	if raw == "" {
		raw = demoSchoolID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Printf("⚠️ SEED_SCHOOL_ID tidak valid (%q), pakai sekolah demo", raw)
		return uuid.MustParse(demoSchoolID)
	}
	return id
}

// Run dipanggil dari main saat SEED_ON_BOOT=true. Semua seed idempotent.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("seeds: db belum siap")
	}

	schoolID := resolveSchoolID()
	log.Printf("🌱 Menjalankan seeds untuk school %s", schoolID)

	discipline.SeedDefaultFormTemplate(db, schoolID)
	students.SeedStudentsFromJSON(db, schoolID, "internals/seeds/students/data_students.json")
	return nil
}
