package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	model "schoolku_backend/internals/features/discipline/forms/model"
)

// PurgeTrashedForms menghapus permanen form soft-delete yang lebih lama dari
// cutoff. Batch 100 baris per siklus supaya tidak mengunci tabel lama-lama.
func PurgeTrashedForms(db *gorm.DB, deleteBefore time.Time) (int, error) {
	var trashed []model.DisciplineFormModel
	if err := db.Unscoped().
		Where("discipline_form_deleted_at IS NOT NULL AND discipline_form_deleted_at < ?", deleteBefore).
		Limit(100).
		Find(&trashed).Error; err != nil {
		return 0, err
	}
	if len(trashed) == 0 {
		return 0, nil
	}
	if err := db.Unscoped().Delete(&trashed).Error; err != nil {
		return 0, err
	}
	return len(trashed), nil
}

// StartFormTrashCleanupScheduler menjalankan purge tiap 24 jam dengan TTL
// dari FORM_TRASH_TTL_DAYS (default: 30 hari).
func StartFormTrashCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 30
		if val := os.Getenv("FORM_TRASH_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan discipline_forms terhapus...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			n, err := PurgeTrashedForms(db, deleteBefore)
			switch {
			case err != nil:
				log.Printf("[CLEANUP ERROR] Gagal hapus form: %v", err)
			case n > 0:
				log.Printf("[CLEANUP] %d form terhapus permanen", n)
			default:
				log.Println("[CLEANUP] Tidak ada form yang memenuhi syarat dihapus")
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
