package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleOwner   = "owner"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess      = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAcknowledgersCanAccess = "❌ Hanya student atau parent yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAcknowledger(feature string) string {
	return fmt.Sprintf(ErrOnlyAcknowledgersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	AcknowledgerRoles = []string{
		RoleStudent,
		RoleParent,
	}
)
