// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocUserName = "user_name" // string
	LocRole     = "role"      // string (lowercase)
	LocSchoolID = "school_id" // string UUID
)

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetUserIDFromToken mengembalikan user_id (UUID) milik pemegang token.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocUserID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetUserNameFromToken — nama tampilan pembuat record (created_by_name).
func GetUserNameFromToken(c *fiber.Ctx) string {
	return localString(c, LocUserName)
}

// GetRoleFromToken — role tunggal (admin/teacher/student/parent/owner).
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	r := localString(c, LocRole)
	if r == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
	}
	return strings.ToLower(r), nil
}

// GetSchoolIDFromToken — tenant scope untuk semua query.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocSchoolID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak valid")
	}
	return id, nil
}
