// file: internals/features/discipline/forms/model/status.go
package model

// Lifecycle status (nilai wire persis, jangan diubah):
// draft → submitted → (awaitingStudentAck|awaitingParentAck) → completed
const (
	StatusDraft              = "draft"
	StatusSubmitted          = "submitted"
	StatusAwaitingStudentAck = "awaitingStudentAck"
	StatusAwaitingParentAck  = "awaitingParentAck"
	StatusCompleted          = "completed"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusAwaitingStudentAck, StatusAwaitingParentAck, StatusCompleted:
		return true
	}
	return false
}

type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// BadgeForStatus total untuk semua input: status tak dikenal → Unknown/default,
// tidak pernah panic.
func BadgeForStatus(status string) StatusBadge {
	switch status {
	case StatusCompleted:
		return StatusBadge{Label: "Completed", Color: "success"}
	case StatusSubmitted:
		return StatusBadge{Label: "Submitted", Color: "info"}
	case StatusAwaitingStudentAck:
		return StatusBadge{Label: "Awaiting Student", Color: "warning"}
	case StatusAwaitingParentAck:
		return StatusBadge{Label: "Awaiting Parent", Color: "warning"}
	case StatusDraft:
		return StatusBadge{Label: "Draft", Color: "default"}
	default:
		return StatusBadge{Label: "Unknown", Color: "default"}
	}
}
