// file: internals/features/discipline/forms/dto/form_workflow.go
package dto

import (
	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	model "schoolku_backend/internals/features/discipline/forms/model"
)

// Transisi lifecycle dihitung dari snapshot workflow yang disalin dari template
// saat form dibuat — bukan dari template live.

// NextStatusAfterSubmit: draft → status berikutnya.
// Ack siswa diminta dulu, lalu ack orang tua; tanpa keduanya form berhenti
// di "submitted" (menunggu penutupan admin bila diperlukan).
func NextStatusAfterSubmit(ws tplDTO.WorkflowSettings) string {
	switch {
	case ws.RequireStudentAcknowledgment:
		return model.StatusAwaitingStudentAck
	case ws.RequireParentAcknowledgment:
		return model.StatusAwaitingParentAck
	default:
		return model.StatusSubmitted
	}
}

// NextStatusAfterStudentAck: awaitingStudentAck → status berikutnya.
func NextStatusAfterStudentAck(ws tplDTO.WorkflowSettings) string {
	switch {
	case ws.RequireParentAcknowledgment:
		return model.StatusAwaitingParentAck
	case ws.RequireAdminApproval:
		return model.StatusSubmitted
	default:
		return model.StatusCompleted
	}
}

// NextStatusAfterParentAck: awaitingParentAck → status berikutnya.
func NextStatusAfterParentAck(ws tplDTO.WorkflowSettings) string {
	if ws.RequireAdminApproval {
		return model.StatusSubmitted
	}
	return model.StatusCompleted
}
