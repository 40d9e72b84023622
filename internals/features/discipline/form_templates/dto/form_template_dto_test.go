package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeMisconductTypes(t *testing.T) {
	off := false
	got := NormalizeMisconductTypes([]MisconductType{
		{Label: "  Fighting  "},
		{Label: "Bullying", Severity: "high"},
		{Label: "Other", Enabled: &off},
	})

	if got[0].Label != "Fighting" {
		t.Errorf("label tidak di-trim: %q", got[0].Label)
	}
	if got[0].Severity != "medium" {
		t.Errorf("severity default = %q, want medium", got[0].Severity)
	}
	if got[0].Enabled == nil || !*got[0].Enabled {
		t.Errorf("enabled default harus true")
	}
	if got[1].Severity != "high" {
		t.Errorf("severity eksplisit tertimpa: %q", got[1].Severity)
	}
	if got[2].Enabled == nil || *got[2].Enabled {
		t.Errorf("enabled=false eksplisit tertimpa")
	}
}

func TestNormalizeActionTypes(t *testing.T) {
	got := NormalizeActionTypes([]ActionType{
		{Label: "Detention"},
		{Label: "Suspension", Severity: "severe", RequiresDetails: true, DetailsLabel: "Number of days"},
		{Label: "Verbal Warning", DetailsLabel: "sisa lama"},
	})

	if got[0].Severity != "moderate" {
		t.Errorf("severity default = %q, want moderate", got[0].Severity)
	}
	if got[1].DetailsLabel != "Number of days" {
		t.Errorf("details label hilang: %q", got[1].DetailsLabel)
	}
	// requires_details=false → details label dibersihkan
	if got[2].DetailsLabel != "" {
		t.Errorf("details label tidak dibersihkan: %q", got[2].DetailsLabel)
	}
}

func TestDefaultFormConfig(t *testing.T) {
	cfg := DefaultFormConfig()
	ws := cfg.WorkflowSettings
	if !ws.RequireStudentAcknowledgment || !ws.RequireParentAcknowledgment || !ws.AllowFollowUp {
		t.Errorf("workflow default = %+v", ws)
	}
	if ws.RequireAdminApproval {
		t.Errorf("require_admin_approval harus false secara default")
	}
}

func TestCreateTemplateToModelMergesDefaults(t *testing.T) {
	schoolID := uuid.New()
	req := CreateFormTemplateRequest{
		DisciplineFormTemplateName: "  Formulir SP  ",
		SchoolInfo:                 &SchoolInfo{SchoolName: " SMA Negeri 1 "},
		MisconductTypes:            []MisconductType{{Label: "Fighting"}},
		ActionTypes:                []ActionType{{Label: "Detention"}},
	}

	m := req.ToModel(schoolID, "Bu Admin")
	resp := NewFormTemplateResponse(m)

	if resp.DisciplineFormTemplateName != "Formulir SP" {
		t.Errorf("name = %q", resp.DisciplineFormTemplateName)
	}
	if resp.SchoolInfo.SchoolName != "SMA Negeri 1" {
		t.Errorf("school name = %q", resp.SchoolInfo.SchoolName)
	}
	if !resp.DisciplineFormTemplateIsActive || resp.DisciplineFormTemplateIsDefault {
		t.Errorf("flag awal salah: active=%v default=%v",
			resp.DisciplineFormTemplateIsActive, resp.DisciplineFormTemplateIsDefault)
	}
	// config & styling jatuh ke default
	if !resp.FormConfig.WorkflowSettings.RequireStudentAcknowledgment {
		t.Errorf("form config tidak jatuh ke default: %+v", resp.FormConfig)
	}
	if resp.Styling.PrimaryColor != "#1976d2" || resp.Styling.FontFamily != "arial" {
		t.Errorf("styling default = %+v", resp.Styling)
	}
}

// Entry taksonomi harus utuh setelah simpan-JSONB → decode response.
func TestTemplateResponseRoundTripsTaxonomy(t *testing.T) {
	req := CreateFormTemplateRequest{
		DisciplineFormTemplateName: "Formulir SP",
		SchoolInfo:                 &SchoolInfo{SchoolName: "SMA Negeri 1"},
		MisconductTypes: []MisconductType{
			{Label: "Fighting", Description: "Kontak fisik", Severity: "high"},
		},
		ActionTypes: []ActionType{
			{Label: "Suspension", Severity: "severe", RequiresDetails: true, DetailsLabel: "Number of days"},
		},
	}

	resp := NewFormTemplateResponse(req.ToModel(uuid.New(), ""))

	if len(resp.MisconductTypes) != 1 {
		t.Fatalf("misconduct types = %d entri", len(resp.MisconductTypes))
	}
	mt := resp.MisconductTypes[0]
	if mt.Label != "Fighting" || mt.Description != "Kontak fisik" || mt.Severity != "high" {
		t.Errorf("misconduct entry berubah: %+v", mt)
	}
	if mt.Enabled == nil || !*mt.Enabled {
		t.Errorf("enabled default hilang")
	}

	if len(resp.ActionTypes) != 1 {
		t.Fatalf("action types = %d entri", len(resp.ActionTypes))
	}
	at := resp.ActionTypes[0]
	if at.Label != "Suspension" || !at.RequiresDetails || at.DetailsLabel != "Number of days" {
		t.Errorf("action entry berubah: %+v", at)
	}
}

// Partial update: section yang tidak dikirim tidak boleh tersentuh.
func TestUpdateTemplateApplyToModelSectionIsolation(t *testing.T) {
	base := CreateFormTemplateRequest{
		DisciplineFormTemplateName: "Formulir SP",
		SchoolInfo:                 &SchoolInfo{SchoolName: "SMA Negeri 1", SchoolPhone: "021-555"},
		MisconductTypes:            []MisconductType{{Label: "Fighting"}},
		ActionTypes:                []ActionType{{Label: "Detention"}},
	}
	m := base.ToModel(uuid.New(), "")

	newName := "Formulir SP Revisi"
	req := UpdateFormTemplateRequest{
		DisciplineFormTemplateName: &newName,
		MisconductTypes:            &[]MisconductType{{Label: "Bullying", Severity: "high"}},
	}
	req.ApplyToModel(m)

	resp := NewFormTemplateResponse(m)
	if resp.DisciplineFormTemplateName != "Formulir SP Revisi" {
		t.Errorf("name = %q", resp.DisciplineFormTemplateName)
	}
	if len(resp.MisconductTypes) != 1 || resp.MisconductTypes[0].Label != "Bullying" {
		t.Errorf("misconduct types tidak terganti: %+v", resp.MisconductTypes)
	}
	// section lain tetap
	if resp.SchoolInfo.SchoolPhone != "021-555" {
		t.Errorf("school info ikut berubah: %+v", resp.SchoolInfo)
	}
	if len(resp.ActionTypes) != 1 || resp.ActionTypes[0].Label != "Detention" {
		t.Errorf("action types ikut berubah: %+v", resp.ActionTypes)
	}
}

func TestBuiltinTaxonomyNonEmpty(t *testing.T) {
	if len(BuiltinMisconductTypes()) == 0 || len(BuiltinActionTypes()) == 0 {
		t.Fatalf("taksonomi bawaan tidak boleh kosong")
	}
	for _, at := range BuiltinActionTypes() {
		if at.Label == "Suspension" && !at.RequiresDetails {
			t.Errorf("Suspension harus requires_details")
		}
	}
}
