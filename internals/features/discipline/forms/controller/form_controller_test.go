package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	tplDTO "schoolku_backend/internals/features/discipline/form_templates/dto"
	tplModel "schoolku_backend/internals/features/discipline/form_templates/model"
	formDTO "schoolku_backend/internals/features/discipline/forms/dto"
	formModel "schoolku_backend/internals/features/discipline/forms/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var testSchoolID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

var testDDL = []string{
	`CREATE TABLE discipline_form_templates (
		discipline_form_template_id               TEXT PRIMARY KEY,
		discipline_form_template_school_id        TEXT NOT NULL,
		discipline_form_template_name             TEXT NOT NULL,
		discipline_form_template_description      TEXT,
		discipline_form_template_is_active        NUMERIC NOT NULL DEFAULT 1,
		discipline_form_template_is_default       NUMERIC NOT NULL DEFAULT 0,
		discipline_form_template_school_info      TEXT,
		discipline_form_template_form_config      TEXT,
		discipline_form_template_misconduct_types TEXT,
		discipline_form_template_action_types     TEXT,
		discipline_form_template_instructions     TEXT,
		discipline_form_template_styling          TEXT,
		discipline_form_template_forms_created    INTEGER NOT NULL DEFAULT 0,
		discipline_form_template_created_by_name  TEXT,
		discipline_form_template_created_at       DATETIME,
		discipline_form_template_updated_at       DATETIME,
		discipline_form_template_deleted_at       DATETIME
	)`,
	`CREATE TABLE discipline_forms (
		discipline_form_id                      TEXT PRIMARY KEY,
		discipline_form_school_id               TEXT NOT NULL,
		discipline_form_template_id             TEXT,
		discipline_form_workflow_snapshot       TEXT,
		discipline_form_school_name             TEXT,
		discipline_form_roll_number             TEXT NOT NULL,
		discipline_form_student_name            TEXT,
		discipline_form_grade                   TEXT,
		discipline_form_section                 TEXT,
		discipline_form_parent_guardian_name    TEXT,
		discipline_form_contact_number          TEXT,
		discipline_form_date_of_incident        TEXT NOT NULL,
		discipline_form_time_of_incident        TEXT,
		discipline_form_location                TEXT,
		discipline_form_reporting_staff_name    TEXT,
		discipline_form_description_of_incident TEXT NOT NULL,
		discipline_form_misconduct              TEXT,
		discipline_form_action_taken            TEXT,
		discipline_form_follow_up_required      NUMERIC NOT NULL DEFAULT 0,
		discipline_form_follow_up_date          TEXT,
		discipline_form_follow_up_notes         TEXT,
		discipline_form_status                  TEXT NOT NULL DEFAULT 'draft',
		discipline_form_student_ack_at          DATETIME,
		discipline_form_parent_ack_at           DATETIME,
		discipline_form_submitted_at            DATETIME,
		discipline_form_completed_at            DATETIME,
		discipline_form_created_by_name         TEXT,
		discipline_form_created_by_role         TEXT,
		discipline_form_created_at              DATETIME,
		discipline_form_updated_at              DATETIME,
		discipline_form_deleted_at              DATETIME
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	for _, ddl := range testDDL {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

// Role diambil dari header X-Test-Role (default teacher) supaya satu app
// bisa dipakai untuk skenario guru/siswa/orang tua.
func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		role := c.Get("X-Test-Role")
		if role == "" {
			role = "teacher"
		}
		c.Locals(helperAuth.LocUserID, uuid.New().String())
		c.Locals(helperAuth.LocUserName, "Pak Guru")
		c.Locals(helperAuth.LocRole, role)
		c.Locals(helperAuth.LocSchoolID, testSchoolID.String())
		return c.Next()
	})

	ctl := NewFormController(db)
	grp := app.Group("/api/a/discipline/forms")
	grp.Get("/stats", ctl.Stats)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/submit", ctl.Submit)
	grp.Post("/:id/complete", ctl.Complete)

	user := app.Group("/api/u/discipline/forms")
	user.Post("/:id/acknowledge", ctl.Acknowledge)
	return app
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, role string, body any) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return res, env
}

func decodeForm(t *testing.T, env envelope) formDTO.FormResponse {
	t.Helper()
	var resp formDTO.FormResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode form response: %v", err)
	}
	return resp
}

func seedTemplateWithWorkflow(t *testing.T, db *gorm.DB, isDefault bool, ws tplDTO.WorkflowSettings) *tplModel.DisciplineFormTemplateModel {
	t.Helper()
	cfg := tplDTO.DefaultFormConfig()
	cfg.WorkflowSettings = ws
	req := tplDTO.CreateFormTemplateRequest{
		DisciplineFormTemplateName: "Formulir SP",
		SchoolInfo:                 &tplDTO.SchoolInfo{SchoolName: "SMA Negeri 1"},
		FormConfig:                 &cfg,
		MisconductTypes:            tplDTO.BuiltinMisconductTypes(),
		ActionTypes:                tplDTO.BuiltinActionTypes(),
	}
	m := req.ToModel(testSchoolID, "seeder")
	m.DisciplineFormTemplateIsDefault = isDefault
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return m
}

func validFormBody() fiber.Map {
	return fiber.Map{
		"discipline_form_roll_number":             "9A-001",
		"discipline_form_student_name":            "Aisyah Putri",
		"discipline_form_grade":                   "9",
		"discipline_form_date_of_incident":        "2026-03-01",
		"discipline_form_description_of_incident": "Berkelahi di kantin",
		"discipline_form_misconduct":              fiber.Map{"fighting": true},
		"discipline_form_action_taken":            fiber.Map{"detention": true},
	}
}

func createForm(t *testing.T, app *fiber.App, body fiber.Map) formDTO.FormResponse {
	t.Helper()
	res, env := doJSON(t, app, fiber.MethodPost, "/api/a/discipline/forms/", "", body)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("create form: status=%d message=%q", res.StatusCode, env.Message)
	}
	return decodeForm(t, env)
}

func TestCreateFormMissingFieldsNamedTogether(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	res, env := doJSON(t, app, fiber.MethodPost, "/api/a/discipline/forms/", "", fiber.Map{
		"discipline_form_student_name": "Aisyah Putri",
	})
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", res.StatusCode)
	}
	for _, f := range []string{
		"discipline_form_roll_number",
		"discipline_form_date_of_incident",
		"discipline_form_description_of_incident",
	} {
		if _, ok := env.Errors[f]; !ok {
			t.Errorf("field %s tidak disebut di errors: %v", f, env.Errors)
		}
	}

	var n int64
	db.Model(&formModel.DisciplineFormModel{}).Count(&n)
	if n != 0 {
		t.Errorf("form tersimpan dari request invalid")
	}
}

func TestCreateFormSnapshotsDefaultTemplate(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	tpl := seedTemplateWithWorkflow(t, db, true, tplDTO.WorkflowSettings{
		RequireStudentAcknowledgment: true,
		RequireParentAcknowledgment:  true,
	})

	form := createForm(t, app, validFormBody())

	if form.DisciplineFormStatus != formModel.StatusDraft {
		t.Errorf("status = %q, want draft", form.DisciplineFormStatus)
	}
	if form.DisciplineFormTemplateID == nil || *form.DisciplineFormTemplateID != tpl.DisciplineFormTemplateID {
		t.Errorf("template id tidak terpasang: %v", form.DisciplineFormTemplateID)
	}
	if form.DisciplineFormSchoolName != "SMA Negeri 1" {
		t.Errorf("school name snapshot = %q", form.DisciplineFormSchoolName)
	}
	if !form.WorkflowSnapshot.RequireStudentAcknowledgment {
		t.Errorf("workflow snapshot = %+v", form.WorkflowSnapshot)
	}

	// Counter pemakaian template naik.
	var reloaded tplModel.DisciplineFormTemplateModel
	db.First(&reloaded, "discipline_form_template_id = ?", tpl.DisciplineFormTemplateID)
	if reloaded.DisciplineFormTemplateFormsCreated != 1 {
		t.Errorf("forms_created = %d, want 1", reloaded.DisciplineFormTemplateFormsCreated)
	}
}

func TestCreateFormTemplateGuards(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	// Template eksplisit harus ada.
	body := validFormBody()
	body["discipline_form_template_id"] = uuid.New().String()
	res, env := doJSON(t, app, fiber.MethodPost, "/api/a/discipline/forms/", "", body)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("template hilang: status=%d message=%q", res.StatusCode, env.Message)
	}

	// Template nonaktif ditolak.
	inactive := seedTemplateWithWorkflow(t, db, false, tplDTO.DefaultFormConfig().WorkflowSettings)
	db.Model(inactive).UpdateColumn("discipline_form_template_is_active", false)
	body = validFormBody()
	body["discipline_form_template_id"] = inactive.DisciplineFormTemplateID.String()
	res, env = doJSON(t, app, fiber.MethodPost, "/api/a/discipline/forms/", "", body)
	if res.StatusCode != fiber.StatusConflict || env.Message != "Template is inactive" {
		t.Fatalf("template nonaktif: status=%d message=%q", res.StatusCode, env.Message)
	}

	// Template tanpa taksonomi ditolak.
	empty := seedTemplateWithWorkflow(t, db, false, tplDTO.DefaultFormConfig().WorkflowSettings)
	db.Model(empty).UpdateColumns(map[string]interface{}{
		"discipline_form_template_misconduct_types": "[]",
		"discipline_form_template_action_types":     "[]",
	})
	body = validFormBody()
	body["discipline_form_template_id"] = empty.DisciplineFormTemplateID.String()
	res, env = doJSON(t, app, fiber.MethodPost, "/api/a/discipline/forms/", "", body)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("template kosong: status=%d", res.StatusCode)
	}
	if env.Message != "Template has no misconduct or action types configured" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateFormWithoutTemplateUsesBuiltinWorkflow(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	form := createForm(t, app, validFormBody())
	if form.DisciplineFormTemplateID != nil {
		t.Errorf("template id harus nil: %v", form.DisciplineFormTemplateID)
	}
	if !form.WorkflowSnapshot.RequireStudentAcknowledgment || !form.WorkflowSnapshot.RequireParentAcknowledgment {
		t.Errorf("workflow bawaan = %+v", form.WorkflowSnapshot)
	}
}

func TestSubmitOnlyFromDraft(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	form := createForm(t, app, validFormBody())
	path := "/api/a/discipline/forms/" + form.DisciplineFormID.String() + "/submit"

	res, env := doJSON(t, app, fiber.MethodPost, path, "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("submit: status=%d message=%q", res.StatusCode, env.Message)
	}
	if env.Message != "Form submitted. Student and parent have been notified" {
		t.Errorf("message = %q", env.Message)
	}
	submitted := decodeForm(t, env)
	if submitted.DisciplineFormStatus != formModel.StatusAwaitingStudentAck {
		t.Errorf("status = %q, want awaitingStudentAck", submitted.DisciplineFormStatus)
	}

	// Submit kedua kali ditolak.
	res, env = doJSON(t, app, fiber.MethodPost, path, "", nil)
	if res.StatusCode != fiber.StatusConflict || env.Message != "Only draft forms can be submitted" {
		t.Errorf("resubmit: status=%d message=%q", res.StatusCode, env.Message)
	}
}

// Jalan lengkap: draft → awaitingStudentAck → awaitingParentAck → completed.
func TestAcknowledgeLifecycle(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	form := createForm(t, app, validFormBody())
	submitPath := "/api/a/discipline/forms/" + form.DisciplineFormID.String() + "/submit"
	ackPath := "/api/u/discipline/forms/" + form.DisciplineFormID.String() + "/acknowledge"

	doJSON(t, app, fiber.MethodPost, submitPath, "", nil)

	// Guru tidak boleh acknowledge.
	res, env := doJSON(t, app, fiber.MethodPost, ackPath, "teacher", nil)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("ack guru: status=%d message=%q", res.StatusCode, env.Message)
	}

	// Orang tua belum gilirannya.
	res, env = doJSON(t, app, fiber.MethodPost, ackPath, "parent", nil)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("ack parent terlalu cepat: status=%d message=%q", res.StatusCode, env.Message)
	}

	// Siswa acknowledge → lanjut ke orang tua.
	res, env = doJSON(t, app, fiber.MethodPost, ackPath, "student", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("ack siswa: status=%d message=%q", res.StatusCode, env.Message)
	}
	if got := decodeForm(t, env); got.DisciplineFormStatus != formModel.StatusAwaitingParentAck {
		t.Fatalf("status setelah ack siswa = %q", got.DisciplineFormStatus)
	}

	// Siswa tidak bisa acknowledge dua kali.
	res, _ = doJSON(t, app, fiber.MethodPost, ackPath, "student", nil)
	if res.StatusCode != fiber.StatusConflict {
		t.Errorf("ack siswa ulang: status=%d", res.StatusCode)
	}

	// Orang tua acknowledge → selesai.
	res, env = doJSON(t, app, fiber.MethodPost, ackPath, "parent", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("ack parent: status=%d message=%q", res.StatusCode, env.Message)
	}
	if got := decodeForm(t, env); got.DisciplineFormStatus != formModel.StatusCompleted {
		t.Fatalf("status akhir = %q, want completed", got.DisciplineFormStatus)
	}

	var reloaded formModel.DisciplineFormModel
	db.First(&reloaded, "discipline_form_id = ?", form.DisciplineFormID)
	if reloaded.DisciplineFormStudentAckAt == nil || reloaded.DisciplineFormParentAckAt == nil {
		t.Errorf("timestamp ack tidak terisi")
	}
	if reloaded.DisciplineFormCompletedAt == nil {
		t.Errorf("completed_at tidak terisi")
	}
}

// Workflow tanpa acknowledgment: submit berhenti di submitted, admin menutup.
func TestSubmitWithoutAcksThenComplete(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seedTemplateWithWorkflow(t, db, true, tplDTO.WorkflowSettings{RequireAdminApproval: true})

	form := createForm(t, app, validFormBody())
	base := "/api/a/discipline/forms/" + form.DisciplineFormID.String()

	// Complete sebelum submit ditolak.
	res, env := doJSON(t, app, fiber.MethodPost, base+"/complete", "", nil)
	if res.StatusCode != fiber.StatusConflict || env.Message != "Only submitted forms can be completed" {
		t.Fatalf("complete draft: status=%d message=%q", res.StatusCode, env.Message)
	}

	res, env = doJSON(t, app, fiber.MethodPost, base+"/submit", "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("submit: status=%d", res.StatusCode)
	}
	if got := decodeForm(t, env); got.DisciplineFormStatus != formModel.StatusSubmitted {
		t.Fatalf("status = %q, want submitted", got.DisciplineFormStatus)
	}

	res, env = doJSON(t, app, fiber.MethodPost, base+"/complete", "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("complete: status=%d message=%q", res.StatusCode, env.Message)
	}
	if got := decodeForm(t, env); got.DisciplineFormStatus != formModel.StatusCompleted {
		t.Errorf("status = %q, want completed", got.DisciplineFormStatus)
	}
}

func TestUpdateFormNeverTransitions(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	form := createForm(t, app, validFormBody())
	base := "/api/a/discipline/forms/" + form.DisciplineFormID.String()

	doJSON(t, app, fiber.MethodPost, base+"/submit", "", nil)

	// Save pada status non-draft tetap boleh dan status tidak berubah.
	res, env := doJSON(t, app, fiber.MethodPut, base, "", fiber.Map{
		"discipline_form_location": "Lapangan upacara",
	})
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("update: status=%d message=%q", res.StatusCode, env.Message)
	}
	got := decodeForm(t, env)
	if got.DisciplineFormStatus != formModel.StatusAwaitingStudentAck {
		t.Errorf("save mengubah status: %q", got.DisciplineFormStatus)
	}
	if got.DisciplineFormLocation != "Lapangan upacara" {
		t.Errorf("location = %q", got.DisciplineFormLocation)
	}

	// Field wajib tidak boleh dikosongkan lewat update.
	res, env = doJSON(t, app, fiber.MethodPut, base, "", fiber.Map{
		"discipline_form_roll_number": "  ",
	})
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("empty roll number: status=%d", res.StatusCode)
	}
	if _, ok := env.Errors["discipline_form_roll_number"]; !ok {
		t.Errorf("errors = %v", env.Errors)
	}
}

func TestCompletedFormReadOnly(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	form := createForm(t, app, validFormBody())
	db.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_id = ?", form.DisciplineFormID).
		Update("discipline_form_status", formModel.StatusCompleted)

	res, env := doJSON(t, app, fiber.MethodPut,
		"/api/a/discipline/forms/"+form.DisciplineFormID.String(), "",
		fiber.Map{"discipline_form_location": "Lapangan"})
	if res.StatusCode != fiber.StatusConflict || env.Message != "Completed form cannot be edited" {
		t.Fatalf("status=%d message=%q", res.StatusCode, env.Message)
	}
}

func TestDeleteFormDraftOnly(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	draft := createForm(t, app, validFormBody())
	submitted := createForm(t, app, validFormBody())
	db.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_id = ?", submitted.DisciplineFormID).
		Update("discipline_form_status", formModel.StatusSubmitted)

	res, env := doJSON(t, app, fiber.MethodDelete,
		"/api/a/discipline/forms/"+submitted.DisciplineFormID.String(), "", nil)
	if res.StatusCode != fiber.StatusConflict || env.Message != "Only draft forms can be deleted" {
		t.Fatalf("delete submitted: status=%d message=%q", res.StatusCode, env.Message)
	}

	res, _ = doJSON(t, app, fiber.MethodDelete,
		"/api/a/discipline/forms/"+draft.DisciplineFormID.String(), "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("delete draft: status=%d", res.StatusCode)
	}
	var visible, total int64
	db.Model(&formModel.DisciplineFormModel{}).Count(&visible)
	db.Unscoped().Model(&formModel.DisciplineFormModel{}).Count(&total)
	if visible != 1 || total != 2 {
		t.Errorf("visible=%d total=%d, want 1/2 (soft delete)", visible, total)
	}
}

func TestGetFormDetailCarriesPreview(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	body := validFormBody()
	body["discipline_form_action_taken"] = fiber.Map{
		"suspension": fiber.Map{"selected": true, "number_of_days": 3},
	}
	form := createForm(t, app, body)

	res, env := doJSON(t, app, fiber.MethodGet,
		"/api/a/discipline/forms/"+form.DisciplineFormID.String(), "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	detail := decodeForm(t, env)
	if detail.Preview == nil {
		t.Fatalf("detail tanpa preview")
	}
	if len(detail.Preview.Misconduct) != 1 || detail.Preview.Misconduct[0] != "Fighting" {
		t.Errorf("preview misconduct = %v", detail.Preview.Misconduct)
	}
	if len(detail.Preview.ActionsTaken) != 1 || detail.Preview.ActionsTaken[0] != "Suspension (3 days)" {
		t.Errorf("preview actions = %v", detail.Preview.ActionsTaken)
	}
}

func TestListFormsStatusFilter(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	createForm(t, app, validFormBody())
	second := createForm(t, app, validFormBody())
	db.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_id = ?", second.DisciplineFormID).
		Update("discipline_form_status", formModel.StatusSubmitted)

	res, env := doJSON(t, app, fiber.MethodGet, "/api/a/discipline/forms/?status=submitted", "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var rows []formDTO.FormResponse
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].DisciplineFormStatus != formModel.StatusSubmitted {
		t.Errorf("rows = %d", len(rows))
	}
}

func TestFormStats(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	createForm(t, app, validFormBody())
	createForm(t, app, validFormBody())
	other := validFormBody()
	other["discipline_form_misconduct"] = fiber.Map{"other": true, "other_description": "Membawa petasan"}
	third := createForm(t, app, other)
	db.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_id = ?", third.DisciplineFormID).
		Update("discipline_form_status", formModel.StatusCompleted)

	res, env := doJSON(t, app, fiber.MethodGet, "/api/a/discipline/forms/stats?period=all", "", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status=%d message=%q", res.StatusCode, env.Message)
	}
	var stats FormStatsResponse
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.ByStatus[formModel.StatusDraft] != 2 || stats.ByStatus[formModel.StatusCompleted] != 1 {
		t.Errorf("by_status = %v", stats.ByStatus)
	}
	// Semua lima status selalu hadir di map, termasuk yang nol.
	for _, s := range []string{
		formModel.StatusDraft, formModel.StatusSubmitted,
		formModel.StatusAwaitingStudentAck, formModel.StatusAwaitingParentAck,
		formModel.StatusCompleted,
	} {
		if _, ok := stats.ByStatus[s]; !ok {
			t.Errorf("status %s hilang dari by_status", s)
		}
	}
	if stats.ByMisconduct["Fighting"] != 2 {
		t.Errorf("by_misconduct = %v", stats.ByMisconduct)
	}
	// "Other: ..." dihitung sebagai satu bucket Other.
	if stats.ByMisconduct["Other"] != 1 {
		t.Errorf("bucket Other = %d; map %v", stats.ByMisconduct["Other"], stats.ByMisconduct)
	}

	res, _ = doJSON(t, app, fiber.MethodGet, "/api/a/discipline/forms/stats?period=decade", "", nil)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("invalid period: status=%d", res.StatusCode)
	}
}

func TestFormTenantIsolation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	form := createForm(t, app, validFormBody())
	db.Model(&formModel.DisciplineFormModel{}).
		Where("discipline_form_id = ?", form.DisciplineFormID).
		Update("discipline_form_school_id", uuid.New().String())

	res, _ := doJSON(t, app, fiber.MethodGet,
		"/api/a/discipline/forms/"+form.DisciplineFormID.String(), "", nil)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}
