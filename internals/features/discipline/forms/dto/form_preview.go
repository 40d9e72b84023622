// file: internals/features/discipline/forms/dto/form_preview.go
package dto

import (
	"fmt"
	"strings"
	"unicode"
)

// FormPreview: rendering turunan yang siap ditampilkan — label Title Case untuk
// setiap flag yang true, pasangan other/description, dan jumlah hari suspensi.
type FormPreview struct {
	Misconduct   []string `json:"misconduct"`
	ActionsTaken []string `json:"actions_taken"`
}

// HumanizeKey mengubah key camelCase ATAU snake_case menjadi "Spaced Title Case".
// "disruptiveBehavior" → "Disruptive Behavior"; "dress_code_violation" → "Dress Code Violation".
func HumanizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	var b strings.Builder
	prevLower := false
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

func (f MisconductFlags) SelectedLabels() []string {
	labels := []string{}
	add := func(on bool, key string) {
		if on {
			labels = append(labels, HumanizeKey(key))
		}
	}
	add(f.DisruptiveBehavior, "disruptive_behavior")
	add(f.DisrespectToStaff, "disrespect_to_staff")
	add(f.BullyingHarassment, "bullying_harassment")
	add(f.Fighting, "fighting")
	add(f.VandalismPropertyDamage, "vandalism_property_damage")
	add(f.CheatingAcademicDishonesty, "cheating_academic_dishonesty")
	add(f.SkippingClasses, "skipping_classes")
	add(f.DressCodeViolation, "dress_code_violation")
	add(f.PhoneUseViolation, "phone_use_violation")
	if f.Other {
		label := "Other"
		if d := strings.TrimSpace(f.OtherDescription); d != "" {
			label = "Other: " + d
		}
		labels = append(labels, label)
	}
	return labels
}

func (f ActionTakenFlags) SelectedLabels() []string {
	labels := []string{}
	add := func(on bool, key string) {
		if on {
			labels = append(labels, HumanizeKey(key))
		}
	}
	add(f.VerbalWarning, "verbal_warning")
	add(f.WrittenWarning, "written_warning")
	add(f.ParentConference, "parent_conference")
	add(f.Detention, "detention")
	add(f.CounselingReferral, "counseling_referral")
	add(f.CommunityService, "community_service")
	if f.Suspension.Selected {
		label := "Suspension"
		if f.Suspension.NumberOfDays == 1 {
			label = "Suspension (1 day)"
		} else if f.Suspension.NumberOfDays > 1 {
			label = fmt.Sprintf("Suspension (%d days)", f.Suspension.NumberOfDays)
		}
		labels = append(labels, label)
	}
	if f.Other {
		label := "Other"
		if d := strings.TrimSpace(f.OtherDescription); d != "" {
			label = "Other: " + d
		}
		labels = append(labels, label)
	}
	return labels
}

func BuildFormPreview(mis MisconductFlags, act ActionTakenFlags) *FormPreview {
	return &FormPreview{
		Misconduct:   mis.SelectedLabels(),
		ActionsTaken: act.SelectedLabels(),
	}
}
