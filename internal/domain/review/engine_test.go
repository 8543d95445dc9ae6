package review

import (
	"testing"

	"github.com/google/uuid"

	"github.com/healthvault/healthvault/internal/domain/bloodtest"
	"github.com/healthvault/healthvault/internal/domain/catalog"
)

func strPtr(s string) *string { return &s }

func glucoseGroup(candA, candB uuid.UUID) CandidateGroup {
	return CandidateGroup{
		ID:               uuid.New(),
		StandardKey:      "glucose",
		StandardTestName: "Glucose",
		Candidates: []Candidate{
			{ID: candA, OriginalTestName: "Glucose", Value: "110", Confidence: 0.9, ValidationStatus: ValidationValid},
			{ID: candB, OriginalTestName: "Glucose", Value: "112", Confidence: 0.4, ValidationStatus: ValidationValid},
		},
		RecommendedID: &candA,
	}
}

func TestReconcileReplacesExistingValue(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candA, candB := uuid.New(), uuid.New()
	group := glucoseGroup(candA, candB)

	updated, applied := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candA}, cat)
	if applied != 1 {
		t.Fatalf("expected 1 applied group, got %d", applied)
	}
	if len(updated) != 1 {
		t.Fatalf("expected 1 result item, got %d", len(updated))
	}
	if updated[0].Value != "110" {
		t.Errorf("expected value 110, got %s", updated[0].Value)
	}
	if updated[0].Name != "Glucose" {
		t.Errorf("expected name Glucose, got %s", updated[0].Name)
	}
	if updated[0].Notes != nil {
		t.Errorf("expected no note when names match, got %q", *updated[0].Notes)
	}
}

func TestReconcileIgnoredGroupLeavesItemUntouched(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	group := glucoseGroup(uuid.New(), uuid.New())

	updated, applied := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{}, cat)
	if applied != 0 {
		t.Fatalf("expected 0 applied groups, got %d", applied)
	}
	if len(updated) != 1 {
		t.Fatalf("expected 1 result item, got %d", len(updated))
	}
	if updated[0].Value != "95" {
		t.Errorf("expected value 95 unchanged, got %s", updated[0].Value)
	}
}

func TestReconcileSynthesizesNewItem(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candID := uuid.New()
	group := CandidateGroup{
		ID:               uuid.New(),
		StandardKey:      "hba1c",
		StandardTestName: "Hemoglobin A1c",
		Candidates: []Candidate{
			{ID: candID, OriginalTestName: "HbA1c (IFCC)", Value: "6.1", Confidence: 0.8, ValidationStatus: ValidationValid},
		},
	}

	updated, applied := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	if applied != 1 {
		t.Fatalf("expected 1 applied group, got %d", applied)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 result items, got %d", len(updated))
	}
	added := updated[1]
	if added.Name != "Hemoglobin A1c" {
		t.Errorf("expected catalog display name, got %s", added.Name)
	}
	if added.Value != "6.1" {
		t.Errorf("expected value 6.1, got %s", added.Value)
	}
	if added.Notes == nil || *added.Notes != "Original: HbA1c (IFCC)" {
		t.Errorf("expected original-name note, got %v", added.Notes)
	}
	if added.Unit == nil || *added.Unit == "" {
		t.Error("expected unit to fall back to catalog default")
	}
}

func TestReconcileNotesDifferingName(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candID := uuid.New()
	group := CandidateGroup{
		ID:               uuid.New(),
		StandardKey:      "glucose",
		StandardTestName: "Glucose",
		Candidates: []Candidate{
			{ID: candID, OriginalTestName: "Glu (calc)", Value: "108", ValidationStatus: ValidationValid},
		},
	}

	updated, _ := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	if updated[0].Notes == nil || *updated[0].Notes != "Original: Glu (calc)" {
		t.Errorf("expected note with raw name, got %v", updated[0].Notes)
	}
}

func TestReconcileSkipsUnresolvableSelection(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	group := glucoseGroup(uuid.New(), uuid.New())

	// Selection references a candidate that is not in the group.
	updated, applied := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: uuid.New()}, cat)
	if applied != 0 {
		t.Fatalf("expected 0 applied groups, got %d", applied)
	}
	if updated[0].Value != "95" {
		t.Errorf("expected value 95 unchanged, got %s", updated[0].Value)
	}
}

func TestReconcileRejectsNonValidSelection(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candID := uuid.New()
	group := CandidateGroup{
		ID:          uuid.New(),
		StandardKey: "glucose",
		Candidates: []Candidate{
			{ID: candID, OriginalTestName: "Glucose", Value: "abc", ValidationStatus: ValidationInvalidType},
		},
	}

	updated, applied := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	if applied != 0 {
		t.Fatalf("expected non-valid selection to be rejected, got %d applied", applied)
	}
	if updated[0].Value != "95" {
		t.Errorf("expected value 95 unchanged, got %s", updated[0].Value)
	}
}

func TestReconcileSelectionFidelity(t *testing.T) {
	cat := catalog.Default()
	existingUnit := "mg/dL"
	prior := []bloodtest.BloodTestItem{{
		ID: uuid.New(), Name: "Glucose", Value: "95",
		Unit: &existingUnit, ReferenceRange: strPtr("70-99"),
	}}

	candID := uuid.New()
	group := CandidateGroup{
		ID:          uuid.New(),
		StandardKey: "glucose",
		Candidates: []Candidate{{
			ID: candID, OriginalTestName: "Glucose", Value: "110",
			Unit: strPtr("mmol/L"), ReferenceRange: strPtr("3.9-5.5"),
			IsAbnormal: true, ValidationStatus: ValidationValid,
		}},
	}

	updated, _ := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	got := updated[0]
	if got.Value != "110" || *got.Unit != "mmol/L" || *got.ReferenceRange != "3.9-5.5" || !got.IsAbnormal {
		t.Errorf("expected candidate fields to be applied exactly, got %+v", got)
	}
}

func TestReconcileKeepsExistingFieldsWhenCandidateNil(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{
		ID: uuid.New(), Name: "Glucose", Value: "95",
		Unit: strPtr("mg/dL"), ReferenceRange: strPtr("70-99"),
	}}

	candID := uuid.New()
	group := CandidateGroup{
		ID:          uuid.New(),
		StandardKey: "glucose",
		Candidates: []Candidate{{
			ID: candID, OriginalTestName: "Glucose", Value: "110", ValidationStatus: ValidationValid,
		}},
	}

	updated, _ := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	got := updated[0]
	if got.Unit == nil || *got.Unit != "mg/dL" {
		t.Errorf("expected existing unit kept, got %v", got.Unit)
	}
	if got.ReferenceRange == nil || *got.ReferenceRange != "70-99" {
		t.Errorf("expected existing range kept, got %v", got.ReferenceRange)
	}
}

func TestReconcileCarriesUnmatchedItems(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{
		{ID: uuid.New(), Name: "Some Exotic Assay XQ-7", Value: "42"},
		{ID: uuid.New(), Name: "Glucose", Value: "95"},
	}

	candID := uuid.New()
	group := CandidateGroup{
		ID:          uuid.New(),
		StandardKey: "glucose",
		Candidates:  []Candidate{{ID: candID, OriginalTestName: "Glucose", Value: "110", ValidationStatus: ValidationValid}},
	}

	updated, _ := Reconcile(prior, []CandidateGroup{group}, map[uuid.UUID]uuid.UUID{group.ID: candID}, cat)
	if len(updated) != 2 {
		t.Fatalf("expected 2 items, got %d", len(updated))
	}
	if updated[0].Name != "Some Exotic Assay XQ-7" || updated[0].Value != "42" {
		t.Errorf("expected unmatched item carried forward verbatim, got %+v", updated[0])
	}
	if updated[1].Value != "110" {
		t.Errorf("expected glucose replaced, got %s", updated[1].Value)
	}
}

func TestReconcileNoDuplicateKeys(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candGlucose, candHbA1c := uuid.New(), uuid.New()
	groups := []CandidateGroup{
		{
			ID:          uuid.New(),
			StandardKey: "glucose",
			Candidates:  []Candidate{{ID: candGlucose, OriginalTestName: "Glucose", Value: "110", ValidationStatus: ValidationValid}},
		},
		{
			ID:               uuid.New(),
			StandardKey:      "hba1c",
			StandardTestName: "Hemoglobin A1c",
			Candidates:       []Candidate{{ID: candHbA1c, OriginalTestName: "HbA1c", Value: "6.1", ValidationStatus: ValidationValid}},
		},
	}
	selections := map[uuid.UUID]uuid.UUID{
		groups[0].ID: candGlucose,
		groups[1].ID: candHbA1c,
	}

	updated, applied := Reconcile(prior, groups, selections, cat)
	if applied != 2 {
		t.Fatalf("expected 2 applied groups, got %d", applied)
	}

	seen := make(map[string]bool)
	for _, item := range updated {
		param, ok := cat.Resolve(item.Name)
		if !ok {
			continue
		}
		if seen[param.Key] {
			t.Fatalf("duplicate standardized key %s in results", param.Key)
		}
		seen[param.Key] = true
	}
}

func TestReconcileIdempotent(t *testing.T) {
	cat := catalog.Default()
	prior := []bloodtest.BloodTestItem{{ID: uuid.New(), Name: "Glucose", Value: "95"}}

	candGlucose, candHbA1c := uuid.New(), uuid.New()
	groups := []CandidateGroup{
		{
			ID:          uuid.New(),
			StandardKey: "glucose",
			Candidates:  []Candidate{{ID: candGlucose, OriginalTestName: "Glu (calc)", Value: "110", ValidationStatus: ValidationValid}},
		},
		{
			ID:               uuid.New(),
			StandardKey:      "hba1c",
			StandardTestName: "Hemoglobin A1c",
			Candidates:       []Candidate{{ID: candHbA1c, OriginalTestName: "HbA1c", Value: "6.1", ValidationStatus: ValidationValid}},
		},
	}
	selections := map[uuid.UUID]uuid.UUID{
		groups[0].ID: candGlucose,
		groups[1].ID: candHbA1c,
	}

	once, _ := Reconcile(prior, groups, selections, cat)
	twice, _ := Reconcile(once, groups, selections, cat)

	if len(once) != len(twice) {
		t.Fatalf("expected same item count, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		a, b := once[i], twice[i]
		if a.Name != b.Name || a.Value != b.Value || a.IsAbnormal != b.IsAbnormal {
			t.Errorf("item %d changed on repeat: %+v vs %+v", i, a, b)
		}
		switch {
		case a.Notes == nil && b.Notes == nil:
		case a.Notes != nil && b.Notes != nil && *a.Notes == *b.Notes:
		default:
			t.Errorf("item %d notes changed on repeat: %v vs %v", i, a.Notes, b.Notes)
		}
	}
}

func TestApplyMetadata(t *testing.T) {
	bt := &bloodtest.BloodTestResult{
		Metadata: map[string]string{bloodtest.MetaPendingReview: "true"},
		Results: []bloodtest.BloodTestItem{
			{Name: "Glucose", Value: "110"},
			{Name: "Hemoglobin A1c", Value: "6.1"},
		},
	}

	ApplyMetadata(bt, 2, true)

	if _, ok := bt.Metadata[bloodtest.MetaPendingReview]; ok {
		t.Error("expected pending_review marker removed")
	}
	if bt.Metadata[bloodtest.MetaReviewCompleted] != "true" {
		t.Error("expected review_completed marker")
	}
	if bt.Metadata[bloodtest.MetaReviewedGroups] != "2" {
		t.Errorf("expected reviewed_groups_count 2, got %s", bt.Metadata[bloodtest.MetaReviewedGroups])
	}
	if bt.Metadata[bloodtest.MetaImportItems] != "2" {
		t.Errorf("expected import_items_count 2, got %s", bt.Metadata[bloodtest.MetaImportItems])
	}
}

func TestApplyMetadataWithoutFullImport(t *testing.T) {
	bt := &bloodtest.BloodTestResult{}
	ApplyMetadata(bt, 1, false)
	if _, ok := bt.Metadata[bloodtest.MetaImportItems]; ok {
		t.Error("expected no import_items_count for partial review")
	}
}

func TestRecommendedPrefersUpstream(t *testing.T) {
	candA, candB := uuid.New(), uuid.New()
	g := CandidateGroup{
		Candidates: []Candidate{
			{ID: candA, Value: "1", ValidationStatus: ValidationValid},
			{ID: candB, Value: "2", ValidationStatus: ValidationValid},
		},
		RecommendedID: &candB,
	}
	if rec := g.Recommended(); rec == nil || rec.ID != candB {
		t.Errorf("expected upstream recommendation %s, got %v", candB, rec)
	}
}

func TestRecommendedFallsBackToFirstValid(t *testing.T) {
	candA, candB := uuid.New(), uuid.New()
	g := CandidateGroup{
		Candidates: []Candidate{
			{ID: candA, Value: "1", ValidationStatus: ValidationMissingData},
			{ID: candB, Value: "2", ValidationStatus: ValidationValid},
		},
	}
	if rec := g.Recommended(); rec == nil || rec.ID != candB {
		t.Errorf("expected first valid candidate %s, got %v", candB, rec)
	}
}

func TestRecommendedSkipsInvalidUpstream(t *testing.T) {
	candA, candB := uuid.New(), uuid.New()
	g := CandidateGroup{
		Candidates: []Candidate{
			{ID: candA, Value: "1", ValidationStatus: ValidationOutOfRange},
			{ID: candB, Value: "2", ValidationStatus: ValidationValid},
		},
		RecommendedID: &candA,
	}
	if rec := g.Recommended(); rec == nil || rec.ID != candB {
		t.Errorf("expected fallback past non-valid upstream pick, got %v", rec)
	}
}

func TestRecommendedNoneWhenNoValidCandidate(t *testing.T) {
	g := CandidateGroup{
		Candidates: []Candidate{
			{ID: uuid.New(), Value: "x", ValidationStatus: ValidationInvalidType},
			{ID: uuid.New(), Value: "", ValidationStatus: ValidationMissingData},
		},
	}
	if rec := g.Recommended(); rec != nil {
		t.Errorf("expected no recommendation, got %v", rec)
	}
}
