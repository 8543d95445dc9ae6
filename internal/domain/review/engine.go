package review

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/healthvault/healthvault/internal/domain/bloodtest"
	"github.com/healthvault/healthvault/internal/domain/catalog"
)

// Reconcile merges the selected candidates into the prior result list and
// returns the updated list plus the number of groups that were applied.
// Groups whose selection is absent, unresolvable, or not valid are skipped
// and leave the prior items untouched. The function has no side effects;
// callers persist the result and adjust record metadata afterwards (see
// ApplyMetadata).
func Reconcile(prior []bloodtest.BloodTestItem, groups []CandidateGroup, selections map[uuid.UUID]uuid.UUID, cat *catalog.Catalog) ([]bloodtest.BloodTestItem, int) {
	// Resolve each selected candidate within its own group. A selection
	// pointing at a removed candidate, or at one that is not valid, is
	// dropped rather than failing the whole operation.
	type pending struct {
		cand  *Candidate
		group *CandidateGroup
	}
	byKey := make(map[string]pending)
	var keyOrder []string
	for i := range groups {
		g := &groups[i]
		candID, ok := selections[g.ID]
		if !ok {
			continue
		}
		cand := g.Candidate(candID)
		if cand == nil || cand.ValidationStatus != ValidationValid {
			continue
		}
		if _, dup := byKey[g.StandardKey]; !dup {
			keyOrder = append(keyOrder, g.StandardKey)
		}
		byKey[g.StandardKey] = pending{cand: cand, group: g}
	}

	applied := 0
	processed := make(map[string]bool)
	updated := make([]bloodtest.BloodTestItem, 0, len(prior)+len(byKey))

	for _, item := range prior {
		param, ok := cat.Resolve(item.Name)
		if !ok {
			updated = append(updated, item)
			continue
		}
		sel, has := byKey[param.Key]
		if !has || processed[param.Key] {
			updated = append(updated, item)
			continue
		}

		item.Value = sel.cand.Value
		if sel.cand.Unit != nil {
			item.Unit = sel.cand.Unit
		}
		if sel.cand.ReferenceRange != nil {
			item.ReferenceRange = sel.cand.ReferenceRange
		}
		item.IsAbnormal = sel.cand.IsAbnormal
		if sel.cand.OriginalTestName != item.Name {
			item.Notes = appendNote(item.Notes, "Original: "+sel.cand.OriginalTestName)
		}
		processed[param.Key] = true
		applied++
		updated = append(updated, item)
	}

	// Selections whose key never matched a prior item introduce a new test.
	for _, key := range keyOrder {
		if processed[key] {
			continue
		}
		sel := byKey[key]

		item := bloodtest.BloodTestItem{
			ID:         uuid.New(),
			Value:      sel.cand.Value,
			Unit:       sel.cand.Unit,
			IsAbnormal: sel.cand.IsAbnormal,
		}
		if param, ok := cat.Lookup(key); ok {
			item.Name = param.DisplayName
			if item.Unit == nil && param.Unit != "" {
				unit := param.Unit
				item.Unit = &unit
			}
			if sel.cand.ReferenceRange != nil {
				item.ReferenceRange = sel.cand.ReferenceRange
			} else if param.ReferenceRange != "" {
				rr := param.ReferenceRange
				item.ReferenceRange = &rr
			}
		} else {
			item.Name = sel.group.StandardTestName
			item.ReferenceRange = sel.cand.ReferenceRange
		}
		item.Notes = appendNote(nil, "Original: "+sel.cand.OriginalTestName)

		processed[key] = true
		applied++
		updated = append(updated, item)
	}

	return updated, applied
}

// appendNote adds line to the newline-joined notes, skipping lines already
// present so that repeating a reconciliation does not stack duplicates.
func appendNote(notes *string, line string) *string {
	if notes == nil || *notes == "" {
		return &line
	}
	for _, existing := range strings.Split(*notes, "\n") {
		if existing == line {
			return notes
		}
	}
	joined := *notes + "\n" + line
	return &joined
}

// ApplyMetadata records a completed reconciliation on the blood-test record:
// the pending-review marker is removed and completion markers are written.
// For full-import flows the resulting item count is recorded as well.
func ApplyMetadata(bt *bloodtest.BloodTestResult, applied int, fullImport bool) {
	if bt.Metadata == nil {
		bt.Metadata = map[string]string{}
	}
	delete(bt.Metadata, bloodtest.MetaPendingReview)
	bt.Metadata[bloodtest.MetaReviewCompleted] = "true"
	bt.Metadata[bloodtest.MetaReviewedGroups] = strconv.Itoa(applied)
	if fullImport {
		bt.Metadata[bloodtest.MetaImportItems] = strconv.Itoa(len(bt.Results))
	}
}
