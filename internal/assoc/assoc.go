// Package assoc aggregates Open Targets association records per query axis
// and models the three-way outcome of each axis: unspecified, empty, or
// populated.
package assoc

import (
	"context"
	"fmt"

	"github.com/tskir/opentargets-test/internal/opentargets"
	"github.com/tskir/opentargets-test/internal/retry"
)

// State is the outcome category of one query axis.
type State int

const (
	// StateUnspecified marks an axis the user did not ask about.
	StateUnspecified State = iota
	// StateEmpty marks an axis that was queried and matched nothing.
	StateEmpty
	// StatePopulated marks an axis with at least one matching record.
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateUnspecified:
		return "unspecified"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Record is one flattened association row.
type Record struct {
	TargetID     string
	DiseaseID    string
	ScoreOverall float64
}

// Result is the outcome of querying one axis.
type Result struct {
	State State
	// Records preserves the API return order. Nil unless State is StatePopulated.
	Records []Record
}

// ResultMap holds one Result per query axis. Aggregate always populates both
// keys, regardless of which values were supplied.
type ResultMap map[opentargets.Kind]Result

// Kinds is the fixed processing and reporting order of the two query axes.
var Kinds = []opentargets.Kind{opentargets.KindTarget, opentargets.KindDisease}

// ConsistencyError reports an API contract breach: a returned record whose
// identifier does not match the filter value it was queried with.
type ConsistencyError struct {
	Kind opentargets.Kind
	Row  int
	Want string
	Got  string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("API returned inconsistent data: row %d has %s ID %q, queried for %q",
		e.Row, e.Kind, e.Got, e.Want)
}

// Aggregate queries both axes sequentially (target first), each through the
// retry-wrapped API, and returns a ResultMap with exactly the two axis keys.
// An axis with no supplied value resolves to StateUnspecified without any
// network call. Non-empty responses are checked row-by-row against the filter
// value; a mismatch aborts with a ConsistencyError.
func Aggregate(ctx context.Context, api opentargets.AssociationAPI, pol retry.Policy, targetID, diseaseID string) (ResultMap, error) {
	values := map[opentargets.Kind]string{
		opentargets.KindTarget:  targetID,
		opentargets.KindDisease: diseaseID,
	}

	results := make(ResultMap, len(Kinds))
	for _, kind := range Kinds {
		value := values[kind]
		if value == "" {
			results[kind] = Result{State: StateUnspecified}
			continue
		}

		raw, err := query(ctx, api, pol, kind, value)
		if err != nil {
			return nil, fmt.Errorf("querying %s associations: %w", kind, err)
		}

		records := flatten(raw)
		if err := checkConsistency(kind, value, records); err != nil {
			return nil, err
		}

		state := StateEmpty
		if len(records) > 0 {
			state = StatePopulated
		}
		results[kind] = Result{State: state, Records: records}
	}
	return results, nil
}

// query issues one logical API call wrapped in the retry policy.
func query(ctx context.Context, api opentargets.AssociationAPI, pol retry.Policy, kind opentargets.Kind, value string) ([]opentargets.Association, error) {
	var records []opentargets.Association
	fetch := retry.Wrap(pol, func(ctx context.Context) error {
		var err error
		records, err = api.FilterAssociations(ctx, kind, value)
		return err
	})
	if err := fetch(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func flatten(raw []opentargets.Association) []Record {
	if len(raw) == 0 {
		return nil
	}
	records := make([]Record, len(raw))
	for i, a := range raw {
		records[i] = Record{
			TargetID:     a.Target.ID,
			DiseaseID:    a.Disease.ID,
			ScoreOverall: a.Score.Overall,
		}
	}
	return records
}

// checkConsistency asserts that every record matches the queried identifier
// exactly. This guards against API misbehavior; violations are fatal, never
// silently filtered out.
func checkConsistency(kind opentargets.Kind, want string, records []Record) error {
	for i, r := range records {
		got := r.TargetID
		if kind == opentargets.KindDisease {
			got = r.DiseaseID
		}
		if got != want {
			return &ConsistencyError{Kind: kind, Row: i, Want: want, Got: got}
		}
	}
	return nil
}
