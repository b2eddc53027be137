package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tskir/opentargets-test/internal/assoc"
	"github.com/tskir/opentargets-test/internal/opentargets"
	"github.com/tskir/opentargets-test/internal/retry"
)

type stubAPI struct{}

func (stubAPI) FilterAssociations(ctx context.Context, kind opentargets.Kind, value string) ([]opentargets.Association, error) {
	if value != "valid_"+string(kind) {
		return nil, nil
	}
	return []opentargets.Association{
		{Target: opentargets.TargetRef{ID: "valid_target"}, Disease: opentargets.DiseaseRef{ID: "diseaseA"}, Score: opentargets.AssociationScore{Overall: 1.00}},
		{Target: opentargets.TargetRef{ID: "valid_target"}, Disease: opentargets.DiseaseRef{ID: "diseaseB"}, Score: opentargets.AssociationScore{Overall: 0.70}},
		{Target: opentargets.TargetRef{ID: "valid_target"}, Disease: opentargets.DiseaseRef{ID: "diseaseC"}, Score: opentargets.AssociationScore{Overall: 0.50}},
	}, nil
}

type brokenAPI struct{}

func (brokenAPI) FilterAssociations(ctx context.Context, kind opentargets.Kind, value string) ([]opentargets.Association, error) {
	// Records that never match the queried identifier.
	return []opentargets.Association{
		{Target: opentargets.TargetRef{ID: "bogus"}, Disease: opentargets.DiseaseRef{ID: "bogus"}, Score: opentargets.AssociationScore{Overall: 0.5}},
	}, nil
}

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		targetID  string
		diseaseID string
		wantErr   bool
	}{
		{"", "", true},
		{"ENSG00000197386", "", false},
		{"", "Orphanet_399", false},
		{"ENSG00000197386", "Orphanet_399", false},
	}
	for _, tt := range tests {
		err := validateFilters(tt.targetID, tt.diseaseID)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFilters(%q, %q): err = %v, wantErr %v", tt.targetID, tt.diseaseID, err, tt.wantErr)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), stubAPI{}, retry.Policy{Attempts: 1}, "valid_target", "", &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Raw association data",
		"diseaseB",
		"Summary statistics",
		"min:   0.500",
		"max:   1.000",
		"mean:  0.733",
		"stdev: 0.252",
		"no filter was specified",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunNoResults(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), stubAPI{}, retry.Policy{Attempts: 1}, "nonexistent_target", "", &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "query returned no results"); got != 2 {
		t.Errorf("expected the no-results message in both passes, got %d occurrences:\n%s", got, out)
	}
	if strings.Contains(out, "mean") {
		t.Errorf("statistics must not be computed over zero rows:\n%s", out)
	}
}

func TestRunConsistencyViolation(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), brokenAPI{}, retry.Policy{Attempts: 1}, "valid_target", "", &buf)
	if err == nil {
		t.Fatal("expected consistency error")
	}
	var consErr *assoc.ConsistencyError
	if !errors.As(err, &consErr) {
		t.Errorf("expected ConsistencyError, got %v", err)
	}
}
