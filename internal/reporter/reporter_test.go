package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ham-zax/AppData-Cleaner/internal/cleaner"
	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
)

func sampleCandidates() []scanner.Candidate {
	return []scanner.Candidate{
		{Path: "/d/DefunctApp", Name: "DefunctApp", SizeBytes: 300 << 20, Location: "Data",
			Class: scanner.Classification{Kind: scanner.KindOrphan}},
		{Path: "/d/Steam", Name: "Steam", SizeBytes: 2 << 30, Location: "Data",
			Class: scanner.Classification{Kind: scanner.KindMatched, Owner: "Steam Client"}},
		{Path: "/d/Microsoft", Name: "Microsoft", Location: "Data",
			Class: scanner.Classification{Kind: scanner.KindProtected}},
		{Path: "/d/Sealed", Name: "Sealed", Location: "Data",
			Class: scanner.Classification{Kind: scanner.KindScanError, Err: "permission denied"}},
	}
}

func TestCandidatesSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary)

	if err := r.Candidates(sampleCandidates()); err != nil {
		t.Fatalf("Candidates: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Candidates examined: 4", "orphan", "matched", "protected", "scan_error", "DefunctApp"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestCandidatesJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatJSON)

	if err := r.Candidates(sampleCandidates()); err != nil {
		t.Fatalf("Candidates: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[1]["owner"] != "Steam Client" {
		t.Errorf("owner = %v", records[1]["owner"])
	}
	if records[3]["error"] != "permission denied" {
		t.Errorf("error = %v", records[3]["error"])
	}
}

func TestCandidatesTable(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatTable)

	if err := r.Candidates(sampleCandidates()); err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "Steam Client") {
		t.Errorf("table output:\n%s", out)
	}
}

func TestCandidatesUnknownFormat(t *testing.T) {
	r := New(&bytes.Buffer{}, OutputFormat("xml"))
	if err := r.Candidates(nil); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestOutcomeShowsBothFreedFigures(t *testing.T) {
	result := &cleaner.Result{
		Outcomes: []cleaner.Outcome{
			{Name: "DefunctApp", SizeBytes: 100, Succeeded: true},
			{Name: "Locked", Failure: cleaner.FailureLocked, Reason: "device busy"},
		},
		DeletedCount:  1,
		DeletedBytes:  100,
		FailedCount:   1,
		FailedNames:   []string{"Locked"},
		ObservedFreed: 90,
		ObservedValid: true,
	}

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Outcome(result); err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Calculated freed: 100 B", "Observed freed:   90 B", "locked", "device busy"} {
		if !strings.Contains(out, want) {
			t.Errorf("outcome missing %q:\n%s", want, out)
		}
	}
}

func sampleResult() *cleaner.Result {
	return &cleaner.Result{
		Outcomes: []cleaner.Outcome{
			{Path: "/d/DefunctApp", Name: "DefunctApp", SizeBytes: 100, Succeeded: true},
			{Path: "/d/Locked", Name: "Locked", SizeBytes: 50, Failure: cleaner.FailureLocked, Reason: "device busy"},
		},
		DeletedCount:  1,
		DeletedBytes:  100,
		FailedCount:   1,
		FailedNames:   []string{"Locked"},
		ObservedFreed: 90,
		ObservedValid: true,
	}
}

func TestOutcomeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Outcome(sampleResult()); err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	var rec struct {
		DeletedCount  int      `json:"deleted_count"`
		DeletedBytes  int64    `json:"deleted_bytes"`
		FailedNames   []string `json:"failed_names"`
		ObservedFreed *int64   `json:"observed_freed_bytes"`
		Outcomes      []struct {
			Name      string `json:"name"`
			Succeeded bool   `json:"succeeded"`
			Failure   string `json:"failure"`
			Reason    string `json:"reason"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if rec.DeletedCount != 1 || rec.DeletedBytes != 100 {
		t.Errorf("counts = %d/%d, want 1/100", rec.DeletedCount, rec.DeletedBytes)
	}
	if rec.ObservedFreed == nil || *rec.ObservedFreed != 90 {
		t.Errorf("observed_freed_bytes = %v, want 90", rec.ObservedFreed)
	}
	if len(rec.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(rec.Outcomes))
	}
	if rec.Outcomes[1].Failure != "locked" || rec.Outcomes[1].Reason != "device busy" {
		t.Errorf("failed outcome = %+v", rec.Outcomes[1])
	}
}

func TestOutcomeJSONOmitsInvalidObserved(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Outcome(&cleaner.Result{DeletedCount: 1}); err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := rec["observed_freed_bytes"]; ok {
		t.Error("unavailable observed figure must be absent, not zero")
	}
}

func TestOutcomeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatYAML).Outcome(sampleResult()); err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"deleted_count: 1", "deleted_bytes: 100", "observed_freed_bytes: 90", "failure: locked"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q:\n%s", want, out)
		}
	}
}

func TestOutcomeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).Outcome(sampleResult()); err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "DefunctApp", "deleted", "Locked", "failed", "locked", "device busy"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestOutcomeUnknownFormat(t *testing.T) {
	r := New(&bytes.Buffer{}, OutputFormat("xml"))
	if err := r.Outcome(&cleaner.Result{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestOutcomeNegativeObservedKeepsSign(t *testing.T) {
	result := &cleaner.Result{
		DeletedCount:  1,
		DeletedBytes:  100,
		ObservedFreed: -2048,
		ObservedValid: true,
	}

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Outcome(result); err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	if !strings.Contains(buf.String(), "Observed freed:   -2.00 KB") {
		t.Errorf("negative observed delta lost its sign:\n%s", buf.String())
	}
}

func TestOutcomeObservedUnavailable(t *testing.T) {
	result := &cleaner.Result{DeletedCount: 1, DeletedBytes: 100}

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Outcome(result); err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	if !strings.Contains(buf.String(), "Observed freed:   unavailable") {
		t.Errorf("outcome:\n%s", buf.String())
	}
}
