// Package reporter renders the classified candidate list and the deletion
// outcome for collaborators (console, files). It never makes decisions; the
// pipeline already has.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ham-zax/AppData-Cleaner/internal/cleaner"
	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
	"github.com/ham-zax/AppData-Cleaner/pkg/utils"
)

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	FormatSummary OutputFormat = "summary"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// Reporter writes reports in one format to one writer.
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a Reporter.
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{writer: writer, format: format}
}

// candidateRecord is the serialized form of a candidate.
type candidateRecord struct {
	Path           string `json:"path" yaml:"path"`
	Name           string `json:"name" yaml:"name"`
	SizeBytes      int64  `json:"size_bytes" yaml:"size_bytes"`
	Location       string `json:"location" yaml:"location"`
	Classification string `json:"classification" yaml:"classification"`
	Owner          string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Error          string `json:"error,omitempty" yaml:"error,omitempty"`
	Selected       bool   `json:"selected" yaml:"selected"`
}

func toRecords(candidates []scanner.Candidate) []candidateRecord {
	records := make([]candidateRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, candidateRecord{
			Path:           c.Path,
			Name:           c.Name,
			SizeBytes:      c.SizeBytes,
			Location:       c.Location,
			Classification: c.Class.Kind.String(),
			Owner:          c.Class.Owner,
			Error:          c.Class.Err,
			Selected:       c.Selected,
		})
	}
	return records
}

// Candidates renders the classified candidate list.
func (r *Reporter) Candidates(candidates []scanner.Candidate) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(candidates))
	case FormatYAML:
		return yaml.NewEncoder(r.writer).Encode(toRecords(candidates))
	case FormatTable:
		return r.candidatesTable(candidates)
	case FormatSummary:
		return r.candidatesSummary(candidates)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) candidatesSummary(candidates []scanner.Candidate) error {
	byKind := make(map[scanner.Kind][]scanner.Candidate)
	for _, c := range candidates {
		byKind[c.Class.Kind] = append(byKind[c.Class.Kind], c)
	}

	fmt.Fprintf(r.writer, "=== Scan Summary ===\n")
	fmt.Fprintf(r.writer, "Candidates examined: %d\n\n", len(candidates))
	for _, kind := range []scanner.Kind{
		scanner.KindOrphan,
		scanner.KindMatched,
		scanner.KindProtected,
		scanner.KindTooSmall,
		scanner.KindScanError,
	} {
		group := byKind[kind]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(r.writer, "%-12s %4d  (%s)\n",
			kind.String()+":", len(group), utils.FormatBytes(scanner.TotalSize(group)))
	}

	orphans := byKind[scanner.KindOrphan]
	if len(orphans) > 0 {
		fmt.Fprintf(r.writer, "\nOrphans (largest first):\n")
		sorted := make([]scanner.Candidate, len(orphans))
		copy(sorted, orphans)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SizeBytes > sorted[j].SizeBytes
		})
		for _, c := range sorted {
			fmt.Fprintf(r.writer, "  %-40s %10s  [%s]\n",
				c.Name, utils.FormatBytes(c.SizeBytes), c.Location)
		}
	}
	return nil
}

func (r *Reporter) candidatesTable(candidates []scanner.Candidate) error {
	fmt.Fprintf(r.writer, "%-40s %-12s %-10s %-16s %s\n",
		"NAME", "CLASS", "SIZE", "LOCATION", "OWNER")
	for _, c := range candidates {
		fmt.Fprintf(r.writer, "%-40s %-12s %-10s %-16s %s\n",
			c.Name, c.Class.Kind, utils.FormatBytes(c.SizeBytes), c.Location, c.Class.Owner)
	}
	return nil
}

// outcomeItem is the serialized form of one candidate's removal.
type outcomeItem struct {
	Path      string `json:"path" yaml:"path"`
	Name      string `json:"name" yaml:"name"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
	Succeeded bool   `json:"succeeded" yaml:"succeeded"`
	Failure   string `json:"failure,omitempty" yaml:"failure,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// outcomeRecord is the serialized form of a deletion result. ObservedFreed
// is a pointer so an unavailable sample is absent rather than a zero that
// looks like a measurement.
type outcomeRecord struct {
	DeletedCount  int           `json:"deleted_count" yaml:"deleted_count"`
	DeletedBytes  int64         `json:"deleted_bytes" yaml:"deleted_bytes"`
	FailedCount   int           `json:"failed_count" yaml:"failed_count"`
	FailedNames   []string      `json:"failed_names,omitempty" yaml:"failed_names,omitempty"`
	ObservedFreed *int64        `json:"observed_freed_bytes,omitempty" yaml:"observed_freed_bytes,omitempty"`
	Outcomes      []outcomeItem `json:"outcomes" yaml:"outcomes"`
}

func toOutcomeRecord(result *cleaner.Result) outcomeRecord {
	rec := outcomeRecord{
		DeletedCount: result.DeletedCount,
		DeletedBytes: result.DeletedBytes,
		FailedCount:  result.FailedCount,
		FailedNames:  result.FailedNames,
	}
	if result.ObservedValid {
		observed := result.ObservedFreed
		rec.ObservedFreed = &observed
	}
	for _, out := range result.Outcomes {
		item := outcomeItem{
			Path:      out.Path,
			Name:      out.Name,
			SizeBytes: out.SizeBytes,
			Succeeded: out.Succeeded,
		}
		if !out.Succeeded {
			item.Failure = out.Failure.String()
			item.Reason = out.Reason
		}
		rec.Outcomes = append(rec.Outcomes, item)
	}
	return rec
}

// Outcome renders the deletion result, including both freed-space figures.
// They measure different things and may diverge; neither one is "the"
// answer, so both are always shown.
func (r *Reporter) Outcome(result *cleaner.Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(toOutcomeRecord(result))
	case FormatYAML:
		return yaml.NewEncoder(r.writer).Encode(toOutcomeRecord(result))
	case FormatTable:
		return r.outcomeTable(result)
	case FormatSummary:
		return r.outcomeSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) outcomeSummary(result *cleaner.Result) error {
	fmt.Fprintf(r.writer, "=== Deletion Summary ===\n")
	fmt.Fprintf(r.writer, "Deleted: %d directories\n", result.DeletedCount)
	fmt.Fprintf(r.writer, "Calculated freed: %s\n", utils.FormatBytes(result.DeletedBytes))
	if result.ObservedValid {
		fmt.Fprintf(r.writer, "Observed freed:   %s\n", utils.FormatSignedBytes(result.ObservedFreed))
	} else {
		fmt.Fprintf(r.writer, "Observed freed:   unavailable\n")
	}

	if result.FailedCount > 0 {
		fmt.Fprintf(r.writer, "\nFailed: %d\n", result.FailedCount)
		for kind, outs := range result.FailuresByKind() {
			fmt.Fprintf(r.writer, "  %s: %d\n", kind, len(outs))
			for _, out := range outs {
				fmt.Fprintf(r.writer, "    %s: %s\n", out.Name, out.Reason)
			}
		}
	}
	return nil
}

func (r *Reporter) outcomeTable(result *cleaner.Result) error {
	fmt.Fprintf(r.writer, "%-40s %-10s %-10s %-8s %s\n",
		"NAME", "STATUS", "SIZE", "FAILURE", "REASON")
	for _, out := range result.Outcomes {
		status := "deleted"
		failure := ""
		if !out.Succeeded {
			status = "failed"
			failure = out.Failure.String()
		}
		fmt.Fprintf(r.writer, "%-40s %-10s %-10s %-8s %s\n",
			out.Name, status, utils.FormatBytes(out.SizeBytes), failure, out.Reason)
	}
	fmt.Fprintf(r.writer, "\nDeleted %d, failed %d, calculated freed %s",
		result.DeletedCount, result.FailedCount, utils.FormatBytes(result.DeletedBytes))
	if result.ObservedValid {
		fmt.Fprintf(r.writer, ", observed freed %s", utils.FormatSignedBytes(result.ObservedFreed))
	}
	fmt.Fprintln(r.writer)
	return nil
}
