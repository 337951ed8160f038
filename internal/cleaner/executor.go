// Package cleaner removes selected candidate directories, tolerating
// per-item failure, and accounts for freed space two ways: calculated (sum
// of pre-measured sizes of the candidates that were removed) and observed
// (free-space delta on a reference volume across the batch).
package cleaner

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ham-zax/AppData-Cleaner/internal/platform"
	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
)

// maxWorkers throttles concurrent recursive deletes; unbounded fan-out just
// thrashes the filesystem.
const maxWorkers = 8

// DefaultWorkers is the pool size used when the caller does not choose one.
const DefaultWorkers = 4

// Outcome records the result of one candidate's removal. Removal is
// all-or-nothing from the caller's perspective: a failed candidate is
// reported failed even if some of its contents were already unlinked.
type Outcome struct {
	Path      string
	Name      string
	SizeBytes int64
	Succeeded bool
	Failure   FailureKind
	Reason    string
}

// Result aggregates a deletion batch. DeletedBytes and ObservedFreed can
// legitimately diverge because of concurrent system activity; both are
// reported as-is, never reconciled.
type Result struct {
	Outcomes      []Outcome
	DeletedCount  int
	DeletedBytes  int64 // calculated freed: sizes of succeeded candidates only
	FailedCount   int
	FailedNames   []string
	ObservedFreed int64 // free-space delta on the reference volume
	ObservedValid bool  // false when the volume could not be sampled
}

// Executor performs the removals.
type Executor struct {
	workers   int
	remove    func(string) error
	freeSpace func(string) (uint64, error)
}

// New creates an Executor with a bounded worker pool. workers is clamped to
// [1, maxWorkers].
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return &Executor{
		workers:   workers,
		remove:    os.RemoveAll,
		freeSpace: platform.FreeSpace,
	}
}

// Execute removes every candidate in selected. A failure on one candidate
// never aborts the rest, and there is no retry. Workers publish typed
// outcomes to a single results channel; the collector loop below is the only
// writer of the aggregate.
func (e *Executor) Execute(selected []scanner.Candidate) Result {
	var result Result
	if len(selected) == 0 {
		return result
	}

	// Reference volume: the volume the first candidate lives on, sampled
	// immediately before the first deletion and after the last.
	refVolume := filepath.Dir(selected[0].Path)
	before, beforeErr := e.freeSpace(refVolume)

	jobs := make(chan scanner.Candidate)
	outcomes := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				outcomes <- e.removeOne(cand)
			}
		}()
	}
	go func() {
		for _, c := range selected {
			jobs <- c
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for out := range outcomes {
		result.Outcomes = append(result.Outcomes, out)
		if out.Succeeded {
			result.DeletedCount++
			result.DeletedBytes += out.SizeBytes
		} else {
			result.FailedCount++
			result.FailedNames = append(result.FailedNames, out.Name)
		}
	}
	sort.Strings(result.FailedNames)

	if after, err := e.freeSpace(refVolume); err == nil && beforeErr == nil {
		result.ObservedFreed = int64(after) - int64(before)
		result.ObservedValid = true
	}
	return result
}

func (e *Executor) removeOne(cand scanner.Candidate) Outcome {
	out := Outcome{Path: cand.Path, Name: cand.Name, SizeBytes: cand.SizeBytes}
	if err := guardPath(cand.Path); err != nil {
		out.Failure = FailureOther
		out.Reason = err.Error()
		return out
	}
	if err := e.remove(cand.Path); err != nil {
		out.Failure = Categorize(err)
		out.Reason = err.Error()
		return out
	}
	out.Succeeded = true
	return out
}

// FailuresByKind splits the failed outcomes by category for reporting.
func (r *Result) FailuresByKind() map[FailureKind][]Outcome {
	grouped := make(map[FailureKind][]Outcome)
	for _, out := range r.Outcomes {
		if !out.Succeeded {
			grouped[out.Failure] = append(grouped[out.Failure], out)
		}
	}
	return grouped
}
