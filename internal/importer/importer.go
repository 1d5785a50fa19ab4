// Package importer bulk-loads workouts from a JSON export file into the
// tracker, validating each record the same way the API does.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/tracker"
	"github.com/claude/fittrack/internal/validate"
)

// Stats tracks import progress.
type Stats struct {
	Records  int
	Imported int
	Skipped  int

	// Reasons maps a record index (1-based, file order) to why it was skipped.
	Reasons map[int]string
}

// Importer reads a JSON array of workout records and adds each valid one to
// the tracker.
type Importer struct {
	tracker *tracker.Tracker
	valid   *validate.Validator
	log     *slog.Logger
	dryRun  bool
}

// New creates a new Importer.
func New(tr *tracker.Tracker, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{tracker: tr, valid: validate.New(), log: log, dryRun: dryRun}
}

// Import processes the given export file. Invalid records are skipped with a
// reason rather than aborting the whole import.
func (imp *Importer) Import(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var inputs []models.WorkoutInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	stats := &Stats{Records: len(inputs), Reasons: map[int]string{}}
	for i, in := range inputs {
		if errs := imp.valid.Workout(in); errs != nil {
			stats.Skipped++
			stats.Reasons[i+1] = formatFieldErrors(errs)
			imp.log.Warn("skipping record", "record", i+1, "reason", stats.Reasons[i+1])
			continue
		}

		stats.Imported++
		if imp.dryRun {
			continue
		}
		w := imp.tracker.AddWorkout(in)
		imp.log.Info("imported workout", "record", i+1, "id", w.ID, "name", w.Name)
	}

	return stats, nil
}

// formatFieldErrors flattens a field error map into a stable, readable string.
func formatFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + errs[f]
	}
	return strings.Join(parts, "; ")
}
