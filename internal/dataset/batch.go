// Package dataset derives one support profile per imported assessment row.
// Rows are independent, so they are processed by a bounded worker pool; a
// rejected row is recorded and skipped, never fatal, so a batch import can
// report a summary instead of halting.
package dataset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/teachsmart/profile-engine/internal/normalize"
	"github.com/teachsmart/profile-engine/internal/profile"
	"github.com/teachsmart/profile-engine/internal/types"
)

const defaultWorkers = 4

// RowFailure records one rejected row with its 0-based index and reason.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Summary reports the outcome of a batch derivation.
type Summary struct {
	Processed int          `json:"processed"`
	Rejected  int          `json:"rejected"`
	Failures  []RowFailure `json:"failures,omitempty"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d processed, %d rejected", s.Processed, s.Rejected)
}

// Options configures a batch run.
type Options struct {
	Source  types.Source
	Workers int
	// NewID assigns profile IDs; defaults to random UUIDs.
	NewID func() string
}

// DeriveBatch derives profiles for every row. Profiles are returned in
// input order with rejected rows omitted; the summary lists each rejection
// with its row index. The only error returned is context cancellation.
func DeriveBatch(ctx context.Context, rows []types.RawRecord, opts Options) ([]*types.SupportProfile, Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	profiles := make([]*types.SupportProfile, len(rows))
	reasons := make([]string, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := normalize.Normalize(row)
			if err != nil {
				if rejected, ok := err.(*normalize.RejectedRecordError); ok {
					reasons[i] = rejected.Reason
					return nil
				}
				return err
			}
			profiles[i] = profile.Synthesize(rec, opts.Source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	// IDs are assigned sequentially after the parallel phase so that runs
	// with a deterministic NewID stay reproducible regardless of scheduling.
	out := make([]*types.SupportProfile, 0, len(rows))
	summary := Summary{}
	for i := range rows {
		if profiles[i] != nil {
			profiles[i].ID = newID()
			out = append(out, profiles[i])
			summary.Processed++
			continue
		}
		summary.Rejected++
		summary.Failures = append(summary.Failures, RowFailure{Row: i, Reason: reasons[i]})
	}
	return out, summary, nil
}
