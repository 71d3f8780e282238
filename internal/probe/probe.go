// Package probe runs independent existence checks over a day's candidate
// images and accumulates the ones that resolve.
//
// Each candidate is probed on its own goroutine; nothing waits on another
// candidate. Results may arrive in any order, so ResultSet keeps found paths
// sorted by candidate index and drops duplicates.
package probe

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/almanac/internal/assets"
)

// Result is the outcome of probing one candidate.
type Result struct {
	Candidate assets.Candidate
	Found     bool
}

// ResultSet is the ordered, duplicate-free set of found candidates for one
// day. It only grows.
type ResultSet struct {
	found []assets.Candidate
}

// Add inserts c in candidate order. It reports false if c was already
// present.
func (s *ResultSet) Add(c assets.Candidate) bool {
	i := sort.Search(len(s.found), func(i int) bool { return s.found[i].Index >= c.Index })
	if i < len(s.found) && s.found[i].Index == c.Index {
		return false
	}
	s.found = append(s.found, assets.Candidate{})
	copy(s.found[i+1:], s.found[i:])
	s.found[i] = c
	return true
}

// Len returns the number of found candidates.
func (s *ResultSet) Len() int { return len(s.found) }

// Paths returns found paths in candidate order.
func (s *ResultSet) Paths() []string {
	out := make([]string, len(s.found))
	for i, c := range s.found {
		out[i] = c.Path
	}
	return out
}

// Candidates returns a copy of the found candidates.
func (s *ResultSet) Candidates() []assets.Candidate {
	return append([]assets.Candidate(nil), s.found...)
}

// One probes a single candidate. Any load failure is a miss; it is logged
// at debug level only.
func One(ctx context.Context, src assets.Source, c assets.Candidate, log *zap.Logger) Result {
	err := assets.Probe(ctx, src, c.Path)
	if err != nil {
		if log != nil && !errors.Is(err, context.Canceled) {
			log.Debug("probe miss", zap.String("path", c.Path), zap.Error(err))
		}
		return Result{Candidate: c}
	}
	return Result{Candidate: c, Found: true}
}

// Discover probes every candidate concurrently and returns the found set
// once all have settled. onResult, if non-nil, is called as each probe
// resolves, from the probing goroutine.
func Discover(ctx context.Context, src assets.Source, cands []assets.Candidate, log *zap.Logger, onResult func(Result)) *ResultSet {
	results := make(chan Result, len(cands))
	var g errgroup.Group
	for _, c := range cands {
		g.Go(func() error {
			r := One(ctx, src, c, log)
			if onResult != nil {
				onResult(r)
			}
			results <- r
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	set := &ResultSet{}
	for r := range results {
		if r.Found {
			set.Add(r.Candidate)
		}
	}
	return set
}

// AnyExists reports whether at least one candidate exists. The remaining
// probes are cancelled as soon as one succeeds.
func AnyExists(ctx context.Context, src assets.Source, cands []assets.Candidate, log *zap.Logger) bool {
	if len(cands) == 0 {
		return false
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range cands {
		g.Go(func() error {
			if One(gctx, src, c, log).Found {
				return errFound
			}
			return nil
		})
	}
	return errors.Is(g.Wait(), errFound)
}

// errFound short-circuits AnyExists through errgroup cancellation.
var errFound = errors.New("found")
