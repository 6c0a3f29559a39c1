package reconcile

import (
	"fmt"

	"photo-manager/core/library"
)

// Compare is the single entry point of the matching engine. After
// validating both collections it aligns them at the given threshold and
// classifies every album as matched, count-mismatched, or missing. The
// inputs must be fully materialized; the engine performs no I/O of its own.
func Compare(local, remote library.Collection, threshold float64) (*Result, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v outside [0,1]", library.ErrValidation, threshold)
	}
	if err := local.Validate(library.SourceLocal); err != nil {
		return nil, fmt.Errorf("local collection: %w", err)
	}
	if err := remote.Validate(library.SourceRemote); err != nil {
		return nil, fmt.Errorf("remote collection: %w", err)
	}

	alignment := Align(local, remote, threshold)
	return Reconcile(alignment), nil
}

// Reconcile turns an alignment into the classified diff. Unmatched local
// albums are missing on the remote side and vice versa; accepted pairs split
// into exact matches and count mismatches, keeping the pair order. This
// stage is a pure transformation with no failure modes.
func Reconcile(alignment Alignment) *Result {
	result := &Result{
		MissingInRemote: append([]library.Album{}, alignment.UnmatchedLocal...),
		MissingInLocal:  append([]library.Album{}, alignment.UnmatchedRemote...),
		CountMismatches: []CountMismatch{},
	}

	for _, pair := range alignment.Pairs {
		if pair.Local.ItemCount == pair.Remote.ItemCount {
			result.MatchedExact++
			continue
		}
		result.CountMismatches = append(result.CountMismatches, CountMismatch{
			LocalName:   pair.Local.Name,
			RemoteName:  pair.Remote.Name,
			LocalCount:  pair.Local.ItemCount,
			RemoteCount: pair.Remote.ItemCount,
			Diff:        pair.Remote.ItemCount - pair.Local.ItemCount,
		})
	}

	result.Summary = Summary{
		LocalTotal:    len(alignment.Pairs) + len(alignment.UnmatchedLocal),
		RemoteTotal:   len(alignment.Pairs) + len(alignment.UnmatchedRemote),
		MatchedExact:  result.MatchedExact,
		MismatchCount: len(result.CountMismatches),
	}

	return result
}
