package reconcile

import "photo-manager/core/library"

// DefaultThreshold is the similarity score required to accept a name match
// unless the caller overrides it.
const DefaultThreshold = 0.8

// Pair is an accepted one-to-one match between a local and a remote album.
type Pair struct {
	// Local is the album on the filesystem side.
	Local library.Album `json:"local"`

	// Remote is the album on the service side.
	Remote library.Album `json:"remote"`

	// Score is the name similarity that justified the match.
	Score float64 `json:"score"`
}

// Alignment is the outcome of matching two collections: accepted pairs plus
// the records on either side that found no counterpart. Every input record
// appears in exactly one of the three groups.
type Alignment struct {
	// Pairs are accepted matches, ordered by descending score with ties
	// broken by local name, then remote name.
	Pairs []Pair `json:"pairs"`

	// UnmatchedLocal are local albums with no accepted remote counterpart,
	// in name-ascending order.
	UnmatchedLocal library.Collection `json:"unmatched_local"`

	// UnmatchedRemote are remote albums with no accepted local counterpart,
	// in name-ascending order.
	UnmatchedRemote library.Collection `json:"unmatched_remote"`
}

// CountMismatch is an accepted pair whose two sides disagree on item count.
type CountMismatch struct {
	// LocalName is the album name on the local side.
	LocalName string `json:"local_name"`

	// RemoteName is the album name on the remote side.
	RemoteName string `json:"remote_name"`

	// LocalCount is the item count found locally.
	LocalCount int `json:"local_count"`

	// RemoteCount is the item count the service reports.
	RemoteCount int `json:"remote_count"`

	// Diff is the signed difference (remote minus local).
	Diff int `json:"diff"`
}

// Summary provides aggregate counts for a comparison run.
type Summary struct {
	// LocalTotal is the number of albums found locally.
	LocalTotal int `json:"local_total"`

	// RemoteTotal is the number of albums found remotely.
	RemoteTotal int `json:"remote_total"`

	// MatchedExact counts accepted pairs whose item counts agree.
	MatchedExact int `json:"matched_exact"`

	// MismatchCount counts accepted pairs whose item counts differ.
	MismatchCount int `json:"mismatch_count"`
}

// Result is the classified diff produced by one comparison run. It is built
// once and read-only thereafter.
type Result struct {
	// MissingInRemote are local albums absent from the remote service,
	// in name-ascending order.
	MissingInRemote []library.Album `json:"missing_in_remote"`

	// MissingInLocal are remote albums absent from the local library,
	// in name-ascending order.
	MissingInLocal []library.Album `json:"missing_in_local"`

	// CountMismatches are matched albums that disagree on item count,
	// following the alignment's pair order.
	CountMismatches []CountMismatch `json:"count_mismatches"`

	// MatchedExact counts pairs with agreeing item counts.
	MatchedExact int `json:"matched_exact"`

	// Summary carries the aggregate counts.
	Summary Summary `json:"summary"`
}

// InSync reports whether the two sides agree completely: nothing missing on
// either side and no count mismatches.
func (r *Result) InSync() bool {
	return len(r.MissingInRemote) == 0 &&
		len(r.MissingInLocal) == 0 &&
		len(r.CountMismatches) == 0
}
