// Package reconcile implements the album matching engine: it aligns two
// photo collections by fuzzy name similarity and classifies every album as
// matched, count-mismatched, or missing on one side.
//
// The engine is pure and synchronous. It is handed two fully materialized
// collections and returns a Result without touching the network or the
// filesystem; all I/O lives in the scanners feeding it.
//
// # Pipeline
//
// 1. NormalizeName canonicalizes album names (case-fold, collapse whitespace
// and punctuation runs) so naming drift between sources does not defeat
// matching.
//
// 2. Similarity scores two normalized names in [0,1] using a common
// subsequence ratio. The score is symmetric and reflexive.
//
// 3. Align generates every cross-source candidate pair, discards those below
// the threshold, sorts by descending score with deterministic tie-breaks,
// and accepts greedily one-to-one. Greedy selection approximates optimal
// assignment; repeated runs over the same inputs produce identical output.
//
// 4. Reconcile turns the alignment into the classified diff: unmatched local
// albums are missing remotely, unmatched remote albums are missing locally,
// and matched pairs with disagreeing item counts become count mismatches.
//
// # Invariants
//
// Every input record lands in exactly one of {accepted pair, unmatched
// local, unmatched remote}. Raising the threshold never increases the number
// of accepted pairs. Identical inputs produce byte-identical results.
//
// # Usage Example
//
//	local, remote, err := reconcile.LoadCollections(ctx, localScanner, remoteScanner)
//	if err != nil {
//	    return err
//	}
//	result, err := reconcile.Compare(local, remote, reconcile.DefaultThreshold)
//
// # Caching
//
// Serve mode reuses scans across requests through Snapshot, a TTL cache with
// singleflight stampede protection, so bursts of API calls do not trigger
// repeated filesystem walks or remote listings.
package reconcile
