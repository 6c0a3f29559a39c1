package reconcile

import (
	"sort"

	"photo-manager/core/library"
)

// candidate is a scored pairing considered during alignment. Indices refer
// into the input collections so duplicate names stay distinguishable.
type candidate struct {
	local  int
	remote int
	score  float64
}

// Align matches two collections one-to-one with greedy selection by score.
// Every cross-source pair is scored on the normalized names; candidates
// below the threshold are discarded, the rest are sorted by descending score
// with ties broken by local name, remote name, and finally input position,
// then accepted greedily so each record is consumed at most once. Records
// whose normalized name is empty never enter matching and always end up
// unmatched.
func Align(local, remote library.Collection, threshold float64) Alignment {
	normLocal := make([]string, len(local))
	for i, album := range local {
		normLocal[i] = NormalizeName(album.Name)
	}
	normRemote := make([]string, len(remote))
	for i, album := range remote {
		normRemote[i] = NormalizeName(album.Name)
	}

	var candidates []candidate
	for i := range local {
		if normLocal[i] == "" {
			continue
		}
		for j := range remote {
			if normRemote[j] == "" {
				continue
			}
			score := Similarity(normLocal[i], normRemote[j])
			if score < threshold {
				continue
			}
			candidates = append(candidates, candidate{local: i, remote: j, score: score})
		}
	}

	// Sort order is the reproducibility contract: score first, then names,
	// then input position for duplicate names.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if local[a.local].Name != local[b.local].Name {
			return local[a.local].Name < local[b.local].Name
		}
		if remote[a.remote].Name != remote[b.remote].Name {
			return remote[a.remote].Name < remote[b.remote].Name
		}
		if a.local != b.local {
			return a.local < b.local
		}
		return a.remote < b.remote
	})

	usedLocal := make([]bool, len(local))
	usedRemote := make([]bool, len(remote))

	alignment := Alignment{
		Pairs:           make([]Pair, 0, len(candidates)),
		UnmatchedLocal:  library.Collection{},
		UnmatchedRemote: library.Collection{},
	}

	for _, c := range candidates {
		if usedLocal[c.local] || usedRemote[c.remote] {
			continue
		}
		usedLocal[c.local] = true
		usedRemote[c.remote] = true
		alignment.Pairs = append(alignment.Pairs, Pair{
			Local:  local[c.local],
			Remote: remote[c.remote],
			Score:  c.score,
		})
	}

	for i, album := range local {
		if !usedLocal[i] {
			alignment.UnmatchedLocal = append(alignment.UnmatchedLocal, album)
		}
	}
	for j, album := range remote {
		if !usedRemote[j] {
			alignment.UnmatchedRemote = append(alignment.UnmatchedRemote, album)
		}
	}

	sortByName(alignment.UnmatchedLocal)
	sortByName(alignment.UnmatchedRemote)

	return alignment
}

// sortByName orders albums by name ascending, breaking ties by item count so
// repeated runs report duplicates in the same order.
func sortByName(albums library.Collection) {
	sort.SliceStable(albums, func(i, j int) bool {
		if albums[i].Name != albums[j].Name {
			return albums[i].Name < albums[j].Name
		}
		return albums[i].ItemCount < albums[j].ItemCount
	})
}
