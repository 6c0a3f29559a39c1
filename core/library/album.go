package library

import "fmt"

// Source identifies which system an album record originated from.
type Source string

const (
	// SourceLocal marks albums enumerated from the local filesystem.
	SourceLocal Source = "local"
	// SourceRemote marks albums fetched from a remote album service.
	SourceRemote Source = "remote"
)

// IsValid checks if the source is one of the known values.
func (s Source) IsValid() bool {
	switch s {
	case SourceLocal, SourceRemote:
		return true
	default:
		return false
	}
}

// Album is the normalized unit exchanged between scanners and the matching
// engine. Records are immutable once built: scanners create them, everything
// downstream only reads.
type Album struct {
	// Name is the display name exactly as reported by the source.
	Name string `json:"name"`

	// ItemCount is the number of photo items the source reports.
	ItemCount int `json:"item_count"`

	// Source tags which side this record came from.
	Source Source `json:"source"`
}

// Validate checks the record against the boundary rules: non-empty name,
// non-negative count, known source.
func (a Album) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: album name is empty", ErrValidation)
	}
	if a.ItemCount < 0 {
		return fmt.Errorf("%w: album %q has negative item count %d", ErrValidation, a.Name, a.ItemCount)
	}
	if !a.Source.IsValid() {
		return fmt.Errorf("%w: album %q has unknown source %q", ErrValidation, a.Name, a.Source)
	}
	return nil
}

// Collection is a set of albums sharing one source tag. Duplicate names are
// passed through verbatim; the engine matches each record independently.
type Collection []Album

// Validate checks every record and additionally requires all records to
// carry the given source tag. The first offending record aborts the check.
func (c Collection) Validate(source Source) error {
	for i, album := range c {
		if err := album.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if album.Source != source {
			return fmt.Errorf("%w: record %d (%q) tagged %q, expected %q",
				ErrValidation, i, album.Name, album.Source, source)
		}
	}
	return nil
}

// TotalItems sums the item counts across the collection.
func (c Collection) TotalItems() int {
	total := 0
	for _, album := range c {
		total += album.ItemCount
	}
	return total
}
