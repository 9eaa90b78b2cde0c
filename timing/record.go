package timing

// RawRecord is one page load measurement as it appears in the study
// CSV: identifying columns plus the raw timestamp cells. Timestamp
// values are kept as strings because empty and malformed cells carry
// meaning (missing data) that a zero value would destroy.
type RawRecord struct {
	Domain   string
	Browser  string
	LoadTime string

	// Timestamps holds the raw cell value for each event column,
	// keyed by event name. Empty string means the cell was empty.
	Timestamps map[string]string
}

// DerivedRecord is one page load after normalization: every surviving
// event carries its offset in milliseconds from navigationStart.
// Missing events are simply absent from the map.
type DerivedRecord struct {
	Domain  string
	Browser string

	// Offsets maps event name to milliseconds since navigationStart.
	// All values are >= 0; invalid offsets are never stored.
	Offsets map[string]float64
}

// Offset returns the offset for an event and whether it is present.
func (r *DerivedRecord) Offset(event string) (float64, bool) {
	v, ok := r.Offsets[event]
	return v, ok
}

// Table is the normalized dataset: derived records plus the schema of
// event columns that survived normalization, in chronological order.
type Table struct {
	Records []DerivedRecord
	Columns []string
}

// HasColumn reports whether an event column survived normalization.
func (t *Table) HasColumn(event string) bool {
	for _, col := range t.Columns {
		if col == event {
			return true
		}
	}
	return false
}
