package timing

import "strconv"

// Normalize converts raw timestamps into offsets from navigationStart.
//
// For every event column except the reference itself, the offset is
// numeric(event) - numeric(navigationStart). A cell that is empty or
// non-numeric contributes no offset. A negative offset means the event
// apparently fired before navigation began, which is clock skew or an
// instrumentation error, so it is treated as missing rather than
// reported. A row without a usable navigationStart stays in the table
// with no offsets at all.
//
// Event columns that end up missing for every record are dropped from
// the derived schema entirely. The input dataset is never mutated.
func Normalize(ds *Dataset) *Table {
	records := make([]DerivedRecord, 0, len(ds.Records))
	populated := make(map[string]int, len(EventColumns))

	for _, raw := range ds.Records {
		derived := DerivedRecord{
			Domain:  raw.Domain,
			Browser: raw.Browser,
			Offsets: make(map[string]float64),
		}

		reference, refOK := parseTimestamp(raw.Timestamps[ReferenceEvent])
		if refOK {
			for _, event := range EventColumns {
				if event == ReferenceEvent {
					continue
				}

				value, ok := parseTimestamp(raw.Timestamps[event])
				if !ok {
					continue
				}

				offset := value - reference
				if offset < 0 {
					// event before navigation start, instrumentation anomaly
					continue
				}

				derived.Offsets[event] = offset
				populated[event]++
			}
		}

		records = append(records, derived)
	}

	// keep only columns that produced at least one valid offset,
	// preserving chronological order
	columns := make([]string, 0, len(EventColumns))
	for _, event := range EventColumns {
		if event == ReferenceEvent {
			continue
		}
		if populated[event] > 0 {
			columns = append(columns, event)
		}
	}

	return &Table{
		Records: records,
		Columns: columns,
	}
}

// parseTimestamp interprets a raw CSV cell as an epoch-style numeric
// timestamp. Empty and malformed cells both read as missing.
func parseTimestamp(cell string) (float64, bool) {
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
