package models

// RawRecord is one data row as read from a source. Fields are positional;
// a Layout says which index holds which attribute.
type RawRecord []string

// Field returns the value at idx, or "" when the row is too short or idx is
// negative.
func (r RawRecord) Field(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// Header is the ordered list of column names of a source. It is only used to
// validate row length.
type Header []string

// Dataset is one parsed input source: its header and all data rows.
type Dataset struct {
	Source  string
	Header  Header
	Records []RawRecord
}

// CleanStats counts how many input rows each cleaning step removed.
type CleanStats struct {
	Input      int
	KnownBad   int
	Malformed  int
	NonEnglish int
	BadRating  int
	Duplicates int
	Kept       int
}

// Dropped is the total number of rows removed during cleaning.
func (s CleanStats) Dropped() int {
	return s.Input - s.Kept
}

// CleanRecordSet holds the rows of a source that passed every cleaning
// predicate. No two records share a name.
type CleanRecordSet struct {
	Source  string
	Header  Header
	Records []RawRecord
	Stats   CleanStats
}

// Dataset returns the set as a Dataset so it can be fed back into cleaning.
func (s *CleanRecordSet) Dataset() *Dataset {
	return &Dataset{Source: s.Source, Header: s.Header, Records: s.Records}
}
