package services

import (
	"fmt"
	"strconv"
	"strings"

	"app-stats/models"
	"app-stats/utils"
)

// maxRating is the top of the rating scale on both marketplaces.
const maxRating = 5.0

// Cleaner filters the rows of one source down to a CleanRecordSet.
type Cleaner struct {
	logger   *utils.Logger
	layout   models.Layout
	knownBad map[string]struct{}
}

// NewCleaner creates a Cleaner for a source with the given layout. Rows whose
// name is listed in knownBad are dropped before any other check.
func NewCleaner(logger *utils.Logger, layout models.Layout, knownBad []string) *Cleaner {
	bad := make(map[string]struct{}, len(knownBad))
	for _, name := range knownBad {
		name = strings.TrimSpace(name)
		if name != "" {
			bad[name] = struct{}{}
		}
	}
	return &Cleaner{logger: logger, layout: layout, knownBad: bad}
}

// Clean returns the rows of ds that are complete, free or English-named, and
// rated within scale, keeping a single row per app name: the one with the
// most reviews. Survivors keep the position of the first row seen for their
// name.
func (c *Cleaner) Clean(ds *models.Dataset) *models.CleanRecordSet {
	stats := models.CleanStats{Input: len(ds.Records)}
	result := make([]models.RawRecord, 0, len(ds.Records))
	byName := make(map[string]int)

	for i, r := range ds.Records {
		name := r.Field(c.layout.Name)

		if _, bad := c.knownBad[name]; bad {
			c.logger.Debug("[cleaner] %s row %d: dropping known bad record %q", ds.Source, i, name)
			stats.KnownBad++
			continue
		}

		if err := c.checkComplete(r, ds.Header); err != nil {
			c.logger.Debug("[cleaner] %s row %d: %v", ds.Source, i, err)
			stats.Malformed++
			continue
		}

		if !c.layout.IsFree(r.Field(c.layout.Price)) && !IsEnglishDominant(name) {
			c.logger.Debug("[cleaner] %s row %d: paid app with non-English name %q", ds.Source, i, name)
			stats.NonEnglish++
			continue
		}

		if err := c.checkRating(r); err != nil {
			c.logger.Debug("[cleaner] %s row %d: %v", ds.Source, i, err)
			stats.BadRating++
			continue
		}

		if j, dup := byName[name]; dup {
			stats.Duplicates++
			if compareReviews(r.Field(c.layout.Reviews), result[j].Field(c.layout.Reviews)) > 0 {
				result[j] = r
			}
			continue
		}
		byName[name] = len(result)
		result = append(result, r)
	}

	stats.Kept = len(result)
	c.logger.Info("[cleaner] %s: cleaned %d → %d records (known bad %d, malformed %d, non-English %d, bad rating %d, duplicates %d)",
		ds.Source, stats.Input, stats.Kept, stats.KnownBad, stats.Malformed, stats.NonEnglish, stats.BadRating, stats.Duplicates)

	return &models.CleanRecordSet{
		Source:  ds.Source,
		Header:  ds.Header,
		Records: result,
		Stats:   stats,
	}
}

func (c *Cleaner) checkComplete(r models.RawRecord, h models.Header) error {
	if len(r) != len(h) {
		return fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRow, len(r), len(h))
	}
	return nil
}

func (c *Cleaner) checkRating(r models.RawRecord) error {
	raw := r.Field(c.layout.Rating)
	rating, err := parseRating(raw)
	if err != nil {
		return err
	}
	if !(rating <= maxRating) {
		return fmt.Errorf("rating %q exceeds %.1f", raw, maxRating)
	}
	return nil
}

func parseRating(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableRating, raw)
	}
	return v, nil
}

func parseReviews(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableReviewCount, raw)
	}
	return v, nil
}

// compareReviews orders two review fields numerically when both are
// integers and as strings otherwise.
func compareReviews(a, b string) int {
	x, errA := parseReviews(a)
	y, errB := parseReviews(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	default:
		return 0
	}
}
