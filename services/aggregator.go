package services

import (
	"fmt"

	"app-stats/models"
)

// Frequency counts the values of field idx across records and returns them
// ordered by count descending, ties in discovery order.
func Frequency(records []models.RawRecord, idx int) *models.FrequencyDistribution {
	d := models.NewFrequencyDistribution()
	for _, r := range records {
		d.Inc(r.Field(idx))
	}
	return d.Sorted()
}

type reviewTotal struct {
	sum  int64
	apps int
}

// AverageReviews computes the mean review count of every group in dist.
// Records whose review field is not an integer are left out of both the sum
// and the app count. A group with no usable record yields ErrEmptyCategory.
func AverageReviews(records []models.RawRecord, dist *models.FrequencyDistribution, groupIdx, reviewIdx int) (models.AverageMetric, error) {
	totals := make(map[string]*reviewTotal, dist.Len())
	for _, label := range dist.Labels() {
		totals[label] = &reviewTotal{}
	}

	for _, r := range records {
		t, ok := totals[r.Field(groupIdx)]
		if !ok {
			continue
		}
		n, err := parseReviews(r.Field(reviewIdx))
		if err != nil {
			continue
		}
		t.sum += n
		t.apps++
	}

	metric := make(models.AverageMetric, 0, dist.Len())
	for _, label := range dist.Labels() {
		t := totals[label]
		if t.apps == 0 {
			return nil, fmt.Errorf("average reviews for %q: %w", label, ErrEmptyCategory)
		}
		metric = append(metric, models.AverageEntry{
			Label:   label,
			Average: float64(t.sum) / float64(t.apps),
			Apps:    t.apps,
		})
	}
	metric.SortByAverage()
	return metric, nil
}

// InstallDistribution builds, for every group in dist, a frequency
// distribution of the install bucket labels of its records.
func InstallDistribution(records []models.RawRecord, dist *models.FrequencyDistribution, groupIdx, installIdx int) models.InstallDistribution {
	buckets := make(map[string]*models.FrequencyDistribution, dist.Len())
	for _, label := range dist.Labels() {
		buckets[label] = models.NewFrequencyDistribution()
	}

	for _, r := range records {
		if b, ok := buckets[r.Field(groupIdx)]; ok {
			b.Inc(r.Field(installIdx))
		}
	}

	out := make(models.InstallDistribution, 0, dist.Len())
	for _, label := range dist.Labels() {
		out = append(out, models.InstallEntry{Label: label, Buckets: buckets[label].Sorted()})
	}
	return out
}
