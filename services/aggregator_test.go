package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app-stats/models"
)

// rows are {category, reviews, installs}
func simpleRecords(rows ...[3]string) []models.RawRecord {
	out := make([]models.RawRecord, len(rows))
	for i, r := range rows {
		out[i] = models.RawRecord{r[0], r[1], r[2]}
	}
	return out
}

func TestFrequencyCountsAndOrders(t *testing.T) {
	records := simpleRecords(
		[3]string{"SOCIAL", "1", "100+"},
		[3]string{"GAME", "1", "100+"},
		[3]string{"TOOLS", "1", "100+"},
		[3]string{"GAME", "1", "100+"},
		[3]string{"FAMILY", "1", "100+"},
	)

	d := Frequency(records, 0)

	assert.Equal(t, []string{"GAME", "SOCIAL", "TOOLS", "FAMILY"}, d.Labels())
	assert.Equal(t, len(records), d.Total())
}

func TestFrequencyEmpty(t *testing.T) {
	d := Frequency(nil, 0)
	assert.Zero(t, d.Len())
	assert.Zero(t, d.Total())
}

func TestAverageReviews(t *testing.T) {
	records := simpleRecords(
		[3]string{"GAME", "10", "100+"},
		[3]string{"GAME", "20", "100+"},
		[3]string{"GAME", "30", "100+"},
		[3]string{"SOCIAL", "100", "100+"},
	)
	dist := Frequency(records, 0)

	metric, err := AverageReviews(records, dist, 0, 1)
	require.NoError(t, err)
	require.Len(t, metric, 2)

	assert.Equal(t, "SOCIAL", metric[0].Label)
	assert.Equal(t, 100.0, metric[0].Average)

	avg, ok := metric.Get("GAME")
	assert.True(t, ok)
	assert.Equal(t, 20.0, avg)
	assert.Equal(t, 3, metric[1].Apps)
}

func TestAverageReviewsSkipsUnparsableReviews(t *testing.T) {
	records := simpleRecords(
		[3]string{"GAME", "10", "100+"},
		[3]string{"GAME", "3.0M", "100+"},
		[3]string{"GAME", "30", "100+"},
	)

	metric, err := AverageReviews(records, Frequency(records, 0), 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 20.0, metric[0].Average)
	assert.Equal(t, 2, metric[0].Apps)
}

func TestAverageReviewsEmptyCategory(t *testing.T) {
	records := simpleRecords([3]string{"GAME", "10", "100+"})
	dist := models.NewFrequencyDistribution()
	dist.Inc("GAME")
	dist.Inc("WEATHER")

	metric, err := AverageReviews(records, dist, 0, 1)

	assert.ErrorIs(t, err, ErrEmptyCategory)
	assert.Contains(t, err.Error(), "WEATHER")
	assert.Nil(t, metric)
}

func TestAverageReviewsAllUnparsableIsEmptyCategory(t *testing.T) {
	records := simpleRecords([3]string{"GAME", "n/a", "100+"})

	_, err := AverageReviews(records, Frequency(records, 0), 0, 1)
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestInstallDistribution(t *testing.T) {
	records := simpleRecords(
		[3]string{"GAME", "1", "1,000,000+"},
		[3]string{"GAME", "1", "500,000+"},
		[3]string{"GAME", "1", "1,000,000+"},
		[3]string{"SOCIAL", "1", "10,000+"},
	)
	dist := Frequency(records, 0)

	installs := InstallDistribution(records, dist, 0, 2)
	require.Len(t, installs, 2)
	assert.Equal(t, "GAME", installs[0].Label)

	game := installs.Get("GAME")
	require.NotNil(t, game)
	assert.Equal(t, []models.Entry{
		{Label: "1,000,000+", Count: 2},
		{Label: "500,000+", Count: 1},
	}, game.Entries())

	social := installs.Get("SOCIAL")
	require.NotNil(t, social)
	assert.Equal(t, 1, social.Total())

	assert.Nil(t, installs.Get("TOOLS"))
}
