package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app-stats/models"
)

func sampleSet() *models.CleanRecordSet {
	c := NewCleaner(newTestLogger(), models.GooglePlayLayout, nil)
	return c.Clean(gpDataset(
		gpRow("Candy Crush", "GAME", "4.4", "22426677", "500,000,000+", "Free", "Casual"),
		gpRow("Subway Surfers", "GAME", "4.5", "27722264", "1,000,000,000+", "Free", "Arcade"),
		gpRow("Temple Run 2", "GAME", "4.3", "8118609", "500,000,000+", "Free", "Action"),
		gpRow("Pou", "GAME", "4.3", "10485308", "500,000,000+", "Free", "Casual"),
		gpRow("Instagram", "SOCIAL", "4.5", "66577313", "1,000,000,000+", "Free", "Social"),
		gpRow("Instagram", "SOCIAL", "4.5", "66577446", "1,000,000,000+", "Free", "Social"),
	))
}

func TestInsightGenerateGooglePlay(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 0)
	r, err := svc.Generate(sampleSet(), models.GooglePlayLayout)
	require.NoError(t, err)

	assert.Equal(t, "google-play", r.Source)
	assert.Equal(t, []string{"GAME", "SOCIAL"}, r.Categories.Labels())
	assert.Equal(t, 5, r.Categories.Total())

	require.NotNil(t, r.Genres)
	assert.Equal(t, []string{"Casual", "Arcade", "Action", "Social"}, r.Genres.Labels())

	casual, ok := r.AverageReviews.Get("Casual")
	require.True(t, ok)
	assert.InDelta(t, (22426677.0+10485308.0)/2, casual, 1e-9)
	assert.Equal(t, "Social", r.AverageReviews[0].Label)

	require.NotNil(t, r.Installs)
	assert.Equal(t, 2, r.Installs.Get("Casual").Total())
	n, _ := r.Installs.Get("Casual").Get("500,000,000+")
	assert.Equal(t, 2, n)
}

func TestInsightGenerateWithoutGenre(t *testing.T) {
	layout := models.GooglePlayLayout
	layout.Genre = -1
	layout.Installs = -1

	svc := NewInsightService(newTestLogger(), 0)
	r, err := svc.Generate(sampleSet(), layout)
	require.NoError(t, err)

	assert.Nil(t, r.Genres)
	assert.Nil(t, r.Installs)
	avg, ok := r.AverageReviews.Get("GAME")
	require.True(t, ok)
	assert.InDelta(t, (22426677.0+27722264.0+8118609.0+10485308.0)/4, avg, 1e-9)
}

func TestInsightGenerateEmptySet(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 0)
	r, err := svc.Generate(&models.CleanRecordSet{Source: "empty"}, models.GooglePlayLayout)
	require.NoError(t, err)

	assert.Zero(t, r.Categories.Len())
	assert.Empty(t, r.AverageReviews)
}

func TestInsightPrint(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 1)
	r, err := svc.Generate(sampleSet(), models.GooglePlayLayout)
	require.NoError(t, err)

	var buf bytes.Buffer
	svc.Print(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "GOOGLE-PLAY")
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "GAME")
	assert.Contains(t, out, "66,577,446")
	// topN=1 hides the second category row
	assert.NotContains(t, out, "SOCIAL ")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "爱奇艺PPS...", truncate("爱奇艺PPS -《欢乐颂2》", 9))
}
