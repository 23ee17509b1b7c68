package models

// SourceReport holds the computed statistics for one cleaned source.
type SourceReport struct {
	Source string
	Stats  CleanStats

	Categories *FrequencyDistribution
	// Genres is nil when the source has no genre column.
	Genres *FrequencyDistribution

	AverageReviews AverageMetric
	// Installs is nil when the source has no install column.
	Installs InstallDistribution
}
