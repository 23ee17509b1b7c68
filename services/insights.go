package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"app-stats/models"
	"app-stats/utils"
)

type InsightService struct {
	logger *utils.Logger
	topN   int
}

// NewInsightService creates an InsightService. Print shows at most topN rows
// per table; topN <= 0 shows everything.
func NewInsightService(logger *utils.Logger, topN int) *InsightService {
	return &InsightService{logger: logger, topN: topN}
}

// Generate computes the frequency and metric tables for one cleaned source.
func (s *InsightService) Generate(set *models.CleanRecordSet, layout models.Layout) (*models.SourceReport, error) {
	report := &models.SourceReport{
		Source:     set.Source,
		Stats:      set.Stats,
		Categories: Frequency(set.Records, layout.Category),
	}

	groups := report.Categories
	if layout.Genre >= 0 {
		report.Genres = Frequency(set.Records, layout.Genre)
		groups = report.Genres
	}

	avg, err := AverageReviews(set.Records, groups, layout.GroupField(), layout.Reviews)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", set.Source, err)
	}
	report.AverageReviews = avg

	if layout.Installs >= 0 {
		report.Installs = InstallDistribution(set.Records, groups, layout.GroupField(), layout.Installs)
	}

	s.logger.Info("[insights] %s: %d categories, %d groups averaged",
		set.Source, report.Categories.Len(), len(report.AverageReviews))
	return report, nil
}

func (s *InsightService) Print(w io.Writer, r *models.SourceReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 %s\033[0m\n", strings.ToUpper(r.Source))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Cleaning\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Input records     : \033[1m%s\033[0m\n", humanize.Comma(int64(r.Stats.Input)))
	fmt.Fprintf(w, "  Known bad         : %s\n", humanize.Comma(int64(r.Stats.KnownBad)))
	fmt.Fprintf(w, "  Malformed         : %s\n", humanize.Comma(int64(r.Stats.Malformed)))
	fmt.Fprintf(w, "  Paid, non-English : %s\n", humanize.Comma(int64(r.Stats.NonEnglish)))
	fmt.Fprintf(w, "  Bad rating        : %s\n", humanize.Comma(int64(r.Stats.BadRating)))
	fmt.Fprintf(w, "  Duplicates        : %s\n", humanize.Comma(int64(r.Stats.Duplicates)))
	fmt.Fprintf(w, "  Clean records     : \033[1;32m%s\033[0m\n", humanize.Comma(int64(r.Stats.Kept)))
	fmt.Fprintln(w)

	s.printFrequency(w, "Categories", r.Categories, thin)
	if r.Genres != nil {
		s.printFrequency(w, "Genres", r.Genres, thin)
	}

	fmt.Fprintf(w, "\033[1;33m  Average reviews per group\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	avg := r.AverageReviews
	if s.topN > 0 && len(avg) > s.topN {
		avg = avg[:s.topN]
	}
	for _, e := range avg {
		fmt.Fprintf(w, "  %-34s %14s (%d apps)\n",
			truncate(e.Label, 32), humanize.FormatFloat("#,###.##", round2(e.Average)), e.Apps)
	}
	fmt.Fprintln(w)

	if r.Installs != nil {
		fmt.Fprintf(w, "\033[1;33m  Installs per group\033[0m\n")
		fmt.Fprintf(w, "  %s\n", thin)
		installs := r.Installs
		if s.topN > 0 && len(installs) > s.topN {
			installs = installs[:s.topN]
		}
		for _, e := range installs {
			fmt.Fprintf(w, "  \033[1m%s\033[0m\n", e.Label)
			for _, b := range e.Buckets.Top(s.topN) {
				fmt.Fprintf(w, "    %-20s %s\n", b.Label, humanize.Comma(int64(b.Count)))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)
}

func (s *InsightService) printFrequency(w io.Writer, title string, d *models.FrequencyDistribution, thin string) {
	fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(w, "  %s\n", thin)
	if d.Len() == 0 {
		fmt.Fprintf(w, "  No data\n\n")
		return
	}
	total := d.Total()
	for _, e := range d.Top(s.topN) {
		share := float64(e.Count) * 100 / float64(total)
		fmt.Fprintf(w, "  %-34s %8s  %5.2f%%\n", truncate(e.Label, 32), humanize.Comma(int64(e.Count)), share)
	}
	fmt.Fprintln(w)
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
