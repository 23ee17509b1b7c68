package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"app-stats/config"
	"app-stats/models"
	"app-stats/services"
	"app-stats/storage"
	"app-stats/utils"
)

// marketplace ties an input source to its column layout.
type marketplace struct {
	name     string
	layout   models.Layout
	knownBad []string
	source   storage.DatasetSource
}

func main() {
	logger := utils.NewLogger()
	cfg, envLoaded := config.Load()
	if !envLoaded {
		logger.Debug("[config] No .env file found, falling back to system env vars")
	}

	logger.Info("=== App store statistics starting ===")
	logger.Info("Config — backend: %s | top: %d", cfg.SourceBackend, cfg.TopN)

	ctx := context.Background()
	markets, closeFn, err := buildMarketplaces(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to set up input sources: %v", err)
		os.Exit(1)
	}
	defer closeFn()

	if err := run(ctx, markets, cfg.TopN, logger); err != nil {
		logger.Error("%v", err)
		if errors.Is(err, storage.ErrMissingInputFile) {
			logger.Error("Place the marketplace CSV files under ./data or set APPSTORE_CSV_PATH / GOOGLEPLAY_CSV_PATH")
		}
		closeFn()
		os.Exit(1)
	}
}

func buildMarketplaces(ctx context.Context, cfg *config.Config, logger *utils.Logger) ([]marketplace, func(), error) {
	markets := []marketplace{
		{name: "app-store", layout: models.AppStoreLayout, knownBad: cfg.AppStoreKnownBad},
		{name: "google-play", layout: models.GooglePlayLayout, knownBad: cfg.GooglePlayKnownBad},
	}

	switch cfg.SourceBackend {
	case "csv":
		markets[0].source = storage.NewCSVSource(markets[0].name, cfg.AppStoreCSVPath, cfg.AppStoreEncoding)
		markets[1].source = storage.NewCSVSource(markets[1].name, cfg.GooglePlayCSVPath, cfg.GooglePlayEncoding)
		return markets, func() {}, nil

	case "sql":
		db, err := storage.OpenDB(ctx, cfg.SQLDriver, cfg.DSN(), cfg.MaxRetries, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = db.Close() }
		tables := []string{cfg.AppStoreTable, cfg.GooglePlayTable}
		for i := range markets {
			src, err := storage.NewSQLSource(markets[i].name, db, tables[i])
			if err != nil {
				closeFn()
				return nil, nil, err
			}
			markets[i].source = src
		}
		return markets, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown SOURCE_BACKEND %q (want csv or sql)", cfg.SourceBackend)
	}
}

// run loads every source before any aggregation so a missing input aborts
// the whole run.
func run(ctx context.Context, markets []marketplace, topN int, logger *utils.Logger) error {
	datasets := make([]*models.Dataset, len(markets))
	for i, m := range markets {
		ds, err := m.source.Load(ctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", m.name, err)
		}
		logger.Info("Loaded %s: %d columns, %d rows", m.name, len(ds.Header), len(ds.Records))
		datasets[i] = ds
	}

	insightSvc := services.NewInsightService(logger, topN)
	for i, m := range markets {
		cleaner := services.NewCleaner(logger, m.layout, m.knownBad)
		set := cleaner.Clean(datasets[i])
		if len(set.Records) == 0 {
			logger.Warn("All %s records were dropped during cleaning", m.name)
		}

		report, err := insightSvc.Generate(set, m.layout)
		if err != nil {
			return err
		}
		insightSvc.Print(os.Stdout, report)
	}
	return nil
}
