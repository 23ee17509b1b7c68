package storage

import (
	"context"
	"errors"

	"app-stats/models"
)

// ErrMissingInputFile is returned when a source's file cannot be found.
var ErrMissingInputFile = errors.New("input file not found")

// DatasetSource is the interface any input backend must satisfy.
type DatasetSource interface {
	Load(ctx context.Context) (*models.Dataset, error)
}
