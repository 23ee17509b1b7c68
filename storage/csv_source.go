package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"app-stats/models"
)

// CSVSource reads a dataset from a CSV file with a header row.
type CSVSource struct {
	Name     string
	Path     string
	Encoding string
}

// NewCSVSource creates a CSVSource. encodingName is one of utf-8 (the
// default), windows-1252 or latin1.
func NewCSVSource(name, path, encodingName string) *CSVSource {
	return &CSVSource{Name: name, Path: path, Encoding: encodingName}
}

// Load opens the file and parses it. A missing file yields ErrMissingInputFile.
func (s *CSVSource) Load(ctx context.Context) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("csv: %s: %w: %s", s.Name, ErrMissingInputFile, s.Path)
		}
		return nil, fmt.Errorf("csv: open %q: %w", s.Path, err)
	}
	defer f.Close()

	ds, err := ReadCSV(s.Name, f, s.Encoding)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", s.Path, err)
	}
	return ds, nil
}

// ReadCSV decodes r with the named encoding and parses it as CSV. The first
// row is the header. Rows of any length are kept so the cleaner can reject
// incomplete ones.
func ReadCSV(name string, r io.Reader, encodingName string) (*models.Dataset, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("read header: file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := &models.Dataset{Source: name, Header: models.Header(header)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(ds.Records)+1, err)
		}
		ds.Records = append(ds.Records, models.RawRecord(row))
	}
	return ds, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		// strips a leading byte order mark if present
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
