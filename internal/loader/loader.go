package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/gedcheck/internal/record"
	"github.com/roach88/gedcheck/internal/store"
)

// ErrUnsupportedFormat is returned for a file extension Load cannot read.
var ErrUnsupportedFormat = errors.New("unsupported record file format")

// Load reads a record file, choosing the format by extension.
func Load(ctx context.Context, path string) (*record.Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadDocument(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadDatabase(ctx, path)
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}
}

func loadDocument(path string) (*record.Store, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	rs, err := Build(doc)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return rs, nil
}

// loadDatabase reads a record database. The file must already exist:
// store.Open would otherwise create an empty one.
func loadDatabase(ctx context.Context, path string) (*record.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer db.Close()

	rs, err := db.Load(ctx)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return rs, nil
}
