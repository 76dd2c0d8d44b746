package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// Format names accepted by LoadFile.
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: cannot infer from %q", ErrUnknownFormat, path)
}

// LoadFile opens path and dispatches to LoadCSV or LoadYAML. An empty format
// is inferred with DetectFormat.
func LoadFile(ctx context.Context, path, format string, opts ...Option) (*core.Graph, Report, error) {
	if format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, Report{}, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return LoadCSV(ctx, f, opts...)
	case FormatYAML:
		return LoadYAML(ctx, f, opts...)
	}

	return nil, Report{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
