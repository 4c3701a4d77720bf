package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes s as comma-separated records, one per row of its dense grid,
// with "" for unpopulated cells and no header. Fields containing commas or
// quotes (e.g. "=MAX(0, …)") are quoted per RFC 4180.
// Returns ErrEmptySheet for a sheet with no cells.
// Complexity: O(rows*cols).
func WriteCSV(w io.Writer, s *Sheet) error {
	g, err := s.Dense()
	if err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	cw := csv.NewWriter(w)
	for i := 0; i < g.Rows(); i++ {
		if err = cw.Write(g.Row(i)); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// WriteFile writes s as CSV to path. The payload is rendered in memory first,
// then written to a temporary file beside path and renamed over it, so a
// failed call never leaves a partial or truncated file at path.
func WriteFile(path string, s *Sheet) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	tmpName := tmp.Name()
	// remove the temp file on any failure path below
	ok := false
	defer func() {
		if !ok {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	ok = true

	return nil
}
