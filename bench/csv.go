package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"sortbench/utils"
)

var csvHeader = []string{"run_id", "timestamp", "algorithm", "dataset", "n", "rep", "time_ms", "sorted"}

// CSVWriter appends one row per recorded run. Rows from the same process
// share a run id.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
	runID  string
	now    func() time.Time
}

// NewCSVWriter writes rows to w, preceded by a header when header is true.
func NewCSVWriter(w io.Writer, runID string, header bool) (*CSVWriter, error) {
	c := &CSVWriter{w: csv.NewWriter(w), runID: runID, now: time.Now}
	if header {
		if err := c.w.Write(csvHeader); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// OpenCSV appends to the file at path, writing the header only when the
// file is new or empty. A fresh run id is generated.
func OpenCSV(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open results CSV: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat results CSV: %w", err)
	}
	c, err := NewCSVWriter(f, uuid.NewString(), info.Size() == 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// RunID identifies the rows written by this writer.
func (c *CSVWriter) RunID() string {
	return c.runID
}

// Write records one run. Rows are flushed immediately.
func (c *CSVWriter) Write(rep int, r Report) error {
	row := []string{
		c.runID,
		c.now().Format(time.RFC3339),
		r.Algorithm.Name(),
		r.Dataset,
		strconv.Itoa(r.N),
		strconv.Itoa(rep),
		fmt.Sprintf("%.3f", utils.DurationMS(r.Elapsed)),
		strconv.FormatBool(r.Sorted),
	}
	if err := c.w.Write(row); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// Close flushes pending rows and closes the underlying file, if any.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
