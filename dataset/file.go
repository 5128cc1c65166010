// Package dataset reads and writes record datasets.
//
// The text format is a decimal record count followed by that many
// whitespace-delimited "<id> <name>" pairs.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"sortbench/record"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedHeader   = errors.New("malformed header")
	ErrTruncatedData     = errors.New("truncated data")
	ErrMalformedRecord   = errors.New("malformed record")
)

// maxPrealloc bounds the capacity reserved from an untrusted header.
const maxPrealloc = 1 << 20

// maxTokenSize is the longest single token Read accepts. Names up to this
// size are truncated to record.MaxNameLen; longer tokens are malformed.
var maxTokenSize = 16 << 20

// Dataset is an ordered sequence of records.
type Dataset []record.Record

// Clone returns an independently owned copy of d.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// Load reads a dataset from the file at path.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read parses a dataset from r. It fails on a short input rather than
// returning fewer records than the header declares.
func Read(r io.Reader) (Dataset, error) {
	scanner := bufio.NewScanner(bufio.NewReader(r))
	scanner.Buffer(make([]byte, 0, min(64*1024, maxTokenSize)), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: record count token too long", ErrMalformedHeader)
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		return nil, fmt.Errorf("%w: missing record count", ErrMalformedHeader)
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid record count %q", ErrMalformedHeader, scanner.Text())
	}

	ds := make(Dataset, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, truncated(scanner, n, i)
		}
		idTok := scanner.Text()
		id, err := strconv.ParseInt(idTok, 10, 32)
		if err != nil {
			return nil, errInvalidRecord{index: i, token: idTok}
		}
		if !scanner.Scan() {
			return nil, truncated(scanner, n, i)
		}
		ds = append(ds, record.New(int32(id), scanner.Text()))
	}
	return ds, nil
}

func truncated(scanner *bufio.Scanner, declared, read int) error {
	if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: record %d has a token longer than %d bytes", ErrMalformedRecord, read, maxTokenSize)
	} else if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return fmt.Errorf("%w: declared %d records, read %d", ErrTruncatedData, declared, read)
}

type errInvalidRecord struct {
	index int
	token string
}

func (e errInvalidRecord) Error() string {
	return fmt.Sprintf("%v: record %d has non-integer id %q", ErrMalformedRecord, e.index, e.token)
}

func (e errInvalidRecord) Unwrap() error {
	return ErrMalformedRecord
}

// Write emits d in the dataset text format, one record per line. Names
// that would not read back as a single token are rejected before anything
// is written.
func Write(w io.Writer, d Dataset) error {
	for i, r := range d {
		if err := checkName(r.Name); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, i, err)
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(d)); err != nil {
		return err
	}
	for _, r := range d {
		if _, err := fmt.Fprintf(bw, "%d %s\n", r.ID, r.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes d to path, creating or truncating the file.
func Save(path string, d Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return f.Close()
}

func checkName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("name %q contains whitespace", name)
	}
	return nil
}
