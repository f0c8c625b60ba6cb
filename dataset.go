package tweetprep

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// PrimaryFile is the file name of the primary labeled tweet dataset.
const PrimaryFile = "judge-1377884607_tweet_product_company.csv"

// A Table is a CSV file held in memory: a header row and data rows. Every
// row has exactly len(Header) fields; missing cells are empty strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a latin1-encoded CSV document whose first record is the
// header.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{Header: header}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", line, err)
		}
		row := make([]string, len(header))
		copy(row, record)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadTableFile reads the CSV file at path.
func ReadTableFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Column returns the position of the named column.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q", ErrMissingColumn, name)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// PrimaryRecords reads the primary dataset's first three columns as text,
// product category and emotion label, whatever their header names.
func PrimaryRecords(t *Table) ([]RawRecord, error) {
	if len(t.Header) < 3 {
		return nil, fmt.Errorf("%w: primary dataset needs 3 columns, has %d", ErrMissingColumn, len(t.Header))
	}
	records := make([]RawRecord, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = RawRecord{
			Index:   i,
			Text:    row[0],
			Product: row[1],
			Emotion: row[2],
		}
	}
	return records, nil
}

// DefaultDataDir returns the "data" directory next to the current working
// directory's parent.
func DefaultDataDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(wd), "data"), nil
}

// LoadPrimary reads and parses the primary dataset file at path.
func LoadPrimary(path string) ([]RawRecord, error) {
	t, err := ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	return PrimaryRecords(t)
}
