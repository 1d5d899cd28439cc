package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/physutil/internal/calc"
)

const (
	metadataFile = "metadata.json"
	valuesFile   = "values.csv"

	kindInput  = "input"
	kindOutput = "output"
)

var (
	ErrNotFound  = errors.New("storage: record not found")
	ErrInvalidID = errors.New("storage: invalid record id")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Record is a stored calculation. Inputs and outputs live in values.csv;
// everything else in metadata.json.
type Record struct {
	ID          string       `json:"id" yaml:"id"`
	Calculation string       `json:"calculation" yaml:"calculation"`
	Timestamp   time.Time    `json:"timestamp" yaml:"timestamp"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
	Equation    string       `json:"equation,omitempty" yaml:"equation,omitempty"`
	Inputs      []calc.Value `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs     []calc.Value `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Result rebuilds the calculation result held by the record.
func (r *Record) Result() *calc.Result {
	return &calc.Result{
		Calculation: r.Calculation,
		Inputs:      r.Inputs,
		Outputs:     r.Outputs,
		Equation:    r.Equation,
	}
}

// Fingerprint hashes the calculation name and its inputs in order, so two
// identical calculations share a fingerprint.
func Fingerprint(res *calc.Result) string {
	h := xxhash.New()
	h.WriteString(res.Calculation)
	for _, v := range res.Inputs {
		h.WriteString("\n")
		h.WriteString(v.Name)
		h.WriteString("=")
		h.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Save writes res as a new record and returns its id. metadata.json is
// written last, so a failed save leaves nothing that List can see; the
// partial directory is removed.
func (s *Store) Save(res *calc.Result) (string, error) {
	id := fmt.Sprintf("%s_%s", res.Calculation, strings.SplitN(uuid.NewString(), "-", 2)[0])
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := Record{
		ID:          id,
		Calculation: res.Calculation,
		Timestamp:   time.Now(),
		Fingerprint: Fingerprint(res),
		Equation:    res.Equation,
	}

	if err := writeValues(filepath.Join(dir, valuesFile), res); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	if err := writeMetadata(filepath.Join(dir, metadataFile), meta); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	return id, nil
}

func writeValues(path string, res *calc.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "kind", "value"}); err != nil {
		return err
	}
	for _, v := range res.Inputs {
		if err := w.Write(valueRow(v, kindInput)); err != nil {
			return err
		}
	}
	for _, v := range res.Outputs {
		if err := w.Write(valueRow(v, kindOutput)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeMetadata(path string, meta Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	return f.Close()
}

func valueRow(v calc.Value, kind string) []string {
	return []string{v.Name, kind, strconv.FormatFloat(v.Value, 'g', -1, 64)}
}

// List returns stored records, newest first. Unreadable entries are skipped.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.loadMetadata(entry.Name())
		if err != nil {
			continue
		}
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

// Load returns the record with its inputs and outputs.
func (s *Store) Load(id string) (*Record, error) {
	rec, err := s.loadMetadata(id)
	if err != nil {
		return nil, err
	}
	if err := s.loadValues(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) Delete(id string) error {
	dir, err := s.recordDir(id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}
	return os.RemoveAll(dir)
}

// FindByFingerprint returns the newest record with the given fingerprint,
// or nil if there is none.
func (s *Store) FindByFingerprint(fp string) (*Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Fingerprint == fp {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (s *Store) recordDir(id string) (string, error) {
	if id == "" || filepath.Base(id) != id || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.baseDir, id), nil
}

func (s *Store) loadMetadata(id string) (*Record, error) {
	dir, err := s.recordDir(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) loadValues(rec *Record) error {
	file, err := os.Open(filepath.Join(s.baseDir, rec.ID, valuesFile))
	if err != nil {
		return err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	rows, err := r.ReadAll()
	if err != nil {
		return err
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return fmt.Errorf("%s: row %d: %w", valuesFile, i, err)
		}
		switch row[1] {
		case kindInput:
			rec.Inputs = append(rec.Inputs, calc.Value{Name: row[0], Value: v})
		case kindOutput:
			rec.Outputs = append(rec.Outputs, calc.Value{Name: row[0], Value: v})
		}
	}
	return nil
}

func ExportJSON(w io.Writer, rec *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func ExportYAML(w io.Writer, rec *Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}
