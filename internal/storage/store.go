package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/dualnum/internal/curve"
)

// ErrMalformed indicates a run file that could not be parsed.
var ErrMalformed = errors.New("storage: malformed run data")

const (
	metadataFile = "metadata.json"
	markersFile  = "markers.csv"
	pathFile     = "path.csv"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Curve     string             `json:"curve"`
	Params    map[string]float64 `json:"params,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Points    int                `json:"points"`
	Samples   int                `json:"samples"`
	Normalize bool               `json:"normalize"`
	Output    string             `json:"output,omitempty"`
	Valid     bool               `json:"valid"`
}

// Save writes metadata, the marker table (t, x, y, dx, dy) and the full path
// (x, y) under a new run directory and returns the run id.
func (s *Store) Save(meta RunMetadata, samples *curve.Samples) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Curve, now.UnixNano())
	meta.Timestamp = now
	meta.Valid = samples.Valid()
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	markers := make([][]float64, len(samples.Markers))
	for i, p := range samples.Markers {
		v := samples.Tangents[i]
		markers[i] = []float64{samples.Params[i], p.X, p.Y, v.DX, v.DY}
	}
	if err := writeCSV(filepath.Join(runDir, markersFile), []string{"t", "x", "y", "dx", "dy"}, markers); err != nil {
		return "", err
	}

	path := make([][]float64, len(samples.Path))
	for i, p := range samples.Path {
		path[i] = []float64{p.X, p.Y}
	}
	if err := writeCSV(filepath.Join(runDir, pathFile), []string{"x", "y"}, path); err != nil {
		return "", err
	}

	return meta.ID, nil
}

func writeCSV(name string, header []string, rows [][]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func readCSV(name string, width int) ([][]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = width

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filepath.Base(name), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header", ErrMalformed, filepath.Base(name))
	}

	rows := make([][]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row := make([]float64, width)
		for j, field := range records[i] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformed, filepath.Base(name), i+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &meta, nil
}

// LoadSamples rebuilds the sampled curve of a run.
func (s *Store) LoadSamples(runID string) (*curve.Samples, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	markers, err := readCSV(filepath.Join(s.baseDir, runID, markersFile), 5)
	if err != nil {
		return nil, err
	}
	path, err := readCSV(filepath.Join(s.baseDir, runID, pathFile), 2)
	if err != nil {
		return nil, err
	}

	out := &curve.Samples{
		Curve:    meta.Curve,
		Path:     make([]curve.Point, len(path)),
		Params:   make([]float64, len(markers)),
		Markers:  make([]curve.Point, len(markers)),
		Tangents: make([]curve.Vec, len(markers)),
	}
	for i, row := range path {
		out.Path[i] = curve.Point{X: row[0], Y: row[1]}
	}
	for i, row := range markers {
		out.Params[i] = row[0]
		out.Markers[i] = curve.Point{X: row[1], Y: row[2]}
		out.Tangents[i] = curve.Vec{DX: row[3], DY: row[4]}
	}
	return out, nil
}
