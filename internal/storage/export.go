package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/dualnum/internal/curve"
)

type ExportData struct {
	RunMetadata
	Markers []ExportMarker `json:"markers"`
	Path    [][2]float64   `json:"path,omitempty"`
}

type ExportMarker struct {
	T  float64 `json:"t"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ExportJSON writes a run as indented JSON. The full path is included only
// when withPath is set. JSON has no NaN or Inf, so runs with non-finite
// samples fail to encode.
func ExportJSON(w io.Writer, meta *RunMetadata, s *curve.Samples, withPath bool) error {
	data := ExportData{
		RunMetadata: *meta,
		Markers:     make([]ExportMarker, len(s.Markers)),
	}
	for i, p := range s.Markers {
		v := s.Tangents[i]
		data.Markers[i] = ExportMarker{T: s.Params[i], X: p.X, Y: p.Y, DX: v.DX, DY: v.DY}
	}
	if withPath {
		data.Path = make([][2]float64, len(s.Path))
		for i, p := range s.Path {
			data.Path[i] = [2]float64{p.X, p.Y}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
