package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// ExportData is the self-contained JSON rendition of one archived run.
type ExportData struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Input     trace.Input        `json:"input"`
	Snapshots int                `json:"snapshots"`
	Metrics   map[string]float64 `json:"metrics"`
	Sequence  trace.Sequence     `json:"sequence"`
}

func exportData(meta *RunMetadata, seq trace.Sequence) ExportData {
	return ExportData{
		ID:        meta.ID,
		Algorithm: meta.Algorithm,
		Input:     meta.Input,
		Snapshots: len(seq),
		Metrics:   meta.Metrics,
		Sequence:  seq,
	}
}

func ExportJSON(path string, meta *RunMetadata, seq trace.Sequence) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, seq))
}

func ExportJSONStdout(meta *RunMetadata, seq trace.Sequence) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, seq))
}

// ExportCSV writes the sequence as one row per snapshot. Containers are
// space-joined inside a field; cursors are sorted name=value pairs.
func ExportCSV(w io.Writer, seq trace.Sequence) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"step", "kind", "message", "primary", "cursors", "terminal"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range seq {
		row := []string{
			strconv.Itoa(s.Step),
			string(s.Kind),
			s.Message,
			joinInts(s.Primary),
			joinCursors(s.Cursors),
			strconv.FormatBool(s.Terminal),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func joinCursors(cursors map[string]int) string {
	names := make([]string, 0, len(cursors))
	for name := range cursors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, cursors[name])
	}
	return strings.Join(parts, " ")
}
