// Package seed loads the machine and tool reference tables from CSV files.
//
// The first row of each file names the columns using the database column names
// (max_rpm, min_tool_diameter, max_doc, ...). Columns the loader doesn't know, such as id
// or created_at, are ignored. Blank cells are treated as missing values.
package seed

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/pkg/errors"
)

const (
	MachinesCSV = "machines.csv"
	ToolsCSV    = "tools.csv"
)

// row gives typed access to a CSV record by column name.
type row struct {
	line    int
	columns map[string]int
	record  []string
}

func (r row) str(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}

	return strings.TrimSpace(r.record[i])
}

func (r row) intPtr(column string) (*int, error) {
	s := r.str(column)
	if s == "" {
		return nil, nil
	}

	// Pandas writes integer columns that contain blanks as floats ("4.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: column %s", r.line, column)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil, errors.Errorf("line %d: column %s: '%s' is not a whole number", r.line, column, s)
	}

	i := int(f)
	return &i, nil
}

func (r row) floatPtr(column string) (*float64, error) {
	s := r.str(column)
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: column %s", r.line, column)
	}

	return &f, nil
}

// readRows reads every record after the header and hands it to fn.
func readRows(r io.Reader, fn func(row) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return errors.Wrap(err, "unable to read header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}

		if err := fn(row{line: line, columns: columns, record: record}); err != nil {
			return err
		}
	}
}

// firstErr collects the first conversion error from a sequence of column reads.
type firstErr struct {
	err error
}

func (e *firstErr) intOr0(r row, column string) int {
	p := e.intPtr(r, column)
	if p == nil {
		return 0
	}
	return *p
}

func (e *firstErr) intPtr(r row, column string) *int {
	v, err := r.intPtr(column)
	if e.err == nil {
		e.err = err
	}
	return v
}

func (e *firstErr) floatOr0(r row, column string) float64 {
	p := e.floatPtr(r, column)
	if p == nil {
		return 0
	}
	return *p
}

func (e *firstErr) floatPtr(r row, column string) *float64 {
	v, err := r.floatPtr(column)
	if e.err == nil {
		e.err = err
	}
	return v
}

func LoadMachines(r io.Reader) ([]model.Machine, error) {
	var machines []model.Machine

	err := readRows(r, func(rw row) error {
		var e firstErr
		m := model.Machine{
			Name:            rw.str("name"),
			Model:           rw.str("model"),
			Manufacturer:    rw.str("manufacturer"),
			MaxRPM:          e.intOr0(rw, "max_rpm"),
			MaxFeedRate:     e.floatOr0(rw, "max_feed_rate"),
			SpindlePower:    e.floatOr0(rw, "spindle_power"),
			MaxToolDiameter: e.floatOr0(rw, "max_tool_diameter"),
			MinToolDiameter: e.floatOr0(rw, "min_tool_diameter"),
		}

		if e.err != nil {
			return e.err
		}

		if m.Name == "" {
			return errors.Errorf("line %d: machine has no name", rw.line)
		}

		machines = append(machines, m)
		return nil
	})

	return machines, err
}

func LoadTools(r io.Reader) ([]model.Tool, error) {
	var tools []model.Tool

	err := readRows(r, func(rw row) error {
		var e firstErr
		t := model.Tool{
			Name:          rw.str("name"),
			Type:          rw.str("type"),
			Material:      rw.str("material"),
			Diameter:      e.floatOr0(rw, "diameter"),
			FluteCount:    e.intPtr(rw, "flute_count"),
			OverallLength: e.floatPtr(rw, "overall_length"),
			CuttingLength: e.floatPtr(rw, "cutting_length"),
			ShankDiameter: e.floatPtr(rw, "shank_diameter"),
			MaxDepthOfCut: e.floatPtr(rw, "max_doc"),
			MaxRPM:        e.intPtr(rw, "max_rpm"),
			Manufacturer:  rw.str("manufacturer"),
		}

		if e.err != nil {
			return e.err
		}

		if t.Name == "" || t.Type == "" {
			return errors.Errorf("line %d: tool needs both a name and a type", rw.line)
		}

		tools = append(tools, t)
		return nil
	})

	return tools, err
}

// FromDir loads machines.csv and tools.csv from dir and replaces the machine and tool
// tables with them. Both files are read before anything is changed. Tools are stored in
// file order, which becomes the order the recommender considers them in.
func FromDir(dir string, referenceStor stor.ReferenceStor) (int, int, error) {
	machines, err := loadFile(filepath.Join(dir, MachinesCSV), LoadMachines)
	if err != nil {
		return 0, 0, err
	}

	tools, err := loadFile(filepath.Join(dir, ToolsCSV), LoadTools)
	if err != nil {
		return 0, 0, err
	}

	if err := referenceStor.ReplaceReferenceData(machines, tools); err != nil {
		return 0, 0, err
	}

	log.Infof("Seeded %d machines and %d tools from %s", len(machines), len(tools), dir)

	return len(machines), len(tools), nil
}

func loadFile[T any](path string, load func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}

	return items, nil
}
