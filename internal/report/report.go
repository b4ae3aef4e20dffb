// Package report encodes drop tables for people and for other programs.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iancoleman/orderedmap"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	ballistics "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/solver"
)

// Format selects the encoding of Write.
type Format string

const (
	// FormatText is an aligned table for the terminal.
	FormatText Format = "text"
	// FormatCSV writes one record per row with a header record.
	FormatCSV Format = "csv"
	// FormatJSON is an indented array of tables with the keys in reading order.
	FormatJSON Format = "json"
	// FormatMsgpack is the MessagePack encoding of []Table, see ReadMsgpack.
	FormatMsgpack Format = "msgpack"
)

// ParseFormat accepts the Format names.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatCSV, FormatJSON, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", name)
}

// Row is one drop table row in SI units; adjustments are in milliradians.
type Row struct {
	DistanceM         float64 `msgpack:"distance_m"`
	TimeS             float64 `msgpack:"time_s"`
	VelocityMPS       float64 `msgpack:"velocity_mps"`
	Mach              float64 `msgpack:"mach"`
	DropM             float64 `msgpack:"drop_m"`
	DropAdjustment    float64 `msgpack:"drop_mrad"`
	WindageM          float64 `msgpack:"windage_m"`
	WindageAdjustment float64 `msgpack:"windage_mrad"`
	EnergyJ           float64 `msgpack:"energy_j"`
	OptimalGameLb     float64 `msgpack:"optimal_game_lb"`
}

// Table is the encoded form of one solver result.
type Table struct {
	Name           string  `msgpack:"name"`
	ZeroPitchMRad  float64 `msgpack:"zero_pitch_mrad"`
	ZeroIterations int     `msgpack:"zero_iterations"`
	Rows           []Row   `msgpack:"rows"`
}

// NewTable flattens a solver result.
func NewTable(r solver.Result) Table {
	t := Table{
		Name:           r.Name,
		ZeroPitchMRad:  r.Zero.Pitch.In(unit.AngularMRad),
		ZeroIterations: r.Zero.Iterations,
	}
	if r.Table == nil {
		return t
	}
	t.Rows = make([]Row, 0, r.Table.Len())
	for _, d := range r.Table.All() {
		t.Rows = append(t.Rows, newRow(d))
	}
	return t
}

func newRow(d ballistics.TrajectoryData) Row {
	return Row{
		DistanceM:         d.TravelledDistance().In(unit.DistanceMeter),
		TimeS:             d.Time().TotalSeconds(),
		VelocityMPS:       d.Velocity().In(unit.VelocityMPS),
		Mach:              d.MachVelocity(),
		DropM:             d.Drop().In(unit.DistanceMeter),
		DropAdjustment:    d.DropAdjustment().In(unit.AngularMRad),
		WindageM:          d.Windage().In(unit.DistanceMeter),
		WindageAdjustment: d.WindageAdjustment().In(unit.AngularMRad),
		EnergyJ:           d.Energy().In(unit.EnergyJoule),
		OptimalGameLb:     d.OptimalGameWeight().In(unit.WeightPound),
	}
}

// Options control Write.
type Options struct {
	Format Format
	// Compress wraps the output in a zstd stream. Only used with FormatMsgpack
	// and FormatJSON.
	Compress bool
}

// Write encodes the results to w.
func Write(w io.Writer, results []solver.Result, opts Options) error {
	tables := make([]Table, len(results))
	for i, r := range results {
		tables[i] = NewTable(r)
	}

	switch opts.Format {
	case FormatText, "":
		return writeText(w, tables)
	case FormatCSV:
		return writeCSV(w, tables)
	case FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}

	if !opts.Compress {
		return encode(w, tables, opts.Format)
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := encode(zw, tables, opts.Format); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

func encode(w io.Writer, tables []Table, format Format) error {
	if format == FormatMsgpack {
		if err := msgpack.NewEncoder(w).Encode(tables); err != nil {
			return fmt.Errorf("failed to encode drop tables: %w", err)
		}
		return nil
	}
	docs := make([]*orderedmap.OrderedMap, len(tables))
	for i, t := range tables {
		docs[i] = orderedTable(t)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode drop tables: %w", err)
	}
	return nil
}

// orderedTable keeps the keys in reading order instead of the alphabetical
// order of encoding/json maps.
func orderedTable(t Table) *orderedmap.OrderedMap {
	zero := orderedmap.New()
	zero.Set("pitch_mrad", t.ZeroPitchMRad)
	zero.Set("iterations", t.ZeroIterations)

	rows := make([]*orderedmap.OrderedMap, len(t.Rows))
	for i, r := range t.Rows {
		row := orderedmap.New()
		row.Set("distance_m", r.DistanceM)
		row.Set("time_s", r.TimeS)
		row.Set("velocity_mps", r.VelocityMPS)
		row.Set("mach", r.Mach)
		row.Set("drop_m", r.DropM)
		row.Set("drop_mrad", r.DropAdjustment)
		row.Set("windage_m", r.WindageM)
		row.Set("windage_mrad", r.WindageAdjustment)
		row.Set("energy_j", r.EnergyJ)
		row.Set("optimal_game_lb", r.OptimalGameLb)
		rows[i] = row
	}

	doc := orderedmap.New()
	doc.Set("name", t.Name)
	doc.Set("zero", zero)
	doc.Set("rows", rows)
	return doc
}

func writeText(w io.Writer, tables []Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s: zero %.3f mrad after %d iterations\n", t.Name, t.ZeroPitchMRad, t.ZeroIterations)
		fmt.Fprintln(tw, "Distance (m)\tTime (s)\tVelocity (m/s)\tMach\tDrop (m)\tDrop (mrad)\tWindage (m)\tWindage (mrad)\tEnergy (J)\t")
		for _, r := range t.Rows {
			fmt.Fprintf(tw, "%.1f\t%.3f\t%.1f\t%.2f\t%.3f\t%.2f\t%.3f\t%.2f\t%.0f\t\n",
				r.DistanceM, r.TimeS, r.VelocityMPS, r.Mach, r.DropM, r.DropAdjustment,
				r.WindageM, r.WindageAdjustment, r.EnergyJ)
		}
	}
	return tw.Flush()
}

// writeCSV writes one record per row, the first column naming the load.
func writeCSV(w io.Writer, tables []Table) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Name",
		"Distance (m)",
		"Time (s)",
		"Velocity (m/s)",
		"Mach",
		"Drop (m)",
		"Drop (mrad)",
		"Windage (m)",
		"Windage (mrad)",
		"Energy (J)",
		"Optimal game (lb)",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range tables {
		for _, r := range t.Rows {
			err := cw.Write([]string{
				t.Name,
				fmt.Sprintf("%0.2f", r.DistanceM),
				fmt.Sprintf("%0.4f", r.TimeS),
				fmt.Sprintf("%0.2f", r.VelocityMPS),
				fmt.Sprintf("%0.3f", r.Mach),
				fmt.Sprintf("%0.4f", r.DropM),
				fmt.Sprintf("%0.3f", r.DropAdjustment),
				fmt.Sprintf("%0.4f", r.WindageM),
				fmt.Sprintf("%0.3f", r.WindageAdjustment),
				fmt.Sprintf("%0.1f", r.EnergyJ),
				fmt.Sprintf("%0.1f", r.OptimalGameLb),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadMsgpack decodes the output of Write with FormatMsgpack.
func ReadMsgpack(r io.Reader, compressed bool) ([]Table, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	var tables []Table
	if err := msgpack.NewDecoder(r).Decode(&tables); err != nil {
		return nil, fmt.Errorf("failed to decode drop tables: %w", err)
	}
	return tables, nil
}
