package evolution

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// ExportFormatVersion identifies the track document layout.
const ExportFormatVersion = 1

// Validation failures surfaced by ReadJSON and TrackExport.Validate.
var (
	ErrFormatVersion  = errors.New("unsupported track format version")
	ErrNoSnapshots    = errors.New("track has no snapshots")
	ErrAgeOrder       = errors.New("snapshot ages out of order")
	ErrBadComposition = errors.New("snapshot composition is not physical")
	ErrBadTerminal    = errors.New("track does not end in its regime's remnant")
)

// TrackExport is the JSON document for a computed track. Numeric fields are
// plain float64 values, so a write/read cycle reproduces them exactly.
type TrackExport struct {
	FormatVersion      int               `json:"format_version"`
	GeneratedAt        time.Time         `json:"generated_at"`
	TrackID            string            `json:"track_id"`
	InitialMass        float64           `json:"initial_mass_solar"`
	InitialComposition CompositionExport `json:"initial_composition"`
	Regime             string            `json:"regime"`
	FinalAge           float64           `json:"final_age_years"`
	FinalState         SnapshotExport    `json:"final_state"`
	Snapshots          []SnapshotExport  `json:"snapshots"`
}

// CompositionExport carries the three mass fractions.
type CompositionExport struct {
	Hydrogen float64 `json:"hydrogen"`
	Helium   float64 `json:"helium"`
	Metals   float64 `json:"metals"`
}

// SnapshotExport is the JSON representation of one track snapshot.
type SnapshotExport struct {
	Age           float64           `json:"age_years"`
	Mass          float64           `json:"mass_solar"`
	Luminosity    float64           `json:"luminosity_solar"`
	Radius        float64           `json:"radius_solar"`
	Temperature   float64           `json:"temperature_k"`
	Phase         string            `json:"phase"`
	SpectralClass string            `json:"spectral_class"`
	Composition   CompositionExport `json:"composition"`
}

// Export converts a track to its exportable document.
func Export(t *Track, generatedAt time.Time) *TrackExport {
	e := &TrackExport{
		FormatVersion:      ExportFormatVersion,
		GeneratedAt:        generatedAt,
		TrackID:            t.ID,
		InitialMass:        t.InitialMass,
		InitialComposition: exportComposition(t.InitialComposition),
		Regime:             t.Regime.String(),
		FinalAge:           t.FinalAge(),
		FinalState:         exportState(t.FinalState()),
		Snapshots:          make([]SnapshotExport, len(t.Snapshots)),
	}
	for i, s := range t.Snapshots {
		e.Snapshots[i] = exportState(s)
	}
	return e
}

func exportState(s State) SnapshotExport {
	return SnapshotExport{
		Age:           s.Age,
		Mass:          s.Mass,
		Luminosity:    s.Luminosity,
		Radius:        s.Radius,
		Temperature:   s.Temperature,
		Phase:         string(s.Phase),
		SpectralClass: string(s.SpectralClass),
		Composition:   exportComposition(s.Composition),
	}
}

func exportComposition(c stellar.Composition) CompositionExport {
	return CompositionExport{Hydrogen: c.X, Helium: c.Y, Metals: c.Z}
}

func (ce CompositionExport) composition() stellar.Composition {
	return stellar.Composition{X: ce.Hydrogen, Y: ce.Helium, Z: ce.Metals}
}

// WriteJSON writes the document as indented JSON to the given writer.
func (e *TrackExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// ReadJSON decodes a track document and validates it.
func ReadJSON(r io.Reader) (*TrackExport, error) {
	var e TrackExport
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("decoding track document: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Validate checks the structural invariants of an imported document:
// known format version, at least one snapshot, strictly increasing ages,
// physical compositions, and a terminal snapshot matching the regime.
func (e *TrackExport) Validate() error {
	if e.FormatVersion != ExportFormatVersion {
		return fmt.Errorf("%w: %d", ErrFormatVersion, e.FormatVersion)
	}
	if len(e.Snapshots) == 0 {
		return ErrNoSnapshots
	}

	regime, err := ParseRegime(e.Regime)
	if err != nil {
		return err
	}

	for i, s := range e.Snapshots {
		if i > 0 && s.Age <= e.Snapshots[i-1].Age {
			return fmt.Errorf("snapshot %d: %w", i, ErrAgeOrder)
		}
		if _, err := ParsePhase(s.Phase); err != nil {
			return fmt.Errorf("snapshot %d: %w", i, err)
		}
		if err := s.Composition.composition().Validate(); err != nil {
			return fmt.Errorf("snapshot %d: %w: %v", i, ErrBadComposition, err)
		}
	}

	last := e.Snapshots[len(e.Snapshots)-1]
	lastPhase, _ := ParsePhase(last.Phase)
	if lastPhase != regime.TerminalPhase() {
		return fmt.Errorf("%w: ends in %s, regime %s expects %s",
			ErrBadTerminal, lastPhase, regime, regime.TerminalPhase())
	}
	if last.Age != e.FinalAge {
		return fmt.Errorf("final_age_years %g does not match terminal snapshot age %g",
			e.FinalAge, last.Age)
	}
	return nil
}

// Track converts a validated document back into a Track. Snapshot values
// survive the JSON round trip bit for bit.
func (e *TrackExport) Track() (*Track, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	regime, _ := ParseRegime(e.Regime)

	t := &Track{
		ID:                 e.TrackID,
		InitialMass:        e.InitialMass,
		InitialComposition: e.InitialComposition.composition(),
		Regime:             regime,
		Snapshots:          make([]State, len(e.Snapshots)),
	}
	for i, s := range e.Snapshots {
		phase, _ := ParsePhase(s.Phase)
		t.Snapshots[i] = State{
			Age:           s.Age,
			Mass:          s.Mass,
			Luminosity:    s.Luminosity,
			Radius:        s.Radius,
			Temperature:   s.Temperature,
			Phase:         phase,
			SpectralClass: stellar.SpectralClass(s.SpectralClass),
			Composition:   s.Composition.composition(),
		}
	}
	return t, nil
}

// SummaryRow is one phase line in the track summary table.
type SummaryRow struct {
	Phase  Phase
	Start  string
	End    string
	Span   string
	Lum    string
	Radius string
	Class  string
}

// GenerateSummaryRows creates one row per phase interval, with luminosity
// and radius taken at the interval's last snapshot.
func GenerateSummaryRows(t *Track) []SummaryRow {
	var rows []SummaryRow
	for _, pi := range PhaseIntervals(t) {
		s, err := t.StateAtAge(pi.EndAge)
		if err != nil {
			continue
		}
		rows = append(rows, SummaryRow{
			Phase:  pi.Phase,
			Start:  FormatAge(pi.StartAge),
			End:    FormatAge(pi.EndAge),
			Span:   FormatAge(pi.Span()),
			Lum:    fmt.Sprintf("%.4g", s.Luminosity),
			Radius: fmt.Sprintf("%.4g", s.Radius),
			Class:  string(s.SpectralClass),
		})
	}
	return rows
}

// WriteSummaryTable writes a plain-text table of the track to the writer,
// one row per phase, with a luminosity sparkline underneath.
func WriteSummaryTable(w io.Writer, t *Track, generatedAt time.Time) {
	fmt.Fprintf(w, "Evolution of a %.2f Msun star [%s] @ %s\n",
		t.InitialMass, t.Regime, generatedAt.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 90))

	rows := GenerateSummaryRows(t)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No snapshots")
		return
	}

	fmt.Fprintf(w, "%-24s %-10s %-10s %-10s %-12s %-12s %-5s\n",
		"Phase", "Start", "End", "Span", "L (Lsun)", "R (Rsun)", "Class")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, r := range rows {
		fmt.Fprintf(w, "%-24s %-10s %-10s %-10s %-12s %-12s %-5s\n",
			truncateStr(r.Phase.Label(), 24),
			r.Start, r.End, r.Span, r.Lum, r.Radius, r.Class)
	}

	fmt.Fprintf(w, "\nlog L  %s\n", ComputeLuminosityTrace(t, DefaultTraceWidth).Sparkline())

	final := t.FinalState()
	fmt.Fprintf(w, "Final: %s (%s) after %s at %.2f Msun\n",
		final.Phase.Label(), final.SpectralClass, FormatAge(final.Age), final.Mass)
	fmt.Fprintf(w, "Total: %d snapshots across %d phases, track %s\n",
		len(t.Snapshots), len(rows), t.ID)
}

// WriteStateCard writes a detail view of a single state to the writer.
func WriteStateCard(w io.Writer, t *Track, s State) {
	fraction := 0.0
	if t.FinalAge() > 0 {
		fraction = s.Age / t.FinalAge()
	}

	fmt.Fprintf(w, "State @ %s (fraction %.3f)\n", FormatAge(s.Age), fraction)
	fmt.Fprintln(w, strings.Repeat("─", 44))
	fmt.Fprintf(w, "%-18s %s (%s)\n", "Phase", s.Phase.Label(), s.Phase.Short())
	fmt.Fprintf(w, "%-18s %s\n", "Spectral class", s.SpectralClass)
	fmt.Fprintf(w, "%-18s %.4g Msun\n", "Mass", s.Mass)
	fmt.Fprintf(w, "%-18s %.4g Lsun\n", "Luminosity", s.Luminosity)
	fmt.Fprintf(w, "%-18s %.4g Rsun\n", "Radius", s.Radius)
	fmt.Fprintf(w, "%-18s %s\n", "Temperature", FormatTemperature(s.Temperature))
	fmt.Fprintf(w, "%-18s X=%.3f Y=%.3f Z=%.3f\n", "Composition",
		s.Composition.X, s.Composition.Y, s.Composition.Z)

	m := DeriveMetrics(s)
	fmt.Fprintf(w, "%-18s %.4g m/s^2\n", "Surface gravity", m.SurfaceGravity)
	fmt.Fprintf(w, "%-18s %.4g km/s\n", "Escape velocity", m.EscapeVelocity/1000)
	fmt.Fprintf(w, "%-18s %.4g kg/m^3\n", "Mean density", m.MeanDensity)

	if s.Phase.Remnant() {
		fmt.Fprintf(w, "%-18s %.4g m\n", "Schwarzschild r", m.SchwarzschildRadius)
		fmt.Fprintf(w, "%-18s %.4g\n", "Surface redshift", m.GravitationalRedshift)
		return
	}

	// Live stars get the burning diagnostics.
	mu := stellar.MeanMolecularWeight(s.Composition)
	coreT, err := stellar.CoreTemperature(s.Mass, mu)
	if err == nil {
		fmt.Fprintf(w, "%-18s %.3g K\n", "Core temperature", coreT)
		fmt.Fprintf(w, "%-18s %s\n", "Energy source", stellar.DominantEnergySource(coreT))
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
