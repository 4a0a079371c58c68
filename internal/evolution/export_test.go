package evolution

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

var exportStamp = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func roundTrip(t *testing.T, track *Track) *Track {
	t.Helper()

	var buf bytes.Buffer
	if err := Export(track, exportStamp).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	doc, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	back, err := doc.Track()
	if err != nil {
		t.Fatalf("Track() failed: %v", err)
	}
	return back
}

func TestExportRoundTrip(t *testing.T) {
	for _, mass := range []float64{0.3, 1.0, 5.0, 20.0, 30.0} {
		track := mustCompute(t, mass)
		back := roundTrip(t, track)

		if back.ID != track.ID {
			t.Errorf("mass %g: ID changed across round trip", mass)
		}
		if back.Regime != track.Regime {
			t.Errorf("mass %g: regime changed across round trip", mass)
		}
		if back.InitialMass != track.InitialMass {
			t.Errorf("mass %g: initial mass changed across round trip", mass)
		}
		if back.InitialComposition != track.InitialComposition {
			t.Errorf("mass %g: initial composition changed across round trip", mass)
		}
		if !reflect.DeepEqual(back.Snapshots, track.Snapshots) {
			t.Errorf("mass %g: snapshots changed across round trip", mass)
		}
	}
}

func TestExportDocumentFields(t *testing.T) {
	track := mustCompute(t, 1.0)
	doc := Export(track, exportStamp)

	if doc.FormatVersion != ExportFormatVersion {
		t.Errorf("format version = %d", doc.FormatVersion)
	}
	if !doc.GeneratedAt.Equal(exportStamp) {
		t.Errorf("generated at = %v", doc.GeneratedAt)
	}
	if doc.Regime != "intermediate" {
		t.Errorf("regime = %q", doc.Regime)
	}
	if doc.FinalAge != track.FinalAge() {
		t.Errorf("final age = %g, want %g", doc.FinalAge, track.FinalAge())
	}
	if len(doc.Snapshots) != len(track.Snapshots) {
		t.Errorf("snapshot count = %d, want %d", len(doc.Snapshots), len(track.Snapshots))
	}
	if doc.FinalState != doc.Snapshots[len(doc.Snapshots)-1] {
		t.Error("final_state does not match the terminal snapshot")
	}
}

func TestExportJSONShape(t *testing.T) {
	track := mustCompute(t, 1.0)

	var buf bytes.Buffer
	if err := Export(track, exportStamp).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	out := buf.String()

	for _, field := range []string{
		`"format_version"`, `"generated_at"`, `"track_id"`,
		`"initial_mass_solar"`, `"initial_composition"`, `"regime"`,
		`"final_age_years"`, `"final_state"`, `"snapshots"`,
		`"age_years"`, `"luminosity_solar"`, `"spectral_class"`,
		`"hydrogen"`, `"helium"`, `"metals"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("document missing %s", field)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	base := func(t *testing.T) *TrackExport {
		t.Helper()
		return Export(mustCompute(t, 1.0), exportStamp)
	}

	tests := []struct {
		name   string
		mutate func(*TrackExport)
		want   error
	}{
		{
			name:   "Unknown format version",
			mutate: func(e *TrackExport) { e.FormatVersion = 99 },
			want:   ErrFormatVersion,
		},
		{
			name:   "No snapshots",
			mutate: func(e *TrackExport) { e.Snapshots = nil },
			want:   ErrNoSnapshots,
		},
		{
			name: "Ages out of order",
			mutate: func(e *TrackExport) {
				e.Snapshots[10].Age = e.Snapshots[9].Age
			},
			want: ErrAgeOrder,
		},
		{
			name: "Composition does not sum to one",
			mutate: func(e *TrackExport) {
				e.Snapshots[5].Composition.Hydrogen += 0.25
			},
			want: ErrBadComposition,
		},
		{
			name: "Terminal phase mismatch",
			mutate: func(e *TrackExport) {
				e.Snapshots = e.Snapshots[:len(e.Snapshots)-1]
			},
			want: ErrBadTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := base(t)
			tt.mutate(doc)
			err := doc.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadJSONGarbage(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON accepted malformed input")
	}
	if _, err := ReadJSON(strings.NewReader(`{"format_version": 1}`)); err == nil {
		t.Error("ReadJSON accepted a document with no snapshots")
	}
}

func TestWriteSummaryTable(t *testing.T) {
	track := mustCompute(t, 1.0)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, track, exportStamp)
	out := buf.String()

	for _, want := range []string{
		"Evolution of a 1.00 Msun star [intermediate]",
		"Pre-Main Sequence",
		"Main Sequence",
		"Red Giant Branch",
		"Horizontal Branch",
		"Planetary Nebula",
		"White Dwarf",
		"log L",
		"Final: White Dwarf (D)",
		track.ID,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	if lines := strings.Count(out, "\n"); lines < 10 {
		t.Errorf("summary has only %d lines", lines)
	}
}

func TestWriteStateCard(t *testing.T) {
	track := mustCompute(t, 1.0)
	mid, err := track.StateAtFraction(0.4)
	if err != nil {
		t.Fatalf("StateAtFraction failed: %v", err)
	}

	var buf bytes.Buffer
	WriteStateCard(&buf, track, mid)
	out := buf.String()

	for _, want := range []string{
		"Phase", "Spectral class", "Mass", "Luminosity", "Radius",
		"Temperature", "Composition", "Surface gravity", "Escape velocity",
		"Core temperature", "Energy source",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("state card missing %q", want)
		}
	}
}

func TestWriteStateCardRemnant(t *testing.T) {
	track := mustCompute(t, 30.0)

	var buf bytes.Buffer
	WriteStateCard(&buf, track, track.FinalState())
	out := buf.String()

	if !strings.Contains(out, "Black Hole") {
		t.Error("remnant card missing the phase label")
	}
	if !strings.Contains(out, "Surface redshift") {
		t.Error("remnant card missing the redshift line")
	}
	if strings.Contains(out, "Energy source") {
		t.Error("remnant card should not report nuclear burning")
	}
	if !strings.Contains(out, "+Inf") {
		t.Error("black-hole redshift should render as +Inf")
	}
}
