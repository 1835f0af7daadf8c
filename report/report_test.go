package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vgcpu/vgbench"
)

func sampleReport() vgbench.RunReport {
	return vgbench.RunReport{
		SuiteVersion:   "0.1.0",
		IRFormatVer:    "1.0",
		GeneratedAtRFC: "2026-08-02T00:00:00Z",
		Policy:         vgbench.DefaultPolicy(),
		Cases: []vgbench.CaseResult{
			{
				BackendName: "null",
				SceneName:   "red_rect",
				SceneHash:   "abc123",
				Width:       800,
				Height:      600,
				Decision:    vgbench.DecisionExecute,
				Timing: vgbench.TimingStats{
					WallP50: 2 * time.Millisecond,
					CPUP50:  1 * time.Millisecond,
					Samples: 10,
				},
			},
			{
				BackendName: "null",
				SceneName:   "too_big",
				SceneHash:   "def456",
				Width:       99999,
				Height:      99999,
				Decision:    vgbench.DecisionSkip,
				Reasons:     []string{"UNSUPPORTED_FEATURE:dimensions"},
			},
		},
	}
}

func TestWriteJSONSchemaVersionFirst(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if _, ok := m["schema_version"]; !ok {
		t.Fatal("missing schema_version key")
	}
	first := strings.TrimLeft(buf.String(), "{\n \t")
	if !strings.HasPrefix(first, `"schema_version"`) {
		t.Fatalf("schema_version is not the first key: %.60s", buf.String())
	}
}

func TestWriteCSVHeaderAndSchemaComment(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[0], "# schema_version=") {
		t.Fatalf("first line = %q, want schema_version comment", lines[0])
	}
	const wantHeader = "backend_id,scene_id,scene_hash,width,height,decision," +
		"wall_p50_ns,wall_p90_ns,cpu_p50_ns,cpu_p90_ns,sample_count"
	if lines[1] != wantHeader {
		t.Fatalf("header row = %q, want %q", lines[1], wantHeader)
	}
	if !strings.Contains(buf.String(), "red_rect") || !strings.Contains(buf.String(), "too_big") {
		t.Fatal("expected both case rows in CSV output")
	}
	// Scenario 5: a Skip decision must render uppercase in the sixth column.
	skipRow := lines[3]
	cols := strings.Split(skipRow, ",")
	if len(cols) < 6 || cols[5] != "SKIP" {
		t.Fatalf("skip row = %q, want column 6 = SKIP", skipRow)
	}
}

func TestWriteJSONSchemaShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if _, ok := m["run_metadata"]; !ok {
		t.Fatal("missing run_metadata wrapper")
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(m["run_metadata"], &meta); err != nil {
		t.Fatalf("re-parse run_metadata: %v", err)
	}
	for _, key := range []string{"timestamp", "suite_version", "git_commit", "environment", "policy"} {
		if _, ok := meta[key]; !ok {
			t.Fatalf("run_metadata missing %q", key)
		}
	}

	var cases []map[string]json.RawMessage
	if err := json.Unmarshal(m["cases"], &cases); err != nil {
		t.Fatalf("re-parse cases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}
	for _, key := range []string{"backend_id", "scene_id", "scene_hash", "width", "height", "decision", "stats"} {
		if _, ok := cases[0][key]; !ok {
			t.Fatalf("case missing %q", key)
		}
	}
	var decision string
	if err := json.Unmarshal(cases[0]["decision"], &decision); err != nil {
		t.Fatalf("re-parse decision: %v", err)
	}
	if decision != "EXECUTE" {
		t.Fatalf("decision = %q, want EXECUTE", decision)
	}
	var skipDecision string
	if err := json.Unmarshal(cases[1]["decision"], &skipDecision); err != nil {
		t.Fatalf("re-parse decision: %v", err)
	}
	if skipDecision != "SKIP" {
		t.Fatalf("decision = %q, want SKIP", skipDecision)
	}
}

func TestWriteSummaryContainsBothCases(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "red_rect") || !strings.Contains(out, "too_big") {
		t.Fatalf("summary missing case names: %s", out)
	}
	if !strings.Contains(out, "UNSUPPORTED_FEATURE:dimensions") {
		t.Fatal("summary missing skip reason")
	}
}
