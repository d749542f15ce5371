package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"CPUSched-go/schedulers/types"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadDataSource(t *testing.T) {
	path := writeTempCSV(t, "process_name,arrival_time,service_time\nP0,0,3\nP1,1,2\n")
	ds, err := LoadDataSource(path)
	if err != nil {
		t.Fatalf("LoadDataSource: %v", err)
	}
	if ds.CaseFileName() != "case.csv" {
		t.Fatalf("CaseFileName() = %q", ds.CaseFileName())
	}
	if ds.ProcessCount() != 2 {
		t.Fatalf("ProcessCount() = %d, want 2", ds.ProcessCount())
	}
	ps := ds.Processes()
	if ps[0].Name() != "P0" || ps[0].ArrivalTime() != types.Tick(0) || ps[0].ServiceTimeNeeded() != types.Tick(3) {
		t.Fatalf("process 0 = %v", ps[0])
	}
	if ps[1].Name() != "P1" || ps[1].ArrivalTime() != types.Tick(1) || ps[1].ServiceTimeNeeded() != types.Tick(2) {
		t.Fatalf("process 1 = %v", ps[1])
	}
}

func TestLoadDataSourceColumnOrderIrrelevant(t *testing.T) {
	path := writeTempCSV(t, "service_time,process_name,arrival_time\n4,P0,2\n")
	ds, err := LoadDataSource(path)
	if err != nil {
		t.Fatalf("LoadDataSource: %v", err)
	}
	p := ds.Processes()[0]
	if p.Name() != "P0" || p.ArrivalTime() != types.Tick(2) || p.ServiceTimeNeeded() != types.Tick(4) {
		t.Fatalf("process = %v", p)
	}
}

func TestDataSourceProcessesReturnsFreshCopies(t *testing.T) {
	path := writeTempCSV(t, "process_name,arrival_time,service_time\nP0,0,2\n")
	ds, err := LoadDataSource(path)
	if err != nil {
		t.Fatalf("LoadDataSource: %v", err)
	}
	first := ds.Processes()
	first[0].runFor(0)
	second := ds.Processes()
	if second[0].TimeScheduled() != 0 {
		t.Fatalf("second copy carries run state from the first, timeScheduled = %d", second[0].TimeScheduled())
	}
}

func TestLoadDataSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"header only", "process_name,arrival_time,service_time\n"},
		{"missing column", "process_name,arrival_time\nP0,0\n"},
		{"bad arrival integer", "process_name,arrival_time,service_time\nP0,zero,3\n"},
		{"bad service integer", "process_name,arrival_time,service_time\nP0,0,three\n"},
		{"zero service time", "process_name,arrival_time,service_time\nP0,0,0\n"},
		{"negative arrival", "process_name,arrival_time,service_time\nP0,-1,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)
			if _, err := LoadDataSource(path); err == nil {
				t.Fatalf("LoadDataSource accepted %q", tt.content)
			}
		})
	}
}

func TestLoadDataSourceMissingFile(t *testing.T) {
	if _, err := LoadDataSource(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("LoadDataSource accepted a missing file")
	}
}
