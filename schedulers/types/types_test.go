package types

import (
	"testing"
)

type fakeProcess struct {
	arrivalTime       Tick
	serviceTimeNeeded Tick
	timeScheduled     Tick
	done              bool
}

func (p *fakeProcess) ArrivalTime() Tick       { return p.arrivalTime }
func (p *fakeProcess) ServiceTimeNeeded() Tick { return p.serviceTimeNeeded }
func (p *fakeProcess) TimeScheduled() Tick     { return p.timeScheduled }
func (p *fakeProcess) IsDone() bool            { return p.done }

func TestRosterValidate(t *testing.T) {
	tests := []struct {
		name    string
		roster  Roster
		wantErr bool
	}{
		{"empty roster", Roster{}, true},
		{"valid fresh roster", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 3},
			&fakeProcess{arrivalTime: 2, serviceTimeNeeded: 1},
		}, false},
		{"negative arrival", Roster{
			&fakeProcess{arrivalTime: -1, serviceTimeNeeded: 3},
		}, true},
		{"zero service time", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 0},
		}, true},
		{"negative service time", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: -2},
		}, true},
		{"timeScheduled over serviceTimeNeeded", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 3, done: true},
		}, true},
		{"done but not fully scheduled", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 1, done: true},
		}, true},
		{"fully scheduled but not done", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 2, done: false},
		}, true},
		{"valid partially run roster", Roster{
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 2, done: true},
			&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 4, timeScheduled: 1, done: false},
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.roster.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestRosterAllDone(t *testing.T) {
	roster := Roster{
		&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 2, done: true},
		&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 3, timeScheduled: 1},
	}
	if roster.AllDone() {
		t.Fatalf("AllDone() = true with an unfinished process")
	}
	roster[1] = &fakeProcess{arrivalTime: 0, serviceTimeNeeded: 3, timeScheduled: 3, done: true}
	if !roster.AllDone() {
		t.Fatalf("AllDone() = false with all processes finished")
	}
}

func TestRosterEligible(t *testing.T) {
	roster := Roster{
		&fakeProcess{arrivalTime: 3, serviceTimeNeeded: 2},
		&fakeProcess{arrivalTime: 0, serviceTimeNeeded: 2, timeScheduled: 2, done: true},
	}
	if roster.Eligible(0, 2) {
		t.Fatalf("process eligible before its arrival")
	}
	if !roster.Eligible(0, 3) {
		t.Fatalf("process not eligible at its arrival tick")
	}
	if roster.Eligible(1, 5) {
		t.Fatalf("finished process still eligible")
	}
}

func TestDecisionRun(t *testing.T) {
	d := NewRunDecision(3)
	if d.Kind() != DecisionRun || !d.IsRun() || d.Index() != 3 {
		t.Fatalf("NewRunDecision(3) = %v", d)
	}
	if got := d.String(); got != "Run(3)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestDecisionIdleAndAllDone(t *testing.T) {
	idle := NewIdleDecision()
	if idle.Kind() != DecisionIdle || idle.IsRun() {
		t.Fatalf("NewIdleDecision() = %v", idle)
	}
	allDone := NewAllDoneDecision()
	if allDone.Kind() != DecisionAllDone || allDone.IsRun() {
		t.Fatalf("NewAllDoneDecision() = %v", allDone)
	}
	if idle.String() != "Idle" || allDone.String() != "AllDone" {
		t.Fatalf("String() = %q / %q", idle.String(), allDone.String())
	}
}

func TestDecisionIndexPanicsOnNonRun(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Index() on Idle decision did not panic")
		}
	}()
	NewIdleDecision().Index()
}

func TestNewRunDecisionRejectsNegativeIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewRunDecision(-1) did not panic")
		}
	}()
	NewRunDecision(-1)
}
