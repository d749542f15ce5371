package schedulers

import (
	"testing"

	"CPUSched-go/schedulers/types"
)

// testProcess 测试用的进程记录，由测试里的迷你驱动器负责更新。
type testProcess struct {
	arrivalTime       types.Tick
	serviceTimeNeeded types.Tick
	timeScheduled     types.Tick
	done              bool
}

func (p *testProcess) ArrivalTime() types.Tick       { return p.arrivalTime }
func (p *testProcess) ServiceTimeNeeded() types.Tick { return p.serviceTimeNeeded }
func (p *testProcess) TimeScheduled() types.Tick     { return p.timeScheduled }
func (p *testProcess) IsDone() bool                  { return p.done }

// newTestRoster 按(arrival, service)对构造roster。
func newTestRoster(arrivalAndService ...types.Tick) (types.Roster, []*testProcess) {
	if len(arrivalAndService)%2 != 0 {
		panic("newTestRoster needs (arrival, service) pairs")
	}
	ps := make([]*testProcess, 0, len(arrivalAndService)/2)
	for i := 0; i < len(arrivalAndService); i += 2 {
		ps = append(ps, &testProcess{
			arrivalTime:       arrivalAndService[i],
			serviceTimeNeeded: arrivalAndService[i+1],
		})
	}
	roster := make(types.Roster, 0, len(ps))
	for _, p := range ps {
		roster = append(roster, p)
	}
	return roster, ps
}

// drive 迷你驱动器：逐Tick调用Step并应用返回的决策，返回时间线（Idle记为-1）。
// 在调度器报告AllDone或roster全部完成时停止。
func drive(t *testing.T, scheduler types.Scheduler, roster types.Roster, ps []*testProcess, maxTicks int) []int {
	t.Helper()
	timeline := make([]int, 0)
	for tick := 0; tick < maxTicks; tick++ {
		decision, err := scheduler.Step(types.Tick(tick), roster)
		if err != nil {
			t.Fatalf("step at tick %d: %v", tick, err)
		}
		if decision.Kind() == types.DecisionAllDone {
			return timeline
		}
		if decision.IsRun() {
			idx := decision.Index()
			p := ps[idx]
			if p.done {
				t.Fatalf("tick %d: scheduler selected finished process %d", tick, idx)
			}
			if p.arrivalTime > types.Tick(tick) {
				t.Fatalf("tick %d: scheduler selected process %d before its arrival at %d", tick, idx, p.arrivalTime)
			}
			p.timeScheduled++
			if p.timeScheduled == p.serviceTimeNeeded {
				p.done = true
			}
			timeline = append(timeline, idx)
		} else {
			timeline = append(timeline, -1)
		}
		if roster.AllDone() {
			return timeline
		}
	}
	t.Fatalf("scheduler did not finish within %d ticks", maxTicks)
	return nil
}

func assertTimeline(t *testing.T, got []int, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("timeline length = %d, want %d (got %v, want %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("timeline[%d] = %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// runTicksPerProcess 统计时间线里每个下标占用的Tick数。
func runTicksPerProcess(timeline []int, processCount int) []types.Tick {
	counts := make([]types.Tick, processCount)
	for _, idx := range timeline {
		if idx >= 0 {
			counts[idx]++
		}
	}
	return counts
}
