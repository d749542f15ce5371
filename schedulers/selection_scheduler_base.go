package schedulers

import (
	"time"

	"CPUSched-go/schedulers/types"
)

// SelectionSchedulerTemplate SPN、SRT、HRRN三个算法的贪心规则类似，可以抽象出模板方法：
// 它们都只在上一个选中的进程完成的时刻重新做选择（非抢占），彼此只差一个比较规则。
// selectedIndex 是当前被认为正在运行的进程下标，仅在runLength > 0时有意义；
// runLength 是自selectedIndex上一次被（重新）选择以来经过的Tick数，
// 恰好在selectedIndex处的进程完成时归零。
// 在任何进程到达之前，调度器处于Idle-no-candidate状态，不会假定下标0有意义。
type SelectionSchedulerTemplate struct {
	selectedIndex int
	runLength     types.Tick

	stepRecords []*types.StepCallRecord
	impl        SelectionScheduler
}

type SelectionScheduler interface {
	types.Scheduler
	// prefer 判断候选进程candidate是否应当取代incumbent成为下一个被选中的进程。
	// 只允许严格优于时返回true，这样相等键值时保留扫描中先遇到的更小下标。
	prefer(currentTick types.Tick, roster types.Roster, candidate, incumbent int) (bool, error)
}

func NewSelectionSchedulerTemplate() *SelectionSchedulerTemplate {
	return &SelectionSchedulerTemplate{
		selectedIndex: -1,
		stepRecords:   make([]*types.StepCallRecord, 0),
	}
}

func (s *SelectionSchedulerTemplate) Step(currentTick types.Tick, roster types.Roster) (types.Decision, error) {
	start := time.Now()
	decision, err := s.step(currentTick, roster)
	s.stepRecords = append(s.stepRecords, &types.StepCallRecord{Duration: time.Since(start)})
	return decision, err
}

func (s *SelectionSchedulerTemplate) step(currentTick types.Tick, roster types.Roster) (types.Decision, error) {
	if roster.AllDone() {
		s.selectedIndex = -1
		s.runLength = 0
		return types.NewAllDoneDecision(), nil
	}

	// runLength恰好在选中的进程完成时归零，触发下一次选择
	if s.selectedIndex >= 0 && roster[s.selectedIndex].IsDone() {
		s.runLength = 0
	}

	if s.runLength == 0 {
		selected := -1
		for i := range roster {
			if !roster.Eligible(i, currentTick) {
				continue
			}
			if selected == -1 {
				selected = i
				continue
			}
			better, err := s.impl.prefer(currentTick, roster, i, selected)
			if err != nil {
				return types.Decision{}, err
			}
			if better {
				selected = i
			}
		}
		if selected == -1 {
			// 还没有任何进程到达
			return types.NewIdleDecision(), nil
		}
		s.selectedIndex = selected
	}

	// runLength > 0 时无条件返回同一个下标，这就是非抢占
	s.runLength++
	return types.NewRunDecision(s.selectedIndex), nil
}

func (s *SelectionSchedulerTemplate) prefer(currentTick types.Tick, roster types.Roster, candidate, incumbent int) (bool, error) {
	panic("SelectionSchedulerTemplate prefer cannot be called.")
}

func (s *SelectionSchedulerTemplate) Name() string {
	return "SelectionSchedulerTemplate"
}

func (s *SelectionSchedulerTemplate) Info() interface{} {
	return s.Name()
}

func (s *SelectionSchedulerTemplate) Record() *types.SchedulerRecord {
	return &types.SchedulerRecord{
		StepRecords: s.stepRecords,
	}
}
