package schedulers

import (
	"CPUSched-go/schedulers/types"
)

// SRTScheduler
// 采取了Shortest Remaining Time策略。与SPN共用同一骨架，比较键换成剩余时间
// serviceTimeNeeded - timeScheduled，键值相等时同样保留最小下标。
// 名义上它是SPN的抢占式版本，但重新选择的触发条件与SPN完全相同
// （仅在当前选中的进程完成时），因此实际行为退化为非抢占：
// 不会逐Tick重新比较剩余时间，也不会在时间片边界重新比较。
type SRTScheduler struct {
	*SelectionSchedulerTemplate
}

func NewSRTScheduler() *SRTScheduler {
	template := NewSelectionSchedulerTemplate()
	srt := &SRTScheduler{
		template,
	}
	template.impl = srt
	return srt
}

func (s *SRTScheduler) prefer(currentTick types.Tick, roster types.Roster, candidate, incumbent int) (bool, error) {
	return remainingTime(roster, candidate) < remainingTime(roster, incumbent), nil
}

func remainingTime(roster types.Roster, i int) types.Tick {
	return roster[i].ServiceTimeNeeded() - roster[i].TimeScheduled()
}

func (s *SRTScheduler) Name() string {
	return "SRTScheduler"
}

func (s *SRTScheduler) Info() interface{} {
	return s.Name()
}
