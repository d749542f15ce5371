package schedulers

import (
	"CPUSched-go/schedulers/types"
)

// SPNScheduler
// 采取了Shortest Process Next策略，非抢占：一旦选中一个进程，直到它完成之前
// 每个Tick都返回同一个下标。决策点上在全部可调度（已到达且未完成）的进程中
// 选择serviceTimeNeeded最小者；键值相等时保留扫描中先遇到的最小下标。
type SPNScheduler struct {
	*SelectionSchedulerTemplate
}

func NewSPNScheduler() *SPNScheduler {
	template := NewSelectionSchedulerTemplate()
	spn := &SPNScheduler{
		template,
	}
	template.impl = spn
	return spn
}

func (s *SPNScheduler) prefer(currentTick types.Tick, roster types.Roster, candidate, incumbent int) (bool, error) {
	return roster[candidate].ServiceTimeNeeded() < roster[incumbent].ServiceTimeNeeded(), nil
}

func (s *SPNScheduler) Name() string {
	return "SPNScheduler"
}

func (s *SPNScheduler) Info() interface{} {
	return s.Name()
}
