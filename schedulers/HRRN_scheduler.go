package schedulers

import (
	"github.com/pkg/errors"

	"CPUSched-go/schedulers/types"
)

// HRRNScheduler
// 采取了Highest Response Ratio Next策略，非抢占，与SPN/SRT共用同一骨架。
// 比较键是响应比 R = (等待时间 + 服务时间) / 服务时间，
// 其中等待时间 = currentTick - arrivalTime - timeScheduled。
// 选择响应比最大的可调度进程；只有严格大于才替换，键值相等时保留最小下标。
// serviceTimeNeeded为0时响应比无定义，按进程记录非法报告给调用方，
// 不让除零静默传播。
type HRRNScheduler struct {
	*SelectionSchedulerTemplate
}

func NewHRRNScheduler() *HRRNScheduler {
	template := NewSelectionSchedulerTemplate()
	hrrn := &HRRNScheduler{
		template,
	}
	template.impl = hrrn
	return hrrn
}

func (s *HRRNScheduler) prefer(currentTick types.Tick, roster types.Roster, candidate, incumbent int) (bool, error) {
	candidateRatio, err := responseRatio(currentTick, roster, candidate)
	if err != nil {
		return false, err
	}
	incumbentRatio, err := responseRatio(currentTick, roster, incumbent)
	if err != nil {
		return false, err
	}
	return candidateRatio > incumbentRatio, nil
}

func responseRatio(currentTick types.Tick, roster types.Roster, i int) (float64, error) {
	serviceTime := roster[i].ServiceTimeNeeded()
	if serviceTime <= 0 {
		return 0, errors.Errorf("HRRN response ratio undefined: roster[%d].serviceTimeNeeded = %d", i, serviceTime)
	}
	waitingTime := currentTick - roster[i].ArrivalTime() - roster[i].TimeScheduled()
	return (float64(waitingTime) + float64(serviceTime)) / float64(serviceTime), nil
}

func (s *HRRNScheduler) Name() string {
	return "HRRNScheduler"
}

func (s *HRRNScheduler) Info() interface{} {
	return s.Name()
}
