package schedulers

import (
	"fmt"
	"time"

	"CPUSched-go/schedulers/types"
	"CPUSched-go/util"
)

// RoundRobinScheduler
// 采取了Round Robin策略。维护一个进程下标的FIFO就绪队列，每个Tick总是调度队首进程。
// ticksUntilPreempt 是距离强制轮转的倒计时，取值范围[0, quantum]。
// 每个Tick按固定顺序执行三步：
// 1. 准入：把arrivalTime恰好等于currentTick的全部进程下标追加到就绪队列尾部。
// 2. 轮转检查：若倒计时归零、或队首进程已完成，则弹出队首；未完成的队首重新入队尾；倒计时重置为quantum。
// 3. 决策：队列非空则调度队首并递减倒计时；否则返回Idle并把倒计时强制置0，保证下一个Tick重新触发轮转检查。
// 平局规则是到达顺序（FIFO）；在时间片耗尽时被抢占的进程，排在所有不晚于它到达的进程之后。
// 空队列上没有队首可言，第2步显式只对非空队列执行，空队列走有定义的Idle路径。
type RoundRobinScheduler struct {
	quantum types.Tick

	ready             *util.IndexQueue
	ticksUntilPreempt types.Tick

	stepRecords []*types.StepCallRecord
}

func NewRoundRobinScheduler(quantum types.Tick) *RoundRobinScheduler {
	if quantum <= 0 {
		panic(fmt.Sprintf("NewRoundRobinScheduler quantum = %d, must be positive", quantum))
	}
	return &RoundRobinScheduler{
		quantum:           quantum,
		ready:             util.NewIndexQueue(),
		ticksUntilPreempt: quantum,
		stepRecords:       make([]*types.StepCallRecord, 0),
	}
}

func (s *RoundRobinScheduler) Step(currentTick types.Tick, roster types.Roster) (types.Decision, error) {
	start := time.Now()
	decision, err := s.step(currentTick, roster)
	s.stepRecords = append(s.stepRecords, &types.StepCallRecord{Duration: time.Since(start)})
	return decision, err
}

func (s *RoundRobinScheduler) step(currentTick types.Tick, roster types.Roster) (types.Decision, error) {
	// 准入：新到达的进程进入就绪队列尾部
	for i := range roster {
		if roster[i].ArrivalTime() == currentTick {
			s.ready.Push(i)
		}
	}

	// 轮转检查：只对非空队列执行
	if !s.ready.Empty() && (s.ticksUntilPreempt == 0 || roster[s.ready.Front()].IsDone()) {
		head := s.ready.Pop()
		if !roster[head].IsDone() {
			s.ready.Push(head)
		}
		s.ticksUntilPreempt = s.quantum
	}

	if s.ready.Empty() {
		// 没有进程就绪。倒计时置0，下一个Tick的轮转检查会立即重新触发。
		s.ticksUntilPreempt = 0
		return types.NewIdleDecision(), nil
	}

	s.ticksUntilPreempt--
	return types.NewRunDecision(s.ready.Front()), nil
}

func (s *RoundRobinScheduler) Quantum() types.Tick {
	return s.quantum
}

func (s *RoundRobinScheduler) Name() string {
	return fmt.Sprintf("RoundRobinScheduler[quantum=%d]", s.quantum)
}

func (s *RoundRobinScheduler) Info() interface{} {
	return struct {
		Name    string     `json:"name"`
		Quantum types.Tick `json:"quantum"`
	}{"RoundRobinScheduler", s.quantum}
}

func (s *RoundRobinScheduler) Record() *types.SchedulerRecord {
	return &types.SchedulerRecord{
		StepRecords: s.stepRecords,
		Extra:       s.Info(),
	}
}
