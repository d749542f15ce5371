package types

type Scheduler interface {
	// Step 调度器的核心操作。Simulator 每经过一个Tick调用一次，
	// 传入当前时刻与Roster的只读快照，返回一个调度决策，同时推进调度器自身的状态。
	// 对currentTick的要求：单调不减，从首个进程到达起每个整数Tick恰好出现一次。
	// Simulator 需要在调用下一个Tick的 Step 之前，根据上一个决策更新Roster
	// （累计timeScheduled、标记isDone），调度器自己绝不修改Roster。
	// 合法输入下返回的error恒为nil；返回非nil的error表示调用方违反了契约
	// （如HRRN遇到serviceTimeNeeded为0的进程记录）。
	Step(currentTick Tick, roster Roster) (Decision, error)

	// Name 调度器基本描述信息
	Name() string

	// Info 详细描述信息
	Info() interface{}

	// Record 获取调度器运行记录信息，用于实验统计数据。
	Record() *SchedulerRecord
}
