package types

import (
	"time"
)

type SchedulerRecord struct {
	StepRecords []*StepCallRecord
	// Extra 每个调度器独特的信息，如RoundRobin可记录它的时间片配置。
	Extra interface{}
}

// StepCallRecord 记录一次 Step 调用的耗时，用于实验统计。
type StepCallRecord struct {
	Duration time.Duration
}
