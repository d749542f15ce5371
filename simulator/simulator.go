package simulator

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"CPUSched-go/schedulers/types"
	"CPUSched-go/util"
)

// Simulator 模拟的驱动器：推进离散时钟，每个Tick调用一次调度器的 Step ，
// 把返回的决策应用到Roster上（累计timeScheduled、标记isDone），并记录时间线。
// 单线程、同步：同一时刻只有一次 Step 在执行，Roster只由驱动器修改。
type Simulator struct {
	opts      *Options
	scheduler types.Scheduler
	processes []*Process
	roster    types.Roster

	caseFileName string

	logger       *Logger
	log          *zap.SugaredLogger
	loggerCtx    context.Context
	loggerCancel context.CancelFunc

	// timeline 每个Tick被调度的进程下标，Idle记为-1
	timeline                  []int
	totalTicks                types.Tick
	recordedFinishedProcesses []*Process
}

// Record 一次模拟的完整运行记录，交给metrics包生成报告。
type Record struct {
	SchedulerName   string
	SchedulerInfo   interface{}
	SchedulerRecord *types.SchedulerRecord
	CaseFileName    string
	Processes       []*Process
	Timeline        []int
	TotalTicks      types.Tick
}

// NewSimulator 从Options里的CSV路径读入进程清单并构造模拟器。
func NewSimulator(scheduler types.Scheduler, setOpts ...SetOption) (*Simulator, error) {
	opts := defaultOptions
	for _, setOpt := range setOpts {
		setOpt(&opts)
	}
	if opts.dataSourceCSVPath == "" {
		return nil, errors.New("simulator requires a roster csv path, use WithOptionDataSourceCSVPath")
	}
	ds, err := LoadDataSource(opts.dataSourceCSVPath)
	if err != nil {
		return nil, err
	}
	return newSimulator(scheduler, ds.Processes(), ds.CaseFileName(), &opts)
}

// NewSimulatorWithProcesses 直接用内存中的进程清单构造模拟器，供测试与上层程序使用。
func NewSimulatorWithProcesses(scheduler types.Scheduler, processes []*Process, setOpts ...SetOption) (*Simulator, error) {
	opts := defaultOptions
	for _, setOpt := range setOpts {
		setOpt(&opts)
	}
	return newSimulator(scheduler, processes, "in-memory", &opts)
}

func newSimulator(scheduler types.Scheduler, processes []*Process, caseFileName string, opts *Options) (*Simulator, error) {
	roster := rosterOf(processes)
	if err := roster.Validate(); err != nil {
		return nil, errors.Wrap(err, "simulator roster validation")
	}
	loggerCtx, loggerCancel := context.WithCancel(context.Background())
	logger := NewLogger(loggerCtx, opts.logEnabled, opts.logDirPath)
	return &Simulator{
		opts:         opts,
		scheduler:    scheduler,
		processes:    processes,
		roster:       roster,
		caseFileName: caseFileName,

		logger:       logger,
		log:          newConsoleLogger(opts.formatPrintLevel),
		loggerCtx:    loggerCtx,
		loggerCancel: loggerCancel,

		timeline:                  make([]int, 0),
		recordedFinishedProcesses: make([]*Process, 0),
	}, nil
}

// Start 运行模拟直到全部进程完成，返回运行记录。
func (s *Simulator) Start() (*Record, error) {
	defer s.loggerCancel()

	s.log.Infof("simulation starting, scheduler = [%s], process count = [%d]", s.scheduler.Name(), len(s.processes))
	s.log.Debugf("scheduler info = %s, roster = %s", util.Pretty(s.scheduler.Info()), util.Pretty(s.processes))

	maxTicks := s.maxTicks()
	for currentTick := types.Tick(0); ; currentTick++ {
		if currentTick > maxTicks {
			return nil, errors.Errorf("simulation exceeded %d ticks without finishing, scheduler = [%s]", maxTicks, s.scheduler.Name())
		}

		decision, err := s.scheduler.Step(currentTick, s.roster)
		if err != nil {
			return nil, errors.Wrapf(err, "scheduler [%s] step at tick %d", s.scheduler.Name(), currentTick)
		}

		if decision.Kind() == types.DecisionAllDone {
			s.totalTicks = currentTick
			break
		}

		// 应用决策。对下一个Tick的 Step 而言，本Tick的更新已经生效。
		if decision.IsRun() {
			idx := decision.Index()
			p := s.processes[idx]
			p.runFor(currentTick)
			s.timeline = append(s.timeline, idx)
			s.log.Debugf("tick %d: run process [%s] (index %d)", currentTick, p.Name(), idx)
			if p.IsDone() {
				s.recordedFinishedProcesses = append(s.recordedFinishedProcesses, p)
				s.logger.ReceiveFinishedProcesses([]*Process{p})
				s.log.Infof("tick %d: process [%s] finished", currentTick, p.Name())
				s.log.Debugf("finished process = %s", util.Pretty(p))
			}
		} else {
			s.timeline = append(s.timeline, -1)
			s.log.Debugf("tick %d: idle", currentTick)
		}

		// RoundRobin从不报告AllDone，结束由驱动器自己检测
		if s.roster.AllDone() {
			s.totalTicks = currentTick + 1
			break
		}
	}

	s.logMetrics()
	return s.record(), nil
}

// maxTicks 模拟Tick数的硬上限：最晚到达时刻之前最多逐Tick空转，
// 之后每个Tick要么在运行一个进程，要么是轮转产生的有限空闲。
func (s *Simulator) maxTicks() types.Tick {
	if s.opts.maxTickLimit > 0 {
		return s.opts.maxTickLimit
	}
	latestArrival := types.Tick(0)
	totalService := types.Tick(0)
	for _, p := range s.processes {
		if p.ArrivalTime() > latestArrival {
			latestArrival = p.ArrivalTime()
		}
		totalService += p.ServiceTimeNeeded()
	}
	return latestArrival + totalService + types.Tick(len(s.processes)) + 2
}

func (s *Simulator) logMetrics() {
	metrics := fmt.Sprintf("simulation completed, scheduler = [%s], finished process count = [%d], total ticks = [%d], avg turnaround = [%f], avg waiting = [%f], avg response = [%f]\n",
		s.scheduler.Name(), len(s.recordedFinishedProcesses), s.totalTicks,
		AvgTurnaround(s.recordedFinishedProcesses), AvgWaiting(s.recordedFinishedProcesses), AvgResponse(s.recordedFinishedProcesses))
	s.logger.ReceiveMetrics(metrics)
	s.log.Infof("%s", metrics)
	s.log.Debugf("timeline = %s", util.IntSliceJoinWith(s.timeline, ","))
}

func (s *Simulator) record() *Record {
	// 守恒检查：时间线中每个进程占用的Tick数等于它的serviceTimeNeeded
	runTicks := make(map[int]types.Tick)
	for _, idx := range s.timeline {
		if idx >= 0 {
			runTicks[idx]++
		}
	}
	for i, p := range s.processes {
		if runTicks[i] != p.ServiceTimeNeeded() {
			panic(fmt.Sprintf("conservation violated: process [%s] ran %d ticks, serviceTimeNeeded = %d",
				p.Name(), runTicks[i], p.ServiceTimeNeeded()))
		}
	}
	return &Record{
		SchedulerName:   s.scheduler.Name(),
		SchedulerInfo:   s.scheduler.Info(),
		SchedulerRecord: s.scheduler.Record(),
		CaseFileName:    s.caseFileName,
		Processes:       s.processes,
		Timeline:        s.timeline,
		TotalTicks:      s.totalTicks,
	}
}
