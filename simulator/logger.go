package simulator

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newConsoleLogger 按打印级别构造控制台日志。
func newConsoleLogger(level LogPrintLevel) *zap.SugaredLogger {
	if level == NoPrint {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	if level >= AllFormatPrint {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// Logger 把完成的进程记录与模拟指标写入运行日志文件的后台例程。
type Logger struct {
	ctx     context.Context
	enabled bool
	logPath string

	logMsgChan chan *loggerMsg
}

type loggerMsg struct {
	finishedProcesses []*Process
	metrics           string
}

func NewLogger(ctx context.Context, enabled bool, logDirPath string) *Logger {
	logger := &Logger{
		ctx:     ctx,
		enabled: enabled,
		logPath: filepath.Join(logDirPath, "simulation.log"),

		logMsgChan: make(chan *loggerMsg),
	}
	if enabled {
		logger.startLogRoutine()
	}
	return logger
}

func (l *Logger) ReceiveFinishedProcesses(processes []*Process) {
	if !l.enabled {
		return
	}
	l.logMsgChan <- &loggerMsg{
		finishedProcesses: processes,
	}
}

func (l *Logger) ReceiveMetrics(metrics string) {
	if !l.enabled {
		return
	}
	l.logMsgChan <- &loggerMsg{
		finishedProcesses: nil,
		metrics:           metrics,
	}
}

func (l *Logger) finishedProcessesLogger() func(fp *os.File, finishedProcesses []*Process) {
	loggedFinishedCount := 0
	return func(fp *os.File, finishedProcesses []*Process) {
		b := &strings.Builder{}
		genFirstLine, genLastLine := func() (func(c int) string, func(firstLine string) string) {
			sp := strings.Repeat("=", 50)
			return func(c int) string {
					return sp + strconv.Itoa(c) + sp + "\n"
				}, func(firstLine string) string {
					return strings.Repeat("=", len(firstLine)) + "\n"
				}
		}()
		for _, p := range finishedProcesses {
			fl := genFirstLine(loggedFinishedCount)
			b.WriteString(fl)
			strProcess, _ := json.Marshal(p)
			b.Write(strProcess)
			b.WriteString("\n")
			b.WriteString(genLastLine(fl))
			loggedFinishedCount++
		}
		_, err := fp.WriteString(b.String())
		if err != nil {
			log.Printf("Logger routine, write finished processes log failed, err=[%v]", err)
		}
	}
}

func (l *Logger) metricsLogger() func(fp *os.File, metrics string) {
	return func(fp *os.File, metrics string) {
		_, err := fp.WriteString(metrics)
		if err != nil {
			log.Printf("Logger routine, write metrics failed, err=[%v]", err)
		}
	}
}

func (l *Logger) startLogRoutine() {
	go func() {
		fp, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.ModePerm)
		if err != nil {
			panic(err)
		}
		defer fp.Close()

		finishedProcessesLogger := l.finishedProcessesLogger()
		metricsLogger := l.metricsLogger()
		for {
			select {
			case msg := <-l.logMsgChan:
				if msg.metrics != "" {
					metricsLogger(fp, msg.metrics)
				}
				if msg.finishedProcesses != nil {
					finishedProcessesLogger(fp, msg.finishedProcesses)
				}
			case <-l.ctx.Done():
				log.Printf("Logger exit.")
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
}
