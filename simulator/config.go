package simulator

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"CPUSched-go/schedulers/types"
)

type LogPrintLevel int

const (
	NoPrint        = LogPrintLevel(0)
	ShortMsgPrint  = LogPrintLevel(1)
	AllFormatPrint = LogPrintLevel(2)
)

type Options struct {
	logEnabled        bool
	logDirPath        string
	dataSourceCSVPath string
	formatPrintLevel  LogPrintLevel
	// maxTickLimit 防止有缺陷的调度器让模拟永不结束；0表示根据Roster自动推导上限。
	maxTickLimit types.Tick
}

var defaultOptions = Options{
	logEnabled:       true,
	logDirPath:       os.TempDir(),
	formatPrintLevel: ShortMsgPrint,
}

type SetOption func(options *Options)

func WithOptionLogEnabled(enabled bool) SetOption {
	return func(options *Options) {
		options.logEnabled = enabled
	}
}

func WithOptionLogPath(logPath string) SetOption {
	return func(options *Options) {
		options.logDirPath = logPath
	}
}

func WithOptionDataSourceCSVPath(csvPath string) SetOption {
	return func(options *Options) {
		options.dataSourceCSVPath = csvPath
	}
}

func WithOptionFormatPrintLevel(logLevel LogPrintLevel) SetOption {
	return func(options *Options) {
		options.formatPrintLevel = logLevel
	}
}

func WithOptionMaxTickLimit(maxTickLimit types.Tick) SetOption {
	return func(options *Options) {
		options.maxTickLimit = maxTickLimit
	}
}

// ConfigYAML 与命令行旗标一一对应的YAML配置文件。
// 零值字段表示"未设置"，不覆盖默认值。
type ConfigYAML struct {
	RosterCSVPath string `yaml:"roster_csv_path"`
	Policy        string `yaml:"policy"`
	Quantum       int    `yaml:"quantum"`
	LogEnabled    *bool  `yaml:"log_enabled"`
	LogDirPath    string `yaml:"log_dir_path"`
	ReportDirPath string `yaml:"report_dir_path"`
	PrintLevel    *int   `yaml:"print_level"`
}

func LoadConfigYAML(path string) (*ConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config read %s", path)
	}
	config := &ConfigYAML{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "config unmarshal %s", path)
	}
	return config, nil
}

// SetOptions 将配置文件中已设置的字段转换成对应的SetOption。
func (c *ConfigYAML) SetOptions() []SetOption {
	setOpts := make([]SetOption, 0)
	if c.RosterCSVPath != "" {
		setOpts = append(setOpts, WithOptionDataSourceCSVPath(c.RosterCSVPath))
	}
	if c.LogEnabled != nil {
		setOpts = append(setOpts, WithOptionLogEnabled(*c.LogEnabled))
	}
	if c.LogDirPath != "" {
		setOpts = append(setOpts, WithOptionLogPath(c.LogDirPath))
	}
	if c.PrintLevel != nil {
		setOpts = append(setOpts, WithOptionFormatPrintLevel(LogPrintLevel(*c.PrintLevel)))
	}
	return setOpts
}
