package simulator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"CPUSched-go/schedulers/types"
	"CPUSched-go/util"
)

// DataSource 从CSV读入进程清单。列由表头索引：
// process_name, arrival_time, service_time。
// Processes 每次返回一份全新的进程副本，同一个case可以被多个调度器分别模拟。
type DataSource struct {
	caseFileName string
	processes    []*Process
}

func LoadDataSource(csvFilePath string) (*DataSource, error) {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "dataSource open %s", csvFilePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 0
	csvDataRecords, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataSource read csv %s", csvFilePath)
	}
	if len(csvDataRecords) < 2 {
		return nil, errors.Errorf("dataSource %s holds no process records", csvFilePath)
	}

	csvHeaders := csvDataRecords[0]
	colIndexOf := func(colName string) (int, error) {
		res := util.StringSliceIndexOf(csvHeaders, colName)
		if res == -1 {
			return -1, errors.Errorf("dataSource %s: column %s not in csvHeaders %+v", csvFilePath, colName, csvHeaders)
		}
		return res, nil
	}

	colProcessNameIdx, err := colIndexOf("process_name")
	if err != nil {
		return nil, err
	}
	colArrivalTimeIdx, err := colIndexOf("arrival_time")
	if err != nil {
		return nil, err
	}
	colServiceTimeIdx, err := colIndexOf("service_time")
	if err != nil {
		return nil, err
	}

	processes := make([]*Process, 0, len(csvDataRecords)-1)
	for row, record := range csvDataRecords[1:] {
		arrivalTime, err := strconv.Atoi(record[colArrivalTimeIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "dataSource %s row %d: parse arrival_time", csvFilePath, row+1)
		}
		serviceTime, err := strconv.Atoi(record[colServiceTimeIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "dataSource %s row %d: parse service_time", csvFilePath, row+1)
		}
		processes = append(processes, NewProcess(record[colProcessNameIdx], types.Tick(arrivalTime), types.Tick(serviceTime)))
	}

	ds := &DataSource{
		caseFileName: filepath.Base(csvFilePath),
		processes:    processes,
	}
	// 非法的进程记录在模拟开始前fail fast
	if err := rosterOf(processes).Validate(); err != nil {
		return nil, errors.Wrapf(err, "dataSource %s: invalid roster", csvFilePath)
	}
	return ds, nil
}

func (ds *DataSource) CaseFileName() string {
	return ds.caseFileName
}

func (ds *DataSource) ProcessCount() int {
	return len(ds.processes)
}

// Processes 返回一份全新的进程副本。
func (ds *DataSource) Processes() []*Process {
	processes := make([]*Process, 0, len(ds.processes))
	for _, p := range ds.processes {
		processes = append(processes, p.clone())
	}
	return processes
}

func rosterOf(processes []*Process) types.Roster {
	roster := make(types.Roster, 0, len(processes))
	for _, p := range processes {
		roster = append(roster, p)
	}
	return roster
}
