package util

import "time"

// AvgDuration 一批耗时的均值，空输入返回0。
func AvgDuration(vs ...time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

// MaxDuration 一批耗时的最大值，空输入返回0。
func MaxDuration(vs ...time.Duration) time.Duration {
	max := time.Duration(0)
	for _, v := range vs {
		if v > max {
			max = v
		}
	}
	return max
}
