package util

import (
	"fmt"
	"strconv"
	"strings"
)

func StringSliceIndexOf(slice []string, target string) int {
	for i, s := range slice {
		if s == target {
			return i
		}
	}
	return -1
}

func StringSliceJoinWith(slice []string, s string) string {
	return fmt.Sprintf("[%s]", strings.Join(slice, s))
}

func IntSliceJoinWith(slice []int, s string) string {
	stringSlice := make([]string, 0, len(slice))
	for _, elem := range slice {
		stringSlice = append(stringSlice, strconv.Itoa(elem))
	}
	return StringSliceJoinWith(stringSlice, s)
}
