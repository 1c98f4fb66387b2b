package periods

import "strings"

// Algorithm 计数算法选择。
type Algorithm string

const (
	// AlgorithmScan 双重循环穷举，O(n²)，参考实现
	AlgorithmScan Algorithm = "scan"
	// AlgorithmMergeSort 前缀和归并计数，O(n log n)
	AlgorithmMergeSort Algorithm = "mergesort"
)

// ParseAlgorithm 解析算法名（不区分大小写，空字符串视为 scan）。
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(AlgorithmScan):
		return AlgorithmScan, nil
	case string(AlgorithmMergeSort):
		return AlgorithmMergeSort, nil
	default:
		return "", invalidArgumentf("unknown algorithm %q (supported: scan, mergesort)", s)
	}
}

// Count 按指定算法计数。
func Count(alg Algorithm, deltas []int32, low, high int64) (int, error) {
	switch alg {
	case AlgorithmScan:
		return CountValidPeriods(deltas, low, high)
	case AlgorithmMergeSort:
		return CountValidPeriodsFast(deltas, low, high)
	default:
		return 0, invalidArgumentf("unknown algorithm %q", string(alg))
	}
}
