// Package periods 统计温度变化序列中“累计变化落在阈值区间内”的连续时间段数量。
//
// 说明：
// - 元素为 int32，前缀和统一用 int64 累加，长串同号变化不会溢出。
// - 所有函数都是纯函数：不修改入参，不持有全局状态，可并发调用。
package periods

// Period 一个连续时间段 [Start, End]（0 起始，闭区间）及其累计变化。
type Period struct {
	Start int
	End   int
	Sum   int64
}

// validate 在任何计算之前执行，nil 序列与倒置区间直接返回错误。
func validate(deltas []int32, low, high int64) (Range, error) {
	if deltas == nil {
		return Range{}, invalidArgument("temperature changes sequence cannot be nil")
	}
	r := Range{Low: low, High: high}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// PrefixSums 构建长度为 n+1 的前缀和表：prefix[0]=0，prefix[i]=prefix[i-1]+deltas[i-1]。
func PrefixSums(deltas []int32) []int64 {
	prefix := make([]int64, len(deltas)+1)
	for i := 1; i <= len(deltas); i++ {
		prefix[i] = prefix[i-1] + int64(deltas[i-1])
	}
	return prefix
}

// CountValidPeriods 统计累计变化落在 [low, high] 内的连续时间段数量。
//
// 穷举所有 (start, end)，区间和 = prefix[end+1] - prefix[start]。
// 时间 O(n²)，空间 O(n)。
func CountValidPeriods(deltas []int32, low, high int64) (int, error) {
	r, err := validate(deltas, low, high)
	if err != nil {
		return 0, err
	}
	n := len(deltas)
	if n == 0 {
		return 0, nil
	}

	prefix := PrefixSums(deltas)
	count := 0
	for start := 0; start < n; start++ {
		for end := start; end < n; end++ {
			if r.Contains(prefix[end+1] - prefix[start]) {
				count++
			}
		}
	}
	return count, nil
}

// ValidPeriods 返回所有满足条件的时间段，按 (Start, End) 升序。
// len(结果) 与 CountValidPeriods 相同。
func ValidPeriods(deltas []int32, low, high int64) ([]Period, error) {
	r, err := validate(deltas, low, high)
	if err != nil {
		return nil, err
	}
	n := len(deltas)
	if n == 0 {
		return []Period{}, nil
	}

	prefix := PrefixSums(deltas)
	var out []Period
	for start := 0; start < n; start++ {
		for end := start; end < n; end++ {
			sum := prefix[end+1] - prefix[start]
			if r.Contains(sum) {
				out = append(out, Period{Start: start, End: end, Sum: sum})
			}
		}
	}
	if out == nil {
		out = []Period{}
	}
	return out, nil
}
