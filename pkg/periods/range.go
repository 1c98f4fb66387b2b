package periods

// Range 闭区间阈值 [Low, High]。
type Range struct {
	Low  int64
	High int64
}

// Validate 校验 Low <= High。
func (r Range) Validate() error {
	if r.Low > r.High {
		return invalidArgumentf("low threshold cannot be greater than high threshold (low=%d, high=%d)", r.Low, r.High)
	}
	return nil
}

// Contains 两端都包含。
func (r Range) Contains(sum int64) bool {
	return sum >= r.Low && sum <= r.High
}

// MaxPeriods 长度为 n 的序列的连续子区间总数 n(n+1)/2。
func MaxPeriods(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}
