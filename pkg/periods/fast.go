package periods

// CountValidPeriodsFast 与 CountValidPeriods 结果完全一致，时间 O(n log n)。
//
// 对前缀和做归并排序：合并左右两半之前，对左半每个 prefix[i]，
// 在右半（已排序）里统计满足 low <= prefix[j]-prefix[i] <= high 的 j 个数。
// 左半升序时两个游标单调不减，所以每层是线性的。
func CountValidPeriodsFast(deltas []int32, low, high int64) (int, error) {
	r, err := validate(deltas, low, high)
	if err != nil {
		return 0, err
	}
	if len(deltas) == 0 {
		return 0, nil
	}

	prefix := PrefixSums(deltas)
	buf := make([]int64, len(prefix))
	return mergeCount(prefix, buf, r), nil
}

func mergeCount(sums, buf []int64, r Range) int {
	n := len(sums)
	if n <= 1 {
		return 0
	}
	mid := n / 2
	count := mergeCount(sums[:mid], buf[:mid], r) + mergeCount(sums[mid:], buf[mid:], r)

	lo, hi := mid, mid
	for i := 0; i < mid; i++ {
		for lo < n && sums[lo]-sums[i] < r.Low {
			lo++
		}
		for hi < n && sums[hi]-sums[i] <= r.High {
			hi++
		}
		count += hi - lo
	}

	// merge
	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if sums[i] <= sums[j] {
			buf[k] = sums[i]
			i++
		} else {
			buf[k] = sums[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], sums[i:mid])
	copy(buf[k:], sums[j:n])
	copy(sums, buf[:n])
	return count
}
