package periods

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountValidPeriods(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int32
		low    int64
		high   int64
		want   int
	}{
		// 原程序实际输出为 7（注释里写的 4 与算法不符）
		{name: "example 1", deltas: []int32{3, -1, -4, 6, 2}, low: 2, high: 5, want: 7},
		{name: "example 2", deltas: []int32{-2, 3, 1, -5, 4}, low: -1, high: 2, want: 7},
		{name: "empty", deltas: []int32{}, low: 1, high: 5, want: 0},
		{name: "single in range", deltas: []int32{3}, low: 2, high: 5, want: 1},
		{name: "single below", deltas: []int32{1}, low: 2, high: 5, want: 0},
		{name: "single above", deltas: []int32{6}, low: 2, high: 5, want: 0},
		{name: "single on low bound", deltas: []int32{2}, low: 2, high: 5, want: 1},
		{name: "single on high bound", deltas: []int32{5}, low: 2, high: 5, want: 1},
		{name: "ones exact two", deltas: []int32{1, 1, 1}, low: 2, high: 2, want: 2},
		{name: "all negative", deltas: []int32{-1, -2, -3}, low: -3, high: -2, want: 3},
		{name: "all positive", deltas: []int32{1, 2, 3}, low: 3, high: 3, want: 2},
		{name: "degenerate range", deltas: []int32{0, 0}, low: 0, high: 0, want: 3},
		{name: "wide range", deltas: []int32{5, -7, 9, 100}, low: math.MinInt64, high: math.MaxInt64, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountValidPeriods(tt.deltas, tt.low, tt.high)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			fast, err := CountValidPeriodsFast(tt.deltas, tt.low, tt.high)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fast, "mergesort count differs from scan")

			list, err := ValidPeriods(tt.deltas, tt.low, tt.high)
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestCountValidPeriods_InvalidArgument(t *testing.T) {
	counters := map[string]func([]int32, int64, int64) (int, error){
		"scan":      CountValidPeriods,
		"mergesort": CountValidPeriodsFast,
		"list": func(d []int32, low, high int64) (int, error) {
			p, err := ValidPeriods(d, low, high)
			return len(p), err
		},
	}

	for name, count := range counters {
		t.Run(name+"/nil sequence", func(t *testing.T) {
			got, err := count(nil, 1, 5)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
			assert.Contains(t, err.Error(), "cannot be nil")
			assert.Zero(t, got)
		})

		t.Run(name+"/low greater than high", func(t *testing.T) {
			got, err := count([]int32{1, 2, 3}, 5, 2)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), "low threshold cannot be greater than high threshold")
			assert.Zero(t, got)
		})

		t.Run(name+"/empty with inverted range still fails", func(t *testing.T) {
			_, err := count([]int32{}, 5, 2)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestValidPeriods(t *testing.T) {
	got, err := ValidPeriods([]int32{1, 1, 1}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []Period{
		{Start: 0, End: 1, Sum: 2},
		{Start: 1, End: 2, Sum: 2},
	}, got)

	got, err = ValidPeriods([]int32{}, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = ValidPeriods([]int32{9}, 0, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPrefixSums(t *testing.T) {
	assert.Equal(t, []int64{0}, PrefixSums(nil))
	assert.Equal(t, []int64{0, 3, 2, -2, 4, 6}, PrefixSums([]int32{3, -1, -4, 6, 2}))
}

func TestCountValidPeriods_DoesNotMutateInput(t *testing.T) {
	deltas := []int32{5, -3, 8, -1, 0, 2}
	orig := append([]int32(nil), deltas...)

	_, err := CountValidPeriods(deltas, -2, 6)
	require.NoError(t, err)
	_, err = CountValidPeriodsFast(deltas, -2, 6)
	require.NoError(t, err)
	_, err = ValidPeriods(deltas, -2, 6)
	require.NoError(t, err)

	assert.Equal(t, orig, deltas)
}

// 32 位累加会溢出：两段 MaxInt32 之和已超出 int32。
func TestCountValidPeriods_WideAccumulator(t *testing.T) {
	deltas := []int32{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	total := int64(math.MaxInt32) * 3

	got, err := CountValidPeriods(deltas, total, total)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = CountValidPeriods(deltas, int64(math.MaxInt32)*2, int64(math.MaxInt32)*2)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	neg := []int32{math.MinInt32, math.MinInt32}
	got, err = CountValidPeriods(neg, int64(math.MinInt32)*2, int64(math.MinInt32)*2)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestCountValidPeriodsFast_LongAdversarialRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long run in short mode")
	}
	const n = 1 << 20
	deltas := make([]int32, n)
	for i := range deltas {
		deltas[i] = math.MaxInt32
	}
	total := int64(math.MaxInt32) * n

	got, err := CountValidPeriodsFast(deltas, total, total)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRange(t *testing.T) {
	r := Range{Low: -1, High: 2}
	require.NoError(t, r.Validate())
	assert.True(t, r.Contains(-1))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(3))
	assert.False(t, r.Contains(-2))

	err := Range{Low: 3, High: 2}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMaxPeriods(t *testing.T) {
	assert.Equal(t, 0, MaxPeriods(0))
	assert.Equal(t, 1, MaxPeriods(1))
	assert.Equal(t, 15, MaxPeriods(5))
}

func TestAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmScan, alg)

	alg, err = ParseAlgorithm(" MergeSort ")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmMergeSort, alg)

	_, err = ParseAlgorithm("fenwick")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	for _, a := range []Algorithm{AlgorithmScan, AlgorithmMergeSort} {
		got, err := Count(a, []int32{1, 1, 1}, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, got, string(a))
	}

	_, err = Count(Algorithm("bogus"), []int32{1}, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCountValidPeriods_Concurrent(t *testing.T) {
	deltas := []int32{3, -1, -4, 6, 2}
	results := make(chan int, 32)
	for i := 0; i < cap(results); i++ {
		go func() {
			got, _ := CountValidPeriods(deltas, 2, 5)
			results <- got
		}()
	}
	for i := 0; i < cap(results); i++ {
		assert.Equal(t, 7, <-results)
	}
}
