package analytics

// Aggregate 一个分组的汇总结果
type Aggregate struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"` // 占总量比例,由 WithShares 填充
}

// GroupSum 按 key 分组求和
// 结果顺序为分组键在输入中首次出现的顺序,不得重新排序,
// 以保证图表图例顺序稳定
func GroupSum[T any](items []T, key func(T) string, value func(T) float64) []Aggregate {
	index := make(map[string]int, len(items))
	groups := make([]Aggregate, 0)

	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Aggregate{Key: k})
		}
		groups[i].Value += value(item)
		groups[i].Count++
	}

	return groups
}

// GroupCount 按 key 分组计数
func GroupCount[T any](items []T, key func(T) string) []Aggregate {
	return GroupSum(items, key, func(T) float64 { return 1 })
}

// GroupWeightedAvg 按 key 分组计算加权平均
// 权重和为 0 的分组结果为 0,不产生 NaN
func GroupWeightedAvg[T any](items []T, key func(T) string, value func(T) float64, weight func(T) float64) []Aggregate {
	weighted := GroupSum(items, key, func(t T) float64 { return value(t) * weight(t) })
	weights := GroupSum(items, key, weight)

	for i := range weighted {
		if weights[i].Value == 0 {
			weighted[i].Value = 0
			continue
		}
		weighted[i].Value /= weights[i].Value
	}

	return weighted
}

// WithShares 为每个分组填充占总量比例
// 总量为 0 时所有比例为 0,绝不向上层传播 NaN/Inf
func WithShares(groups []Aggregate) []Aggregate {
	var total float64
	for _, g := range groups {
		total += g.Value
	}

	out := make([]Aggregate, len(groups))
	copy(out, groups)
	for i := range out {
		if total == 0 {
			out[i].Share = 0
			continue
		}
		out[i].Share = out[i].Value / total
	}

	return out
}

// Shares 计算每个值占总和的比例
// 总和为 0 时全部返回 0
func Shares(values []float64) []float64 {
	var total float64
	for _, v := range values {
		total += v
	}

	out := make([]float64, len(values))
	if total == 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / total
	}

	return out
}

// Sum 求和
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Avg 算术平均,空输入返回 0
func Avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// MinMax 返回最小值和最大值,空输入返回 (0, 0)
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
