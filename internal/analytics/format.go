package analytics

import (
	"fmt"
	"strconv"
	"strings"
)

// 数值格式化属于展示层,与聚合计算分离,
// 核心计算结果始终以精确数值参与测试

// Currency 货币缩写格式: $8.4M / $142K / $2.10
func Currency(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%s$%.1fM", neg, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.0fK", neg, v/1e3)
	default:
		return fmt.Sprintf("%s$%.2f", neg, v)
	}
}

// Percent 百分比格式,一位小数: 94.2%
func Percent(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

// Thousands 为整数插入千位分隔符: 125000 -> 125,000
func Thousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
