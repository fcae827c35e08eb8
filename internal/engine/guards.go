package engine

import (
	"math"
	"time"
)

// Clamp0To100 百分比类字段统一收敛到 [0,100]，上游数据不做信任
func Clamp0To100(v float64) float64 {
	return Clamp(v, 0, 100)
}

// Clamp NaN 视为下界
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SafeDivide 分母为 0 时按 1 计算
func SafeDivide(num, den float64) float64 {
	if den == 0 || math.IsNaN(den) {
		den = 1
	}
	return num / den
}

// finite 将 NaN/Inf 归零，对应缺失的数值字段
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// startOfDay 截断到当天零点，保留时区
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
