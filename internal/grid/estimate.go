package grid

import "math"

// ColumnEstimator reports how many columns the items currently occupy.
type ColumnEstimator[T any] func(items []T) int

// minEstimateItems is the smallest list the offset heuristic trusts.
const minEstimateItems = 4

// EstimateColumns returns an estimator that assumes uniformly sized items
// flowing left to right, top to bottom. The first item whose rounded offset
// equals the first item's starts the second row; its index is the column
// count. Lists shorter than four items, or with no wrap, count as one column.
func EstimateColumns[T any](offset func(T) float64) ColumnEstimator[T] {
	return func(items []T) int {
		if len(items) < minEstimateItems {
			return 1
		}
		x := math.Round(offset(items[0]))
		for i := 1; i < len(items); i++ {
			if math.Round(offset(items[i])) == x {
				return i
			}
		}
		return 1
	}
}

// FixedColumns returns an estimator that always reports n columns.
func FixedColumns[T any](n int) ColumnEstimator[T] {
	return func([]T) int { return n }
}
