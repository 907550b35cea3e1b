package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"quakecli/internal/dataset"
)

// RegressionResult holds the fit and error metrics for a linear model
// predicting magnitude.
type RegressionResult struct {
	Predictors   []string  `json:"predictors"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	R2           float64   `json:"r2"`
	RMSE         float64   `json:"rmse"`
	MAE          float64   `json:"mae"`
	N            int       `json:"n"`
}

// Equation renders the fitted model as a human-readable formula
func (r RegressionResult) Equation() string {
	s := "mag ="
	for i, p := range r.Predictors {
		s += fmt.Sprintf(" %+.6f*%s", r.Coefficients[i], p)
	}
	return s + fmt.Sprintf(" %+.4f", r.Intercept)
}

// SimpleRegression fits magnitude against depth by ordinary least squares
func SimpleRegression(events []dataset.Event) (RegressionResult, error) {
	var depths, mags []float64
	for _, e := range events {
		if e.HasMag() && e.HasDepth() {
			depths = append(depths, e.Depth)
			mags = append(mags, e.Mag)
		}
	}
	if len(mags) < 2 {
		return RegressionResult{}, fmt.Errorf("not enough observations for regression: %d", len(mags))
	}

	alpha, beta := stat.LinearRegression(depths, mags, nil, false)

	predicted := make([]float64, len(mags))
	for i, d := range depths {
		predicted[i] = alpha + beta*d
	}

	result := RegressionResult{
		Predictors:   []string{"depth"},
		Coefficients: []float64{beta},
		Intercept:    alpha,
		N:            len(mags),
	}
	result.R2, result.RMSE, result.MAE = fitMetrics(mags, predicted)
	return result, nil
}

// MultipleRegression fits magnitude against depth, latitude and longitude
// by least squares.
func MultipleRegression(events []dataset.Event) (RegressionResult, error) {
	var rows []float64
	var mags []float64
	for _, e := range events {
		if !e.HasMag() || !e.HasDepth() || !e.HasCoordinates() {
			continue
		}
		rows = append(rows, 1, e.Depth, e.Latitude, e.Longitude)
		mags = append(mags, e.Mag)
	}
	n := len(mags)
	if n < 4 {
		return RegressionResult{}, fmt.Errorf("not enough observations for regression: %d", n)
	}

	a := mat.NewDense(n, 4, rows)
	b := mat.NewDense(n, 1, mags)

	var coef mat.Dense
	if err := coef.Solve(a, b); err != nil {
		return RegressionResult{}, fmt.Errorf("least squares solve: %w", err)
	}

	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		var y float64
		for j := 0; j < 4; j++ {
			y += a.At(i, j) * coef.At(j, 0)
		}
		predicted[i] = y
	}

	result := RegressionResult{
		Predictors:   []string{"depth", "latitude", "longitude"},
		Coefficients: []float64{coef.At(1, 0), coef.At(2, 0), coef.At(3, 0)},
		Intercept:    coef.At(0, 0),
		N:            n,
	}
	result.R2, result.RMSE, result.MAE = fitMetrics(mags, predicted)
	return result, nil
}

// fitMetrics computes R², RMSE and MAE for observed vs predicted values
func fitMetrics(observed, predicted []float64) (r2, rmse, mae float64) {
	mean := stat.Mean(observed, nil)

	var ssRes, ssTot, absSum float64
	for i, y := range observed {
		res := y - predicted[i]
		ssRes += res * res
		ssTot += (y - mean) * (y - mean)
		absSum += math.Abs(res)
	}

	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	n := float64(len(observed))
	rmse = math.Sqrt(ssRes / n)
	mae = absSum / n
	return r2, rmse, mae
}
