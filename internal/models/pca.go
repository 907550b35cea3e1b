package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCAResult holds the explained-variance profile of a principal component
// decomposition.
type PCAResult struct {
	Components        int       `json:"components"`
	ExplainedVariance []float64 `json:"explained_variance"` // ratio per component
	Cumulative        []float64 `json:"cumulative"`
}

// PCA decomposes the scaled feature matrix into principal components and
// reports the fraction of total variance each of the first n components
// explains.
func PCA(scaled *mat.Dense, n int) (PCAResult, error) {
	rows, cols := scaled.Dims()
	if rows < 2 {
		return PCAResult{}, fmt.Errorf("not enough observations for PCA: %d", rows)
	}
	if n > cols {
		n = cols
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(scaled, nil); !ok {
		return PCAResult{}, fmt.Errorf("principal component decomposition failed")
	}

	vars := pc.VarsTo(nil)
	var total float64
	for _, v := range vars {
		total += v
	}
	if total == 0 {
		return PCAResult{}, fmt.Errorf("zero total variance")
	}

	result := PCAResult{Components: n}
	cum := 0.0
	for i := 0; i < n; i++ {
		ratio := vars[i] / total
		cum += ratio
		result.ExplainedVariance = append(result.ExplainedVariance, ratio)
		result.Cumulative = append(result.Cumulative, cum)
	}
	return result, nil
}
