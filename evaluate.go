package tweetprep

import (
	"fmt"

	"github.com/bsm/mlmetrics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix counts (true, predicted) pairs into a 3×3 matrix whose rows
// and columns follow Classes: negative, neutral, positive.
func ConfusionMatrix(yTrue, yPred []Emotion) (*mat.Dense, error) {
	if err := checkPredictions(yTrue, yPred); err != nil {
		return nil, err
	}
	n := len(Classes)
	cm := mat.NewDense(n, n, nil)
	for i := range yTrue {
		t, p := int(yTrue[i]), int(yPred[i])
		cm.Set(t, p, cm.At(t, p)+1)
	}
	return cm, nil
}

// NormalizeRows returns a copy of m with every row scaled to sum to 1. Rows
// that sum to zero stay zero.
func NormalizeRows(m mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(m)
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		}
	}
	return out
}

// ClassMetrics holds the per-class scores of a Report.
type ClassMetrics struct {
	Class     Emotion
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// A Report summarizes predictions against the truth.
type Report struct {
	Accuracy float64
	Classes  []ClassMetrics
}

// Evaluate scores yPred against yTrue.
func Evaluate(yTrue, yPred []Emotion) (Report, error) {
	if err := checkPredictions(yTrue, yPred); err != nil {
		return Report{}, err
	}

	cm := mlmetrics.NewConfusionMatrix()
	support := make([]int, len(Classes))
	for i := range yTrue {
		cm.Observe(int(yTrue[i]), int(yPred[i]))
		support[yTrue[i]]++
	}

	report := Report{Accuracy: cm.Accuracy()}
	for _, c := range Classes {
		report.Classes = append(report.Classes, ClassMetrics{
			Class:     c,
			Precision: cm.Precision(int(c)),
			Recall:    cm.Sensitivity(int(c)),
			F1:        cm.F1(int(c)),
			Support:   support[c],
		})
	}
	return report, nil
}

func checkPredictions(yTrue, yPred []Emotion) error {
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("%w: %d true labels, %d predictions", ErrLengthMismatch, len(yTrue), len(yPred))
	}
	for i := range yTrue {
		if !yTrue[i].Valid() {
			return &LabelError{Label: yTrue[i].String(), Kind: "true class"}
		}
		if !yPred[i].Valid() {
			return &LabelError{Label: yPred[i].String(), Kind: "predicted class"}
		}
	}
	return nil
}

// A History holds per-epoch training metrics. Nil series are absent.
type History struct {
	Accuracy    []float64 `json:"acc,omitempty" yaml:"acc,omitempty"`
	ValAccuracy []float64 `json:"val_acc,omitempty" yaml:"val_acc,omitempty"`
	Loss        []float64 `json:"loss,omitempty" yaml:"loss,omitempty"`
	ValLoss     []float64 `json:"val_loss,omitempty" yaml:"val_loss,omitempty"`
}
