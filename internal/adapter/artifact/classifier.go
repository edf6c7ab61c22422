package artifact

import "fmt"

// Classifier predicts a class code for a single feature row.
type Classifier interface {
	Predict(row []float64) (int, error)
}

const (
	kindForest = "forest"
	kindLinear = "linear"
)

type treeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

type decisionTree struct {
	Nodes []treeNode `json:"nodes"`
}

type modelFile struct {
	Kind      string         `json:"kind"`
	Classes   []int          `json:"classes"`
	Trees     []decisionTree `json:"trees"`
	Coef      [][]float64    `json:"coef"`
	Intercept []float64      `json:"intercept"`
}

func (m *modelFile) classifier(width int) (Classifier, error) {
	if len(m.Classes) == 0 {
		return nil, fmt.Errorf("%w: model declares no classes", ErrInvalidArtifact)
	}

	switch m.Kind {
	case kindForest:
		f := &Forest{classes: m.Classes, trees: m.Trees}
		if err := f.validate(width); err != nil {
			return nil, err
		}
		return f, nil
	case kindLinear:
		l := &Linear{classes: m.Classes, coef: m.Coef, intercept: m.Intercept}
		if err := l.validate(width); err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: unknown model kind %q", ErrInvalidArtifact, m.Kind)
	}
}

// Forest is an ensemble of decision trees voting with averaged leaf probabilities.
type Forest struct {
	classes []int
	trees   []decisionTree
}

func (f *Forest) validate(width int) error {
	if len(f.trees) == 0 {
		return fmt.Errorf("%w: forest has no trees", ErrInvalidArtifact)
	}
	for ti, tree := range f.trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d is empty", ErrInvalidArtifact, ti)
		}
		for ni, node := range tree.Nodes {
			if node.Left < 0 {
				if len(node.Value) != len(f.classes) {
					return fmt.Errorf("%w: tree %d leaf %d has %d values for %d classes", ErrInvalidArtifact, ti, ni, len(node.Value), len(f.classes))
				}
				continue
			}
			if node.Feature < 0 || node.Feature >= width {
				return fmt.Errorf("%w: tree %d node %d splits on feature %d outside row of %d", ErrInvalidArtifact, ti, ni, node.Feature, width)
			}
			if node.Left >= len(tree.Nodes) || node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("%w: tree %d node %d has child out of range", ErrInvalidArtifact, ti, ni)
			}
		}
	}
	return nil
}

// Predict returns the class with the highest averaged probability, preferring the lowest index on ties.
func (f *Forest) Predict(row []float64) (int, error) {
	votes := make([]float64, len(f.classes))
	for ti, tree := range f.trees {
		leaf, err := tree.leaf(row)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", ti, err)
		}
		var total float64
		for _, v := range leaf.Value {
			total += v
		}
		if total == 0 {
			continue
		}
		for i, v := range leaf.Value {
			votes[i] += v / total
		}
	}
	return f.classes[argmax(votes)], nil
}

func (t *decisionTree) leaf(row []float64) (*treeNode, error) {
	idx := 0
	// a valid tree reaches a leaf in at most len(Nodes) steps
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := &t.Nodes[idx]
		if node.Left < 0 {
			return node, nil
		}
		if node.Feature >= len(row) {
			return nil, fmt.Errorf("%w: feature %d outside row of %d", ErrInvalidArtifact, node.Feature, len(row))
		}
		if row[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return nil, fmt.Errorf("%w: tree contains a cycle", ErrInvalidArtifact)
}

// Linear is a multinomial linear model scored as coef·x + intercept.
type Linear struct {
	classes   []int
	coef      [][]float64
	intercept []float64
}

func (l *Linear) validate(width int) error {
	if len(l.coef) != len(l.classes) || len(l.intercept) != len(l.classes) {
		return fmt.Errorf("%w: linear model has %d coefficient rows and %d intercepts for %d classes", ErrInvalidArtifact, len(l.coef), len(l.intercept), len(l.classes))
	}
	for i, row := range l.coef {
		if len(row) != width {
			return fmt.Errorf("%w: coefficient row %d has %d entries for row of %d", ErrInvalidArtifact, i, len(row), width)
		}
	}
	return nil
}

// Predict returns the class with the highest linear score.
func (l *Linear) Predict(row []float64) (int, error) {
	scores := make([]float64, len(l.classes))
	for k, weights := range l.coef {
		if len(weights) != len(row) {
			return 0, fmt.Errorf("%w: expected %d features, got %d", ErrInvalidArtifact, len(weights), len(row))
		}
		score := l.intercept[k]
		for i, w := range weights {
			score += w * row[i]
		}
		scores[k] = score
	}
	return l.classes[argmax(scores)], nil
}

func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
