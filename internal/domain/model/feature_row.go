package model

// FeatureRow is a single model input with an explicit column order:
// numeric features first, then one-hot categorical features.
type FeatureRow struct {
	names   []string
	values  []float64
	index   map[string]int
	numeric int
}

// NewFeatureRow lays out a zeroed row for the given feature lists.
func NewFeatureRow(numeric, categorical []string) *FeatureRow {
	names := make([]string, 0, len(numeric)+len(categorical))
	names = append(names, numeric...)
	names = append(names, categorical...)

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	return &FeatureRow{
		names:   names,
		values:  make([]float64, len(names)),
		index:   index,
		numeric: len(numeric),
	}
}

// SetNumeric stores a value for a numeric column. Unknown names are ignored.
func (r *FeatureRow) SetNumeric(name string, value float64) bool {
	i, ok := r.index[name]
	if !ok || i >= r.numeric {
		return false
	}
	r.values[i] = value
	return true
}

// Activate sets a categorical column to 1. Unknown names are ignored.
func (r *FeatureRow) Activate(name string) bool {
	i, ok := r.index[name]
	if !ok || i < r.numeric {
		return false
	}
	r.values[i] = 1
	return true
}

// Value returns the current value of a column.
func (r *FeatureRow) Value(name string) (float64, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.values[i], true
}

// Names returns column names in row order.
func (r *FeatureRow) Names() []string {
	return r.names
}

// Values returns the row values in column order. The slice is shared with the row.
func (r *FeatureRow) Values() []float64 {
	return r.values
}

// Numeric returns the numeric prefix of the row. The slice is shared with the row.
func (r *FeatureRow) Numeric() []float64 {
	return r.values[:r.numeric]
}

// Len reports the number of columns.
func (r *FeatureRow) Len() int {
	return len(r.values)
}
