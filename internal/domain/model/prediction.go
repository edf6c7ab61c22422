package model

import "fmt"

// Credit score class codes produced by the classifier.
const (
	CreditScorePoor     = 0
	CreditScoreStandard = 1
	CreditScoreGood     = 2
)

// Disclaimer is appended to every prediction result.
const Disclaimer = "Note: This result is generated by a trained predictive model and may not always reflect the actual outcome. It is recommended to use this as a supplementary insight alongside thorough expert analysis."

var scoreLabels = map[int]string{
	CreditScorePoor:     "Poor",
	CreditScoreStandard: "Standard",
	CreditScoreGood:     "Good",
}

var scoreAdvice = map[int][]string{
	CreditScoreGood: {
		"✅ This customer has good credit score. Likely to repay loans on time.",
		"💡 Consider offering premium financial products.",
	},
	CreditScoreStandard: {
		"⚠️ This customer has standard credit score. Monitor their payment patterns closely.",
		"💡 Offer limited credit with stricter repayment terms.",
	},
	CreditScorePoor: {
		"❌ Poor credit score detected. High chance of loan default.",
		"💡 Recommend requiring collateral or rejecting high-value credit.",
	},
}

// Prediction is the rendered outcome of a single scoring request.
type Prediction struct {
	Code     int
	Label    string
	Text     string
	Insights []string
}

// ScoreLabel maps a class code to its display label.
func ScoreLabel(code int) string {
	if label, ok := scoreLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// NewPrediction builds the display text and ordered insights for a class code.
func NewPrediction(code int) Prediction {
	label := ScoreLabel(code)
	advice := scoreAdvice[code]
	insights := make([]string, 0, len(advice)+1)
	insights = append(insights, advice...)
	insights = append(insights, Disclaimer)
	return Prediction{
		Code:     code,
		Label:    label,
		Text:     fmt.Sprintf("Predicted Credit Score: %s", label),
		Insights: insights,
	}
}

// PredictionCategories are the dropdown fields of the prediction form, in display order.
var PredictionCategories = []string{"Month", "Occupation", "Payment_of_Min_Amount", "Payment_Behaviour"}

// CategoryOptions lists the selectable values of one dropdown.
type CategoryOptions struct {
	Name   string
	Values []string
}

// PredictionForm describes the inputs the loaded model accepts.
type PredictionForm struct {
	Numerical  []string
	Categories []CategoryOptions
}

// PredictionResult is a prediction plus the numeric feature names it was computed from.
type PredictionResult struct {
	Prediction Prediction
	Numerical  []string
}
