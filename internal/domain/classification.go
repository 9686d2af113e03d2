package domain

// ConfidenceLevel is the derived band of a numeric confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ClassificationResult is the outcome of classifying a single transaction.
type ClassificationResult struct {
	Category        CategoryType    `json:"category"`
	Confidence      float64         `json:"confidence"`
	ConfidenceLevel ConfidenceLevel `json:"confidenceLevel"`
	Reason          string          `json:"reason"`
}
