package valueobject

// Recommendation is the scoring verdict, a pure function of the final score.
type Recommendation string

const (
	RecommendationApprove      Recommendation = "APPROVE"
	RecommendationManualReview Recommendation = "MANUAL_REVIEW"
	RecommendationReject       Recommendation = "REJECT"
)

// RecommendationForScore maps a score to its verdict. The 50 boundary is
// inclusive for manual review.
func RecommendationForScore(score int) Recommendation {
	switch {
	case score >= 75:
		return RecommendationApprove
	case score >= 50:
		return RecommendationManualReview
	default:
		return RecommendationReject
	}
}

// RiskLevel classifies the same score bands for reporting.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskForScore maps a score to its risk band.
func RiskForScore(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskLow
	case score >= 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}
