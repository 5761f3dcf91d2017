package entities

type MatchStatus string

const (
	MatchVerified       MatchStatus = "VERIFIED"
	MatchNotMatched     MatchStatus = "NOT_MATCHED"
	MatchFailed         MatchStatus = "FAILED"
	MatchReviewRequired MatchStatus = "REVIEW_REQUIRED"
)

// MatchResult is the outcome of a single verification signal. Address and video
// results carry MatchScore, face results carry Distance instead.
type MatchResult struct {
	MatchScore *int        `json:"match_score,omitempty"`
	Distance   *float64    `json:"distance,omitempty"`
	Status     MatchStatus `json:"status"`
}

func NewScoreResult(score int, status MatchStatus) *MatchResult {
	return &MatchResult{MatchScore: &score, Status: status}
}

func NewDistanceResult(distance float64, status MatchStatus) *MatchResult {
	return &MatchResult{Distance: &distance, Status: status}
}

func (result *MatchResult) Verified() bool {
	return result != nil && result.Status == MatchVerified
}
