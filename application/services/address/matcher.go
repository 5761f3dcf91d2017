package address

import (
	"strings"

	"kyc.gateman.io/entities"
)

func tokenSet(text string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, token := range strings.Fields(text) {
		tokens[token] = struct{}{}
	}
	return tokens
}

// Score returns the share of a's unique tokens that also appear in b, as an
// integer percentage. The denominator comes from a only, so Score(a, b) and
// Score(b, a) differ when the token sets differ in size.
func Score(a, b string) int {
	aTokens := tokenSet(a)
	bTokens := tokenSet(b)

	shared := 0
	for token := range aTokens {
		if _, ok := bTokens[token]; ok {
			shared++
		}
	}
	return int(float64(shared) / float64(max(len(aTokens), 1)) * 100)
}

// Verify compares two normalized addresses. A missing address on either side
// fails without scoring.
func Verify(identityAddress, documentAddress string, threshold int) *entities.MatchResult {
	if identityAddress == "" || documentAddress == "" {
		return entities.NewScoreResult(0, entities.MatchFailed)
	}

	score := Score(identityAddress, documentAddress)
	if score >= threshold {
		return entities.NewScoreResult(score, entities.MatchVerified)
	}
	return entities.NewScoreResult(score, entities.MatchNotMatched)
}
