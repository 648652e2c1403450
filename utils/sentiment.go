package utils

import (
	"pfs/models"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// AnalyzeSentiment derives a sentiment label from free text using the VADER
// lexicon. Positive compound polarity maps to Positive, negative to Negative
// and an exact zero (including empty text) to Neutral. It never fails.
func AnalyzeSentiment(text string) string {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	switch {
	case score.Compound > 0:
		return models.SentimentPositive
	case score.Compound < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
