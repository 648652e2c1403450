package utils

import (
	"testing"

	"pfs/models"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"positive", "I love this product, it works great", models.SentimentPositive},
		{"negative", "This product is terrible", models.SentimentNegative},
		{"negative multiword", "Broke after a week, awful build quality and a waste of money", models.SentimentNegative},
		{"neutral", "The package arrived on Tuesday", models.SentimentNeutral},
		{"empty", "", models.SentimentNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnalyzeSentiment(tc.text))
		})
	}
}

func TestAnalyzeSentimentIsDeterministic(t *testing.T) {
	text := "Surprisingly good value even if the manual is confusing"
	first := AnalyzeSentiment(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AnalyzeSentiment(text))
	}
}
