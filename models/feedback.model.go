package models

import "gorm.io/gorm"

const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// FeedbackCategories is the fixed set of product categories a feedback
// record may be filed under.
var FeedbackCategories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Furniture",
	"Grocery",
	"Health & Beauty",
	"Toys",
	"Sports Equipment",
	"Automobile",
	"Other",
}

// IsValidCategory reports whether category is one of FeedbackCategories.
func IsValidCategory(category string) bool {
	for _, c := range FeedbackCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Feedback struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	User         User   `gorm:"foreignKey:UserID" json:"-"`
	Category     string `gorm:"size:50;not null" json:"category"`
	ProductName  string `gorm:"size:255;not null" json:"product_name"`
	FeedbackText string `gorm:"type:text;not null" json:"feedback_text"`
	Sentiment    string `gorm:"size:50;default:'Neutral'" json:"sentiment"`
}
