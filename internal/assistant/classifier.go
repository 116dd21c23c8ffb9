package assistant

import (
	"strings"

	"smarttaskai/internal/model"
)

// keywordClassifier is the default Classifier: plain substring checks
// on the lowercased input, no model call.
type keywordClassifier struct{}

// NewKeywordClassifier returns the keyword-based Classifier.
func NewKeywordClassifier() Classifier {
	return keywordClassifier{}
}

func (keywordClassifier) Classify(input string) Classification {
	lowered := strings.ToLower(input)

	c := Classification{
		Category: model.CategoryPersonal,
		Priority: model.PriorityMedium,
		Urgency:  model.PriorityMedium,
	}
	if strings.Contains(lowered, "work") {
		c.Category = model.CategoryWork
	}
	if strings.Contains(lowered, "urgent") {
		c.Priority = model.PriorityHigh
		c.Urgency = model.PriorityHigh
	}
	return c
}
