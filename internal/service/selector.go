package service

import "math/rand"

// MealSelector picks one entry from a fixed meal option list. Selection
// carries no state between calls; implementations must be safe for
// concurrent use because one selector is shared across requests.
type MealSelector interface {
	Pick(options []string) string
}

// randomSelector is the production selector.
type randomSelector struct{}

// NewRandomSelector returns a selector backed by the shared math/rand
// source, which is goroutine safe and self seeded.
func NewRandomSelector() MealSelector {
	return randomSelector{}
}

func (randomSelector) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.Intn(len(options))]
}
