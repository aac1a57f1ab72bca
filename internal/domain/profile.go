package domain

// Affirmed is the positive value of the yes/no intake questions.
const Affirmed = "yes"

// Profile is the biometric/lifestyle intake for one plan request.
// It is validated at the API boundary, never persisted, and discarded
// once the response is serialized.
type Profile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`    // years
	Gender   string  `json:"gender"` // "male" or anything else
	Weight   float64 `json:"weight"` // kilograms
	Height   float64 `json:"height"` // centimeters
	Smoking  string  `json:"smoking"`
	Drinking string  `json:"drinking"`
}

// Helper methods for the yes/no answers
func (p *Profile) Smokes() bool {
	return p.Smoking == Affirmed
}

func (p *Profile) Drinks() bool {
	return p.Drinking == Affirmed
}
