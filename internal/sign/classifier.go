package sign

import (
	"time"

	"github.com/ayusman/signspeak/internal/feature"
)

// NoSign is the SignID of a detection that matched no rule.
const NoSign = -1

// AmbiguousThumbScale is applied to the confidence of thumb-sensitive
// rules when the thumb direction fell in the borderline band.
const AmbiguousThumbScale = 0.8

// Detection is the classifier's per-frame output: a sign (or NoSign),
// a confidence in [0,1], and the frame timestamp. Ephemeral; it feeds
// the sentence stabilizer and is then discarded.
type Detection struct {
	SignID     int       `json:"sign_id"`
	Confidence float64   `json:"confidence"`
	At         time.Time `json:"-"`
}

// None returns a no-sign detection stamped at t.
func None(t time.Time) Detection {
	return Detection{SignID: NoSign, Confidence: 0, At: t}
}

// Classifier maps a finger-state vector to a sign by walking an ordered
// rule table. It holds no history: the same input always yields the
// same output.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a Classifier over the built-in rule table.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules)
}

// NewClassifierWithRules returns a Classifier over a custom rule table,
// evaluated in the given order.
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the sign and confidence of the first matching rule,
// or (NoSign, 0) when no rule matches. Thumb-sensitive matches with a
// borderline thumb direction get their confidence scaled down.
func (c *Classifier) Classify(s feature.State, m feature.Metrics) (int, float64) {
	for _, r := range c.rules {
		if !r.Match(s, m) {
			continue
		}
		conf := r.Confidence
		if r.ThumbSensitive && s.ThumbBorderline {
			conf *= AmbiguousThumbScale
		}
		return r.SignID, conf
	}
	return NoSign, 0
}
