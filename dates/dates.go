// Package dates resolves loosely formatted date expressions into absolute
// local timestamps.
package dates

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Layouts the classifier is instructed to emit. Tried before the natural
// language parser since they are exact.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Normalizer struct {
	w *when.Parser
}

func NewNormalizer() *Normalizer {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Normalizer{
		w: w,
	}
}

// Normalize parses text into a local timestamp relative to base. Weekday
// names and other ambiguous expressions resolve to their nearest future
// occurrence. The zero time means the text held no usable date; callers
// treat that as "no specific time" rather than an error.
func (n *Normalizer) Normalize(text string, base time.Time) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, text, base.Location()); err == nil {
			return ts
		}
	}

	res, err := n.w.Parse(text, base)
	if err != nil || res == nil {
		return time.Time{}
	}
	return res.Time
}
