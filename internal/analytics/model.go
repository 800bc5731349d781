package analytics

import (
	"strconv"
	"strings"
)

// Mode selects between the pre-computed statistical presentation and the
// AI-generated free-text insight presentation of the same record.
type Mode string

const (
	ModeManual      Mode = "manual"
	ModeAIGenerated Mode = "ai"
)

// ParseMode defaults to manual for anything unrecognized.
func ParseMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ai", "ai_generated", "aigenerated":
		return ModeAIGenerated
	default:
		return ModeManual
	}
}

// unavailable is the display marker substituted when a metric cannot be
// computed from the record. It is never NaN or an empty string.
const unavailable = "n/a"

// Stat is one display-ready headline or sub-item figure.
type Stat struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Item is one entry of a ranked list inside a section, carrying up to three
// numeric fields beside its label.
type Item struct {
	Label  string `json:"label"`
	Fields []Stat `json:"fields"`
}

// RenderModel is the flat, serializable output for one dashboard section.
// It carries no behavior and is safe to hand to any rendering layer.
type RenderModel struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Badge    string   `json:"badge,omitempty"`
	Stats    []Stat   `json:"stats,omitempty"`
	Items    []Item   `json:"items,omitempty"`
	Visible  int      `json:"visible,omitempty"`
	Insights []string `json:"insights,omitempty"`
}

// TopItems returns the capped prefix of Items for the collapsed view.
// The full list stays on the model, so expanding is a re-slice, not a
// recomputation.
func (m RenderModel) TopItems() []Item {
	if m.Visible > 0 && m.Visible < len(m.Items) {
		return m.Items[:m.Visible]
	}
	return m.Items
}

func statCount(label string, value float64) Stat {
	return Stat{Label: label, Value: value, Display: groupDigits(value)}
}

func statMoney(label string, value float64) Stat {
	if value < 0 {
		return Stat{Label: label, Value: value, Display: "-$" + groupDigits(-value)}
	}
	return Stat{Label: label, Value: value, Display: "$" + groupDigits(value)}
}

func statPercent(label string, value float64) Stat {
	return Stat{Label: label, Value: value, Display: strconv.FormatFloat(value, 'f', 1, 64) + "%"}
}

func statUnavailable(label string) Stat {
	return Stat{Label: label, Display: unavailable}
}

func statGrowth(label string, g Growth) Stat {
	if !g.Defined {
		return statUnavailable(label)
	}
	return statPercent(label, g.Percent)
}

func statText(label, text string) Stat {
	if strings.TrimSpace(text) == "" {
		return statUnavailable(label)
	}
	return Stat{Label: label, Display: text}
}

// groupDigits renders a number with thousands separators, keeping at most
// two decimals and trimming trailing zeros.
func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func itemLabel(rec Record, keys ...string) string {
	for _, key := range keys {
		if s := rec.String(key); s != "" {
			return s
		}
		if n, ok := rec.Number(key); ok {
			return groupDigits(n)
		}
	}
	return unavailable
}
