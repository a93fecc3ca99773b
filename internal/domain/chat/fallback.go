package chat

import "strings"

// degradedMarker prefixes fallback answers produced after a backend failure so
// callers can tell a downgraded reply from a deliberate offline one.
const degradedMarker = "[AI Unavailable] "

// fallbackRule pairs a keyword predicate with its canned answer.
type fallbackRule struct {
	match  func(msg string) bool
	answer string
}

// Rules are checked in order, first match wins.
var fallbackRules = []fallbackRule{
	{
		match:  func(msg string) bool { return strings.Contains(msg, "safe") && strings.Contains(msg, "outside") },
		answer: "It depends on your local AQI. Generally, if AQI is below 100, it is safe.",
	},
	{
		match:  func(msg string) bool { return strings.Contains(msg, "precautions") },
		answer: "Wear a N95 mask if AQI > 200. Avoid outdoor exercise if AQI > 300.",
	},
	{
		match:  func(msg string) bool { return strings.Contains(msg, "aqi") && strings.Contains(msg, "tomorrow") },
		answer: "Tomorrow's AQI is predicted to act similarly to today's trend unless weather changes.",
	},
	{
		match:  func(msg string) bool { return strings.Contains(msg, "jogging") || strings.Contains(msg, "run") },
		answer: "Early morning is usually best, unless smog is high. Check specific AQI.",
	},
}

const fallbackDefault = "I can help with AQI queries. Try asking 'Is it safe outside?' (Chatbot running in offline mode)"

// fallbackAnswer produces the deterministic keyword-matched reply. The
// degraded flag marks answers served because the AI backend errored.
func fallbackAnswer(message string, degraded bool) string {
	prefix := ""
	if degraded {
		prefix = degradedMarker
	}

	msg := strings.ToLower(message)
	for _, rule := range fallbackRules {
		if rule.match(msg) {
			return prefix + rule.answer
		}
	}
	return prefix + fallbackDefault
}
