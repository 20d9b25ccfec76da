package intent

import "strings"

// Topic identifies one of the fixed chatbot answer categories.
type Topic string

const (
	TopicPricing  Topic = "pricing"
	TopicFeatures Topic = "features"
	TopicTrial    Topic = "trial"
	TopicSupport  Topic = "support"
	TopicMobile   Topic = "mobile"
	TopicSetup    Topic = "setup"
	TopicDefault  Topic = "default"
)

// Rule maps a set of trigger keywords to a topic. Rules are evaluated in
// order; the first rule with any matching keyword wins.
type Rule struct {
	Keywords []string
	Topic    Topic
}

// Rules is the canonical keyword dispatch table, shared by the server
// resolver and the widget fallback. Order is significant: a query containing
// both "help" and "pricing" resolves to pricing because that rule comes first.
//
// The features rule triggers on the phrase "what do" rather than the bare
// word "do": a bare "do" would swallow questions like "Do you have a mobile
// app?" before the later rules ever ran.
var Rules = []Rule{
	{Keywords: []string{"price", "pricing", "cost", "plan"}, Topic: TopicPricing},
	{Keywords: []string{"feature", "what do", "offer"}, Topic: TopicFeatures},
	{Keywords: []string{"trial", "free"}, Topic: TopicTrial},
	{Keywords: []string{"support", "help", "contact"}, Topic: TopicSupport},
	{Keywords: []string{"mobile", "app", "phone"}, Topic: TopicMobile},
	{Keywords: []string{"setup", "start", "begin"}, Topic: TopicSetup},
}

// widgetRuleCount limits the widget's fallback to the first rules of the
// shared table (pricing, features, trial). The widget path is a
// last-resort-of-last-resort, so it carries a reduced copy by construction
// instead of a second table that could drift.
const widgetRuleCount = 3

// Match resolves a free-text query to a topic using the full rule table.
// Matching is case-insensitive substring containment.
func Match(query string) Topic {
	return match(query, Rules)
}

// MatchWidget resolves a query using the widget's reduced rule set.
func MatchWidget(query string) Topic {
	return match(query, Rules[:widgetRuleCount])
}

func match(query string, rules []Rule) Topic {
	q := strings.ToLower(query)
	for _, rule := range rules {
		if containsAny(q, rule.Keywords) {
			return rule.Topic
		}
	}
	return TopicDefault
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
