package scoring

// Keyword tables for the substring matcher. Matching is case-insensitive
// against the offering's combined name/description/category/benefit text;
// partial stems ("schedul", "automat") are intentional.

var painPointKeywords = map[string][]string{
	"missed-calls":      {"call", "phone", "voice", "hotline"},
	"appointment-chaos": {"appointment", "booking", "schedul", "calendar", "reservation"},
	"slow-quotes":       {"quote", "estimate", "proposal"},
	"after-hours":       {"24/7", "after-hours", "out-of-hours", "around the clock", "day and night"},
	"overloaded-staff":  {"routine", "automat", "staff", "assistant", "concierge"},
	"manual-data-entry": {"data entry", "crm", "form", "transcri", "re-typing"},
}

var contactMethodKeywords = map[string][]string{
	"phone":    {"call", "phone", "voice", "line"},
	"email":    {"email", "inbox", "mail"},
	"whatsapp": {"whatsapp", "chat", "messag"},
	"website":  {"website", "online", "portal"},
	"social":   {"social", "instagram", "facebook", "review"},
}

var urgencyKeywords = []string{"24/7", "instant", "immediate", "real-time", "never miss", "around the clock"}
