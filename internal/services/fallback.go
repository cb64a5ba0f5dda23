package services

import "strings"

// fallbackRule pairs a keyword set with its canned reply. Rules are checked
// in order and the first rule with any keyword present in the message wins,
// so a message mentioning both flights and hours resolves to flights.
type fallbackRule struct {
	keywords []string
	reply    string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"flight", "flights"},
		reply:    "☕ Coffee Flights start at $9.50+tax — choose up to 4 flavors hot or iced! Available every day. Favorites include Lavender Honey, Teddy Graham, Funky Monkey Mocha, and Blueberry Cobbler Cold Brew.",
	},
	{
		keywords: []string{"hour", "open", "close", "time"},
		reply:    "🕐 We're open Mon–Fri 7AM–6PM, Saturday 8AM–6PM, Sunday 8AM–4PM. See you soon!",
	},
	{
		keywords: []string{"location", "address", "where", "direction"},
		reply:    "📍 4520 S. Hualapai Way, Ste 109, Las Vegas, NV 89147 — Southwest LV near Mountains Edge. Easy parking in the strip mall!",
	},
	{
		keywords: []string{"food", "eat", "bagel", "oatmeal", "bite"},
		reply:    "🥯 Light bites: Toasted Bagels ($6.75) with PB/banana/granola or balsamic/everything seasoning, Apple Chai Oatmeal ($5.50), pastries, and charcuterie snack boxes.",
	},
	{
		keywords: []string{"price", "cost", "how much", "menu"},
		reply:    "💰 Flights from $9.50 | Lattes $4.40–$4.90 | Cold Brews $5.25–$5.45 | Matcha $5.35 | Food $5.50–$6.75. Great value for incredible coffee!",
	},
}

const fallbackDefault = "☕ Hi! I'm the Caffeine Machine AI barista. Ask me about flights, the menu, hours, or location. For direct help: (702) 444-0471 or info@caffeinemachinelv.com"

// FallbackReply answers a chat message from the canned-response table. Used
// whenever no Gemini API key is configured; never touches the network.
func FallbackReply(message string) string {
	t := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.reply
			}
		}
	}
	return fallbackDefault
}
