// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package assistant

import "strings"

type keywordRule struct {
	keywords []string
	reply    string
}

var genrePicks = []keywordRule{
	{[]string{"action"}, "For action fans, I recommend 'Thunder Strike' - an intense special forces thriller, or 'Digital Phantom' - a cyberpunk action film. Both are highly rated! 💥 Want more action recommendations?"},
	{[]string{"comedy"}, "Looking for laughs? Try 'Office Chaos' - a hilarious sci-fi comedy about AI taking over an office. It's got great reviews and will definitely make you smile! 😂"},
	{[]string{"horror"}, "For a good scare, check out 'The Haunting Hour' - a supernatural horror about a family in a Victorian house. It's genuinely creepy! 👻 Want more horror suggestions?"},
	{[]string{"drama"}, "For powerful drama, I highly recommend 'The Last Symphony' - about a composer losing their hearing. It's emotionally gripping with outstanding performances! 🎭"},
	{[]string{"nollywood"}, "For Nollywood content, 'Lagos Dreams' is excellent - follows a young entrepreneur's journey in Lagos. Great storytelling and authentic Nigerian culture! 🇳🇬"},
}

const generalPicks = "Based on popular picks, I recommend 'Quantum Paradox' (sci-fi thriller), 'Love in Paris' (romance), or 'Mystic Realms' (animated fantasy). What genre interests you most? 🎬"

var recommendKeywords = []string{"recommend", "suggest", "what should i watch"}

// topicRules are checked in order after the recommendation keywords.
var topicRules = []keywordRule{
	{
		[]string{"subscription", "account", "billing"},
		"I can help with your account! 💳 You can manage your subscription in Account Settings. For billing issues, check your payment method or contact support. Need help with a specific account feature?",
	},
	{
		[]string{"not working", "error", "problem", "buffering"},
		"Sorry you're having technical issues! 🔧 Try refreshing the page, checking your internet connection, or clearing your browser cache. For persistent problems, try switching to a different device or contact our support team.",
	},
	{
		[]string{"find", "search", "looking for"},
		"I can help you find content! 🔍 Use the search bar to find specific titles, or browse by genre. Try searching for actors, directors, or keywords. What type of content are you looking for?",
	},
	{
		[]string{"player", "video", "controls"},
		"Here are some video player tips! 🎬 Use spacebar to play/pause, arrow keys to seek, M to mute, and F for fullscreen. You can also adjust playback speed and quality in the settings menu. Having trouble with a specific feature?",
	},
	{
		[]string{"quality", "streaming", "slow"},
		"For better streaming quality: 📺 Check your internet speed (we recommend 25+ Mbps for 4K), try lowering video quality in player settings, close other apps using bandwidth, or restart your router. Premium users get priority streaming!",
	},
}

const greeting = "Hello! I'm Francilia AI, your streaming assistant. 🎬 I can help you find great movies and shows, answer account questions, or provide technical support. What can I help you with today?"

// FallbackReply returns the keyword response for message.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, recommendKeywords) {
		for _, rule := range genrePicks {
			if containsAny(lower, rule.keywords) {
				return rule.reply
			}
		}
		return generalPicks
	}
	for _, rule := range topicRules {
		if containsAny(lower, rule.keywords) {
			return rule.reply
		}
	}
	return greeting
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
