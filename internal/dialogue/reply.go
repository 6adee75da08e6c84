package dialogue

// Fallback is the reply for any line that is not a keyword.
const Fallback = "..."

// PlayerLabel prefixes the player's lines wherever a conversation is printed.
const PlayerLabel = "YOU"

var replies = map[Mood]map[Keyword]string{
	MoodAngry: {
		KeywordHello: "No more talks!",
		KeywordBye:   "Get out of my SIGHT fool!",
		KeywordSorry: "No more chats...",
	},
	MoodHappy: {
		KeywordHello: "Hello my friend",
		KeywordBye:   "Farewell friend...",
		KeywordSorry: "No more apologies!",
	},
	MoodNeutral: {
		KeywordHello: "Hello traveller",
		KeywordBye:   "Goodbye traveller...",
		KeywordSorry: "It's alright!",
	},
}

// ReplyFor returns the NPC's canned answer to line in the given mood.
// The line is compared to the keywords case-insensitively and as a whole.
func ReplyFor(line string, mood Mood) string {
	kw, ok := MatchKeyword(line)
	if !ok {
		return Fallback
	}
	if reply, ok := replies[mood][kw]; ok {
		return reply
	}
	return Fallback
}

// MatchKeyword reports which keyword line equals after case folding.
func MatchKeyword(line string) (Keyword, bool) {
	folded := Fold(line)
	for _, kw := range Keywords {
		if folded == string(kw) {
			return kw, true
		}
	}
	return "", false
}
