// Package dialogue implements the NPC chat state: a typed line buffer, the
// committed history, keyword counters and the mood they select.
package dialogue

// Mood is the NPC's attitude, derived from keyword counts.
type Mood int

const (
	MoodAngry Mood = iota
	MoodHappy
	MoodNeutral
)

// String returns the lowercase mood name.
func (m Mood) String() string {
	switch m {
	case MoodAngry:
		return "angry"
	case MoodHappy:
		return "happy"
	case MoodNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Keyword is a line the NPC recognises.
type Keyword string

const (
	KeywordHello Keyword = "hello"
	KeywordBye   Keyword = "bye"
	KeywordSorry Keyword = "sorry"
)

// Keywords lists the recognised keywords in counter order.
var Keywords = []Keyword{KeywordHello, KeywordBye, KeywordSorry}

// moodFor maps the dominant keyword to the mood it selects.
var moodFor = map[Keyword]Mood{
	KeywordHello: MoodHappy,
	KeywordBye:   MoodAngry,
	KeywordSorry: MoodNeutral,
}

// dominant returns the keyword whose count is strictly greater than both
// others. ok is false on any tie for the maximum.
func dominant(hello, bye, sorry int) (kw Keyword, ok bool) {
	switch {
	case hello > bye && hello > sorry:
		return KeywordHello, true
	case bye > hello && bye > sorry:
		return KeywordBye, true
	case sorry > hello && sorry > bye:
		return KeywordSorry, true
	}
	return "", false
}
