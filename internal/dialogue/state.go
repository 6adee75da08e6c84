package dialogue

import (
	"golang.org/x/text/cases"
)

// Exchange is a committed line and the NPC's answer to it.
type Exchange struct {
	Line  string
	Mood  Mood
	Reply string
}

// State holds everything the dialogue engine knows. The zero value is not
// ready for use; call NewState.
type State struct {
	buffer  []rune
	history []string
	counts  map[Keyword]int
	mood    Mood
	active  bool
}

// NewState creates an inactive dialogue with a neutral NPC.
func NewState() *State {
	return &State{
		counts: make(map[Keyword]int, len(Keywords)),
		mood:   MoodNeutral,
	}
}

// Fold applies Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// SetActive switches text capture on or off.
func (s *State) SetActive(active bool) {
	s.active = active
}

// Active reports whether text capture is on.
func (s *State) Active() bool {
	return s.active
}

// SubmitCharacter appends ch to the buffer while dialogue is active.
func (s *State) SubmitCharacter(ch rune) {
	if !s.active {
		return
	}
	s.buffer = append(s.buffer, ch)
}

// SubmitText appends every character of a text-input event.
func (s *State) SubmitText(text string) {
	for _, ch := range text {
		s.SubmitCharacter(ch)
	}
}

// Backspace removes the last buffered character, if any.
func (s *State) Backspace() {
	if len(s.buffer) == 0 {
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
}

// CommitLine folds the buffer, counts it if it is exactly a keyword, appends
// it to history and clears the buffer. Empty lines are committed too.
func (s *State) CommitLine() string {
	line := Fold(string(s.buffer))
	if kw, ok := MatchKeyword(line); ok {
		s.counts[kw]++
	}
	s.history = append(s.history, line)
	s.buffer = s.buffer[:0]
	return line
}

// RecomputeMood sets the mood from the strictly dominant counter and returns
// it. Ties leave the mood unchanged.
func (s *State) RecomputeMood() Mood {
	kw, ok := dominant(s.counts[KeywordHello], s.counts[KeywordBye], s.counts[KeywordSorry])
	if ok {
		s.mood = moodFor[kw]
	}
	return s.mood
}

// Converse commits the buffer, updates the mood and picks the NPC's reply.
func (s *State) Converse() Exchange {
	line := s.CommitLine()
	mood := s.RecomputeMood()
	return Exchange{
		Line:  line,
		Mood:  mood,
		Reply: ReplyFor(line, mood),
	}
}

// Reply returns the answer to the last committed line in the current mood.
// ok is false before anything has been committed.
func (s *State) Reply() (reply string, ok bool) {
	if len(s.history) == 0 {
		return "", false
	}
	return ReplyFor(s.history[len(s.history)-1], s.mood), true
}

// Buffer returns the text typed so far.
func (s *State) Buffer() string {
	return string(s.buffer)
}

// History returns a copy of the committed lines, oldest first.
func (s *State) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Count returns how many times kw has been committed.
func (s *State) Count(kw Keyword) int {
	return s.counts[kw]
}

// Mood returns the current mood.
func (s *State) Mood() Mood {
	return s.mood
}
