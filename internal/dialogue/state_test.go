package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(s *State, text string) Exchange {
	s.SubmitText(text)
	return s.Converse()
}

func TestSubmitCharacterRequiresActive(t *testing.T) {
	s := NewState()

	s.SubmitCharacter('a')
	s.SubmitText("bc")
	assert.Empty(t, s.Buffer(), "inactive dialogue must ignore text")

	s.SetActive(true)
	s.SubmitCharacter('a')
	s.SubmitText("bé")
	assert.Equal(t, "abé", s.Buffer())
}

func TestBackspace(t *testing.T) {
	s := NewState()
	s.SetActive(true)

	s.Backspace()
	s.Backspace()
	assert.Empty(t, s.Buffer(), "backspace on empty buffer is a no-op")

	s.SubmitText("héllo")
	s.Backspace()
	assert.Equal(t, "héll", s.Buffer())
	s.Backspace()
	s.Backspace()
	assert.Equal(t, "hé", s.Buffer(), "backspace removes whole characters")
}

func TestCommitLine(t *testing.T) {
	s := NewState()
	s.SetActive(true)

	s.SubmitText("HELLO")
	line := s.CommitLine()

	assert.Equal(t, "hello", line)
	assert.Empty(t, s.Buffer())
	assert.Equal(t, []string{"hello"}, s.History())
	assert.Equal(t, 1, s.Count(KeywordHello))
	assert.Equal(t, 0, s.Count(KeywordBye))
	assert.Equal(t, 0, s.Count(KeywordSorry))
}

func TestCommitLineWholeMatchOnly(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"substring", "hello there"},
		{"prefix", "hell"},
		{"padded", " bye "},
		{"punctuated", "sorry!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.SetActive(true)
			s.SubmitText(tc.text)
			s.CommitLine()

			for _, kw := range Keywords {
				assert.Zero(t, s.Count(kw), "keyword %s should not be counted", kw)
			}
			require.Len(t, s.History(), 1)
		})
	}
}

func TestCommitEmptyLine(t *testing.T) {
	s := NewState()
	s.SetActive(true)

	line := s.CommitLine()
	assert.Equal(t, "", line)
	assert.Equal(t, []string{""}, s.History(), "empty commits still append to history")
}

func TestHistoryIsCopy(t *testing.T) {
	s := NewState()
	s.SetActive(true)
	typeLine(s, "hello")

	h := s.History()
	h[0] = "tampered"
	assert.Equal(t, []string{"hello"}, s.History())
}

func TestRecomputeMood(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Mood
	}{
		{"initial is neutral", nil, MoodNeutral},
		{"hello dominates", []string{"hello"}, MoodHappy},
		{"bye dominates", []string{"bye", "bye", "hello"}, MoodAngry},
		{"sorry dominates", []string{"sorry", "bye", "sorry"}, MoodNeutral},
		{"tie keeps previous", []string{"hello", "bye"}, MoodHappy},
		{"tie after anger keeps anger", []string{"bye", "hello"}, MoodAngry},
		{"three-way tie keeps previous", []string{"bye", "hello", "sorry"}, MoodAngry},
		{"non-keywords change nothing", []string{"xyz", "hi"}, MoodNeutral},
		{"overtake after tie", []string{"hello", "bye", "bye"}, MoodAngry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.SetActive(true)
			for _, line := range tc.lines {
				typeLine(s, line)
			}
			assert.Equal(t, tc.want, s.Mood())
		})
	}
}

func TestMoodMatchesDominantCounterProperty(t *testing.T) {
	// Walk every sequence of up to five keyword commits and check the mood
	// against a reference computed from the counters.
	var walk func(s *State, prev Mood, depth int)
	walk = func(s *State, prev Mood, depth int) {
		if depth == 0 {
			return
		}
		for _, kw := range Keywords {
			next := NewState()
			next.SetActive(true)
			for _, line := range s.History() {
				typeLine(next, line)
			}
			typeLine(next, string(kw))

			want := prev
			if dom, ok := dominant(next.Count(KeywordHello), next.Count(KeywordBye), next.Count(KeywordSorry)); ok {
				want = moodFor[dom]
			}
			require.Equal(t, want, next.Mood(), "history %v", next.History())
			walk(next, next.Mood(), depth-1)
		}
	}

	s := NewState()
	walk(s, MoodNeutral, 5)
}

func TestConverse(t *testing.T) {
	s := NewState()
	s.SetActive(true)

	ex := typeLine(s, "HELLO")
	assert.Equal(t, Exchange{Line: "hello", Mood: MoodHappy, Reply: "Hello my friend"}, ex)

	ex = typeLine(s, "bye")
	assert.Equal(t, MoodHappy, ex.Mood, "1-1 tie keeps happy")
	assert.Equal(t, "Farewell friend...", ex.Reply)

	ex = typeLine(s, "Bye")
	assert.Equal(t, MoodAngry, ex.Mood)
	assert.Equal(t, "Get out of my SIGHT fool!", ex.Reply)

	ex = typeLine(s, "what")
	assert.Equal(t, Fallback, ex.Reply)
}

func TestReply(t *testing.T) {
	s := NewState()
	s.SetActive(true)

	_, ok := s.Reply()
	assert.False(t, ok, "no reply before the first commit")

	typeLine(s, "sorry")
	reply, ok := s.Reply()
	require.True(t, ok)
	assert.Equal(t, "It's alright!", reply)
}

func TestMoodString(t *testing.T) {
	assert.Equal(t, "angry", MoodAngry.String())
	assert.Equal(t, "happy", MoodHappy.String())
	assert.Equal(t, "neutral", MoodNeutral.String())
	assert.Equal(t, "unknown", Mood(42).String())
}
