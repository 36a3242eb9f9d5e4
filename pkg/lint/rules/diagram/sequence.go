package diagram

import (
	"regexp"
	"strings"
)

var (
	seqParticipant = regexp.MustCompile(`^participant\s+(` + word + `)`)
	seqMessage     = regexp.MustCompile(`^(` + word + `)\s*->>\s*(` + word + `)\s*:\s*(.+)`)
)

// Sequence is the shallow structure of a sequence diagram block.
type Sequence struct {
	Participants []string
	Messages     []Edge
}

// ParseSequence collects participant declarations and messages from a block.
func ParseSequence(b Block) Sequence {
	var s Sequence
	for _, line := range b.Body() {
		if m := seqParticipant.FindStringSubmatch(line.Text); m != nil {
			s.Participants = append(s.Participants, m[1])
		}
		if m := seqMessage.FindStringSubmatch(line.Text); m != nil {
			s.Messages = append(s.Messages, Edge{From: m[1], To: m[2], Line: line.Number})
		}
	}
	return s
}

// Declares reports whether name is a participant or a prefix of one.
func (s Sequence) Declares(name string) bool {
	for _, p := range s.Participants {
		if p == name || strings.HasPrefix(p, name) {
			return true
		}
	}
	return false
}
