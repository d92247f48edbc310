// Package match holds the static candidate list and the swipe deck.
package match

// Candidate is one mock match profile.
type Candidate struct {
	Name     string
	PhotoURL string
	Score    int
}

// MockCandidates returns the five built-in profiles in display order.
func MockCandidates() []Candidate {
	return []Candidate{
		{Name: "Sophia", PhotoURL: "https://picsum.photos/400/600?random=10", Score: 135},
		{Name: "Liam", PhotoURL: "https://picsum.photos/400/600?random=11", Score: 128},
		{Name: "Chloe", PhotoURL: "https://picsum.photos/400/600?random=12", Score: 141},
		{Name: "Ethan", PhotoURL: "https://picsum.photos/400/600?random=13", Score: 132},
		{Name: "Ava", PhotoURL: "https://picsum.photos/400/600?random=14", Score: 125},
	}
}

// Decision is a swipe.
type Decision int

const (
	Pass Decision = iota
	Like
)

func (d Decision) String() string {
	if d == Like {
		return "like"
	}
	return "pass"
}

// Deck walks a candidate list one swipe at a time.
type Deck struct {
	candidates []Candidate
	pos        int
	liked      []Candidate
}

// NewDeck copies candidates into a fresh deck.
func NewDeck(candidates []Candidate) *Deck {
	c := make([]Candidate, len(candidates))
	copy(c, candidates)
	return &Deck{candidates: c}
}

// Current returns the candidate on top, or false when the deck is empty.
func (d *Deck) Current() (Candidate, bool) {
	if d.pos >= len(d.candidates) {
		return Candidate{}, false
	}
	return d.candidates[d.pos], true
}

// Swipe records a decision on the current candidate. It is a no-op on an
// empty deck.
func (d *Deck) Swipe(dec Decision) {
	c, ok := d.Current()
	if !ok {
		return
	}
	if dec == Like {
		d.liked = append(d.liked, c)
	}
	d.pos++
}

// Done reports whether every candidate has been swiped.
func (d *Deck) Done() bool { return d.pos >= len(d.candidates) }

// Remaining is the number of unswiped candidates.
func (d *Deck) Remaining() int { return len(d.candidates) - d.pos }

// Liked returns the liked candidates in swipe order.
func (d *Deck) Liked() []Candidate { return d.liked }
