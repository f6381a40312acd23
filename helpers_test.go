package fixseq

import "testing"

// ledger counts Drop calls per token id.
type ledger struct {
	drops map[int]int
	next  int
}

func newLedger() *ledger {
	return &ledger{drops: make(map[int]int)}
}

type token struct {
	id int
	l  *ledger
}

func (t *token) Drop() { t.l.drops[t.id]++ }

func (l *ledger) token() *token {
	t := &token{id: l.next, l: l}
	l.next++
	return t
}

func (l *ledger) tokens(n int) *Seq[*token] {
	buf := make([]*token, n)
	for i := range buf {
		buf[i] = l.token()
	}
	return From(buf)
}

// dropped returns how many tokens were dropped at least once.
func (l *ledger) dropped() int {
	return len(l.drops)
}

// requireOnce fails unless every token issued was dropped exactly once.
func (l *ledger) requireOnce(t *testing.T) {
	t.Helper()
	for id := range l.next {
		if got := l.drops[id]; got != 1 {
			t.Errorf("token %d dropped %d times, want 1", id, got)
		}
	}
}

func ids(s *Seq[*token]) []int {
	out := make([]int, 0, s.Len())
	for v := range s.Values() {
		if v == nil {
			out = append(out, -1)
			continue
		}
		out = append(out, v.id)
	}
	return out
}

func values[T any](s *Seq[T]) []T {
	out := make([]T, len(s.Slice()))
	copy(out, s.Slice())
	return out
}

func count(n int) *Seq[int] {
	buf := make([]int, n)
	for i := range buf {
		buf[i] = i
	}
	return From(buf)
}

func collect[T any](seqs []*Seq[T]) [][]T {
	out := make([][]T, len(seqs))
	for i, s := range seqs {
		out[i] = values(s)
	}
	return out
}
