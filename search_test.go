package itn

import (
	"sync"
	"testing"
)

func TestLatticeAgendaOrder(t *testing.T) {
	lat := newLattice()
	lat.rank = []int{2, 0, 1}
	lat.size = 3
	lat.reach(1, 0, 0, -1, "")
	lat.reach(0, 0, 0, -1, "")
	lat.reach(0, 1, 0, -1, "")
	lat.reach(1, 2, 0, -1, "")
	want := [][2]int{{0, 1}, {0, 0}, {1, 2}, {1, 0}}
	for _, w := range want {
		v, ok := lat.agenda.Pop()
		if !ok {
			t.Fatalf("agenda exhausted early")
		}
		it := lat.items[v.(int)]
		if it.pos != w[0] || it.state != w[1] {
			t.Errorf("expected item (%d,%d), got (%d,%d)", w[0], w[1], it.pos, it.state)
		}
	}
	if !lat.agenda.Empty() {
		t.Errorf("expected empty agenda")
	}
}

func TestLatticeKeepsFirstOnTie(t *testing.T) {
	lat := newLattice()
	lat.rank = []int{0, 1}
	lat.size = 2
	lat.reach(0, 1, 1.0, -1, "first")
	lat.reach(0, 1, 1.0, -1, "second")
	lat.reach(0, 1, 1.5, -1, "worse")
	if lat.items[0].out != "first" || len(lat.items) != 1 {
		t.Errorf("expected first path to be kept on tie, have %v", lat.items)
	}
	lat.reach(0, 1, 0.5, -1, "better")
	if lat.items[0].out != "better" {
		t.Errorf("expected better path to replace the old one")
	}
}

func TestConcurrentSearch(t *testing.T) {
	f := Concat(Cross("אחד", "1"), Star(Concat(DeleteString(" "), Cross("אחד", "1")))).MustOptimize()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.Transduce("אחד אחד אחד")
			if err == nil && out != "111" {
				t.Errorf("expected 111, got %q", out)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}
