package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geometrize"
)

// tally counts candidates and valid shapes of one kind.
type tally struct {
	candidates int
	valid      int
}

// report summarizes a coverage run.
type report struct {
	width, height int
	before        map[geometrize.Kind]*tally
	after         map[geometrize.Kind]*tally
	peak          uint64
	total         uint64
}

func newReport(cfg Config) *report {
	r := &report{
		width:  cfg.Width,
		height: cfg.Height,
		before: make(map[geometrize.Kind]*tally),
		after:  make(map[geometrize.Kind]*tally),
	}
	for _, k := range geometrize.Kinds {
		r.before[k] = &tally{}
		r.after[k] = &tally{}
	}
	return r
}

// count records s in the before- or after-mutation tally and reports
// whether it is valid.
func (r *report) count(s geometrize.Shape, mutated bool) bool {
	t := r.before[s.Kind()]
	if mutated {
		t = r.after[s.Kind()]
	}
	t.candidates++
	ok := s.IsValid()
	if ok {
		t.valid++
	}
	return ok
}

func (r *report) print(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "canvas %dx%d (%d cells)\n", r.width, r.height, r.width*r.height)
	p.Fprintf(w, "%-10s %12s %12s %12s\n", "kind", "candidates", "valid", "after mutate")
	for _, k := range geometrize.Kinds {
		p.Fprintf(w, "%-10s %12d %12d %12d\n", k, r.before[k].candidates, r.before[k].valid, r.after[k].valid)
	}
	p.Fprintf(w, "coverage peak %d, total %d\n", r.peak, r.total)
}
