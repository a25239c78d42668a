package observer_test

import (
	"github.com/dmitrymomot/observer/core/observer"
)

// recorder collects every message delivered to the listeners it creates.
type recorder struct {
	got []int
}

// listener returns an observer recording msg+base.
func (r *recorder) listener(base int) *observer.Observer[int] {
	return observer.NewObserver[int](r.adder(base))
}

func (r *recorder) adder(base int) *adder {
	return &adder{base: base, rec: r}
}

// adder records msg+base; base can be changed after construction.
type adder struct {
	base int
	rec  *recorder
}

func (a *adder) Update(msg int) {
	a.rec.got = append(a.rec.got, msg+a.base)
}

// trigger runs fn on its first update after construction or reset.
type trigger struct {
	fired bool
	fn    func()
}

func (tr *trigger) Update(int) {
	if !tr.fired {
		tr.fired = true
		tr.fn()
	}
}

func (tr *trigger) reset() {
	tr.fired = false
}

func newTrigger(fn func()) (*trigger, *observer.Observer[int]) {
	tr := &trigger{fn: fn}
	return tr, observer.NewObserver[int](tr)
}

func attachAll(s *observer.Subject[int], observers ...*observer.Observer[int]) {
	for _, o := range observers {
		if err := s.Attach(o); err != nil {
			panic(err)
		}
	}
}

func resetAll(triggers ...*trigger) {
	for _, tr := range triggers {
		tr.reset()
	}
}
