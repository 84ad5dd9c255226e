package application

import "tagvault/internal/ports"

// Broadcaster fans catalog notifications out to every subscriber, in
// subscription order. With no subscribers it is a no-op, so the catalog
// never checks whether anyone is listening.
type Broadcaster struct {
	subs []ports.Notifier
}

// Subscribe adds a notifier. There is no unsubscribe; subscribers live
// as long as the catalog.
func (b *Broadcaster) Subscribe(n ports.Notifier) {
	b.subs = append(b.subs, n)
}

func (b *Broadcaster) RangeChanged(first, last int) {
	for _, n := range b.subs {
		n.RangeChanged(first, last)
	}
}

func (b *Broadcaster) Reset() {
	for _, n := range b.subs {
		n.Reset()
	}
}

func (b *Broadcaster) HistoryChanged() {
	for _, n := range b.subs {
		n.HistoryChanged()
	}
}

// NotifierFuncs adapts plain functions to the Notifier interface. Nil
// fields are skipped, so a subscriber can listen to a subset of the
// notifications.
type NotifierFuncs struct {
	OnRangeChanged   func(first, last int)
	OnReset          func()
	OnHistoryChanged func()
}

func (f NotifierFuncs) RangeChanged(first, last int) {
	if f.OnRangeChanged != nil {
		f.OnRangeChanged(first, last)
	}
}

func (f NotifierFuncs) Reset() {
	if f.OnReset != nil {
		f.OnReset()
	}
}

func (f NotifierFuncs) HistoryChanged() {
	if f.OnHistoryChanged != nil {
		f.OnHistoryChanged()
	}
}
