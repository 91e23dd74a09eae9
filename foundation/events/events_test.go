package events_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/events"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestEvents(t *testing.T) {
	t.Log("Given the need to fan out events to listeners.")
	{
		evts := events.New()

		ch1 := evts.Acquire("one")
		ch2 := evts.Acquire("two")

		if evts.Acquire("one") != ch1 {
			t.Fatalf("\t%s\tShould return the same channel for the same id.", failed)
		}
		t.Logf("\t%s\tShould return the same channel for the same id.", success)

		if sent := evts.Send("block forged"); sent != 2 {
			t.Fatalf("\t%s\tShould deliver to both listeners, got %d.", failed, sent)
		}
		t.Logf("\t%s\tShould deliver to both listeners.", success)

		if msg := <-ch1; msg != "block forged" {
			t.Fatalf("\t%s\tShould receive the message, got %q.", failed, msg)
		}
		t.Logf("\t%s\tShould receive the message.", success)

		if err := evts.Release("one"); err != nil {
			t.Fatalf("\t%s\tShould be able to release a listener: %v", failed, err)
		}
		if _, ok := <-ch1; ok {
			t.Fatalf("\t%s\tShould close a released channel.", failed)
		}
		t.Logf("\t%s\tShould close a released channel.", success)

		if err := evts.Release("one"); err == nil {
			t.Fatalf("\t%s\tShould not release an unknown id.", failed)
		}
		t.Logf("\t%s\tShould not release an unknown id.", success)

		for i := 0; i < 200; i++ {
			evts.Send("flood")
		}
		t.Logf("\t%s\tShould not block on a full listener.", success)

		evts.Shutdown()
		if evts.Count() != 0 {
			t.Fatalf("\t%s\tShould remove every listener on shutdown.", failed)
		}

		var n int
		for range ch2 {
			n++
		}
		if n != 100 {
			t.Fatalf("\t%s\tShould buffer up to the limit before closing, got %d.", failed, n)
		}
		t.Logf("\t%s\tShould close every channel on shutdown.", success)
	}
}
