package time

import (
	"testing"
	"time"
)

func TestFixedAndOrSystem(t *testing.T) {
	at := time.Date(2025, 4, 13, 12, 0, 0, 0, time.UTC)
	c := Fixed(at)
	if !c.Now().Equal(at) {
		t.Fatalf("Fixed.Now = %v", c.Now())
	}
	if !OrSystem(c).Now().Equal(at) {
		t.Fatalf("OrSystem replaced a set clock")
	}
	before := time.Now()
	if got := OrSystem(nil).Now(); got.Before(before) {
		t.Fatalf("OrSystem(nil) = %v, before %v", got, before)
	}
}
