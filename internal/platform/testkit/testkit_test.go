package testkit

import "testing"

var seam = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatal("swap not applied")
		}
	})
	if seam() != "real" {
		t.Fatal("swap not restored")
	}
}

func TestMustPanicAndContain(t *testing.T) {
	MustPanic(t, func() { panic("x") })
	MustContain(t, "level=info owner_id=o1", "owner_id=o1")
}
