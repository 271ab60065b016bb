package termio

import (
	"os"
	"testing"
)

func TestIsPiped(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if !IsPiped(r) {
		t.Error("Expected pipe to be reported as piped")
	}
	if IsTerminal(r) {
		t.Error("Expected pipe not to be a terminal")
	}
}

func TestIsPipedRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "diff")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if !IsPiped(f) {
		t.Error("Expected regular file to be reported as piped")
	}
}
