package diagutil

import (
	"os"
	"testing"
)

func TestLogfRespectsVerbose(t *testing.T) {
	old := Verbose
	defer func() { Verbose = old }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	Verbose = false
	Logf("should not appear\n")

	Verbose = true
	Logf("hello %d\n", 42)

	w.Close()
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	got := string(buf[:n])
	if got != "hello 42\n" {
		t.Fatalf("got %q, want %q", got, "hello 42\n")
	}
}
