package diag

import (
	"strings"
	"testing"

	"github.com/xyproto/cc11/internal/position"
	"github.com/xyproto/cc11/internal/symbol"
)

func TestAttachCauseAndPosition(t *testing.T) {
	sp := symbol.NewSpace()
	f := sp.Force("a.c")
	pos := position.New(f, 1, 1, 0)

	cause := New(BadUtf8, "invalid byte 0x%02x", 0xff)
	top := New(BadCharacterSequence, "while decoding character constant").
		AttachCause(cause).
		AttachPosition(pos)

	if len(top.Causes()) != 1 || top.Causes()[0] != cause {
		t.Fatalf("cause not attached")
	}
	if len(top.Positions()) != 1 || top.Positions()[0] != pos {
		t.Fatalf("position not attached")
	}
	if !strings.Contains(top.Error(), "BadUtf8") {
		t.Fatalf("Error() does not mention nested cause kind: %s", top.Error())
	}
}

func TestRefcounting(t *testing.T) {
	cause := New(BadUtf8, "boom")
	top := New(BadCharacterSequence, "wrap")
	top.AttachCause(cause)
	if cause.RefCount() != 2 {
		t.Fatalf("expected cause refcount 2 after attach, got %d", cause.RefCount())
	}
	top.Unref()
	if cause.RefCount() != 1 {
		t.Fatalf("expected cause refcount 1 after top unref, got %d", cause.RefCount())
	}
}

func TestKindString(t *testing.T) {
	if CaseDuplicate.String() != "CaseDuplicate" {
		t.Fatalf("unexpected kind name: %s", CaseDuplicate.String())
	}
}
