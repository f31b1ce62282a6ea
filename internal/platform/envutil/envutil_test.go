package envutil

import (
	"testing"
	"time"
)

func TestDurationAcceptsSecondsAndGoSyntax(t *testing.T) {
	t.Setenv("TRAINER_TEST_DURATION", "15s")
	if got := Duration("TRAINER_TEST_DURATION", time.Second); got != 15*time.Second {
		t.Fatalf("go syntax: got=%v", got)
	}
	t.Setenv("TRAINER_TEST_DURATION", "7")
	if got := Duration("TRAINER_TEST_DURATION", time.Second); got != 7*time.Second {
		t.Fatalf("bare seconds: got=%v", got)
	}
	t.Setenv("TRAINER_TEST_DURATION", "soon")
	if got := Duration("TRAINER_TEST_DURATION", time.Second); got != time.Second {
		t.Fatalf("fallback: got=%v", got)
	}
}

func TestBoolAndIntFallbacks(t *testing.T) {
	t.Setenv("TRAINER_TEST_BOOL", "maybe")
	if !Bool("TRAINER_TEST_BOOL", true) {
		t.Fatalf("unparseable bool should use default")
	}
	t.Setenv("TRAINER_TEST_BOOL", "off")
	if Bool("TRAINER_TEST_BOOL", true) {
		t.Fatalf("off should be false")
	}
	t.Setenv("TRAINER_TEST_INT", "x")
	if got := Int("TRAINER_TEST_INT", 3000); got != 3000 {
		t.Fatalf("int fallback: got=%d", got)
	}
}

func TestListDropsBlanks(t *testing.T) {
	t.Setenv("TRAINER_TEST_LIST", " http://a , ,http://b")
	got := List("TRAINER_TEST_LIST", nil)
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("unexpected list: %v", got)
	}
}
