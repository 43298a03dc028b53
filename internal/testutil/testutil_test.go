package testutil

import (
	"errors"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 1, 1)
	AssertEqual(t, "a", "a")
	AssertEqual(t, true, true)
}

func TestAssertNotEqual(t *testing.T) {
	AssertNotEqual(t, 1, 2)
	AssertNotEqual(t, "a", "b")
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("boom"))
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(t)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context should have a deadline")
	}
	if deadline.IsZero() {
		t.Fatal("deadline should not be zero")
	}
}

func TestMockWriter(t *testing.T) {
	mw := NewMockWriter()

	n, err := mw.Write([]byte("hello"))
	AssertNoError(t, err)
	AssertEqual(t, n, 5)
	AssertEqual(t, mw.String(), "hello")
	AssertEqual(t, mw.WriteCount(), 1)

	mw.SetAlwaysError(errors.New("disk full"))
	_, err = mw.Write([]byte("world"))
	AssertError(t, err)
	AssertEqual(t, mw.String(), "hello")

	mw.Reset()
	AssertEqual(t, mw.Len(), 0)
	AssertEqual(t, mw.WriteCount(), 0)
}
