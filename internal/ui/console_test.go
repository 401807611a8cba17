package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestAskReadsLinesInOrder(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  Ana  \r\n42\nlast"), &out)
	ctx := context.Background()

	want := []string{"Ana", "42", "last"}
	for i, w := range want {
		got, err := c.Ask(ctx, "? ")
		if err != nil {
			t.Fatalf("Ask %d failed: %v", i, err)
		}
		if got != w {
			t.Errorf("Ask %d: got %q, want %q", i, got, w)
		}
	}

	if _, err := c.Ask(ctx, "? "); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after input ends, got %v", err)
	}
	if got := out.String(); got != "? ? ? ? " {
		t.Errorf("prompts written: got %q", got)
	}
}

func TestAskCanceledContext(t *testing.T) {
	c := NewConsole(strings.NewReader("x\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Ask(ctx, "? "); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type signalWriter struct {
	wrote chan struct{}
}

func (w *signalWriter) Write(p []byte) (int, error) {
	select {
	case w.wrote <- struct{}{}:
	default:
	}
	return len(p), nil
}

func TestAskRejectsSecondPromptWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	out := &signalWriter{wrote: make(chan struct{}, 1)}
	c := NewConsole(pr, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Ask(ctx, "first? ")
		done <- err
	}()

	select {
	case <-out.wrote:
	case <-time.After(time.Second):
		t.Fatal("first prompt was never written")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("first Ask: got %v, want context.Canceled", err)
	}

	if _, err := c.Ask(ctx, "again? "); !errors.Is(err, context.Canceled) {
		t.Errorf("Ask with canceled ctx: got %v, want context.Canceled", err)
	}
	if _, err := c.Ask(context.Background(), "second? "); !errors.Is(err, ErrPromptPending) {
		t.Errorf("second Ask: got %v, want ErrPromptPending", err)
	}

	// finishing the abandoned read frees the console
	if _, err := pw.Write([]byte("late\n")); err != nil {
		t.Fatalf("pipe write failed: %v", err)
	}
	deadline := time.Now().Add(time.Second)
	for !c.reading.TryLock() {
		if time.Now().After(deadline) {
			t.Fatal("console never released the reader")
		}
		time.Sleep(time.Millisecond)
	}
	c.reading.Unlock()
	pw.Close()
}

func TestMessagesArePlainWithoutColor(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Title("Title")
	c.Hint("hint")
	c.Warn("warn")
	c.Success("yay")
	c.Printf("%d-%s\n", 1, "x")
	c.Println("plain")

	want := "Title\nhint\nwarn\nyay\n1-x\nplain\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer is not a TTY")
	}
}
