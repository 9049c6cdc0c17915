package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/pecking-order/race"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestRunPrintsResults(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, options{names: []string{"Ada", "Lin"}, seed: 7, noCapture: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"seed 7", " 3\n", "Go!", "wins!", "race over"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	tail := lines[len(lines)-2:]
	if !strings.HasPrefix(tail[0], "1. ") || !strings.HasPrefix(tail[1], "2. ") {
		t.Errorf("results = %q", tail)
	}
	if strings.Contains(out, "snatched") {
		t.Error("no racer should be snatched with capture off")
	}
}

func TestRunSameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	opts := options{names: []string{"Ada", "Lin", "Bo"}, seed: 42}
	if err := run(&a, opts); err != nil {
		t.Fatal(err)
	}
	if err := run(&b, opts); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed should print the same race")
	}
}

func TestRunEmptyRoster(t *testing.T) {
	err := run(&bytes.Buffer{}, options{names: []string{"", "  "}, seed: 1})
	if !errors.Is(err, race.ErrEmptyRoster) {
		t.Errorf("err = %v, want ErrEmptyRoster", err)
	}
}

func TestDescribe(t *testing.T) {
	r := &race.Racer{Name: "Ada"}
	cases := []struct {
		ev   race.Event
		want string
	}{
		{race.Event{Kind: race.EventCountdown, Label: "2"}, "2"},
		{race.Event{Kind: race.EventWinner, Racer: r}, "Ada wins!"},
		{race.Event{Kind: race.EventStrike, Racer: r}, "Ada is snatched"},
		{race.Event{Kind: race.EventSpeedChange, Racer: r, Value: 1.2}, "Ada changes speed x1.20"},
		{race.Event{Kind: race.EventDropped, Racer: r}, ""},
	}
	for _, c := range cases {
		if got := describe(c.ev); got != c.want {
			t.Errorf("describe(%s) = %q, want %q", c.ev.Kind, got, c.want)
		}
	}
}
