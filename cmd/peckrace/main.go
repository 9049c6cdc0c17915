// Command peckrace runs a race without a window and prints what happens.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/automoto/pecking-order/race"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// maxTicks is two simulated minutes, far past any real race.
const maxTicks = race.TickRate * 120

type options struct {
	names     []string
	seed      int64
	noCapture bool
}

var (
	countdownColor = color.New(color.FgYellow, color.Bold)
	winnerColor    = color.New(color.FgGreen, color.Bold)
	capturedColor  = color.New(color.FgRed)
	dimColor       = color.New(color.Faint)
)

func main() {
	var opts options
	pflag.StringSliceVarP(&opts.names, "names", "n", nil, "comma separated racer names (up to five)")
	pflag.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time seeded)")
	pflag.BoolVar(&opts.noCapture, "no-capture", false, "never send the predator")
	pflag.Parse()

	if len(opts.names) == 0 {
		opts.names = pflag.Args()
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	ro := race.DefaultOptions(960, 540)
	ro.Rand = race.NewRand(opts.seed)
	if opts.noCapture {
		ro.Tuning.CaptureChance = 0
	}

	events, err := race.Simulate(race.NewSession(ro), opts.names, maxTicks)
	if err != nil {
		return fmt.Errorf("peckrace: %w", err)
	}

	dimColor.Fprintf(w, "seed %d\n", opts.seed)
	for _, ev := range events {
		if line := describe(ev); line != "" {
			fmt.Fprintf(w, "%s %s\n", dimColor.Sprintf("%6.2fs", ev.At), line)
		}
		if ev.Kind == race.EventFinished {
			printResults(w, ev.Results)
		}
	}
	return nil
}

// describe renders one event as a log line, empty for events not worth showing.
func describe(ev race.Event) string {
	name := ""
	if ev.Racer != nil {
		name = ev.Racer.Name
	}

	switch ev.Kind {
	case race.EventCountdown, race.EventGo:
		return countdownColor.Sprint(ev.Label)
	case race.EventSpeedChange:
		return fmt.Sprintf("%s changes speed x%.2f", name, ev.Value)
	case race.EventLoop:
		return name + " loops"
	case race.EventPredatorAppears:
		return capturedColor.Sprintf("the owl goes for %s", name)
	case race.EventStrike:
		return capturedColor.Sprintf("%s is snatched", name)
	case race.EventCaptured:
		return name + " is carried off"
	case race.EventWinner:
		return winnerColor.Sprintf("%s wins!", name)
	case race.EventLoser:
		return name + " crosses and drops"
	case race.EventDropped:
		return ""
	case race.EventFinished:
		return "race over"
	}
	return ""
}

func printResults(w io.Writer, results []race.Result) {
	fmt.Fprintln(w, strings.Repeat("-", 20))
	for _, r := range results {
		if r.Captured {
			capturedColor.Fprintln(w, r.String()+" (snatched)")
			continue
		}
		fmt.Fprintln(w, r.String())
	}
}
