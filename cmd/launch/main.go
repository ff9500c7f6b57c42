package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/thread-launch/config"
	"github.com/wippyai/thread-launch/engine"
	tlerrors "github.com/wippyai/thread-launch/errors"
	"github.com/wippyai/thread-launch/launch"
	"github.com/wippyai/thread-launch/metrics"
)

func main() {
	var (
		count       = flag.Int("n", 100, "Number of threads to launch")
		configFile  = flag.String("config", "", "Path to YAML launch config")
		profile     = flag.String("profile", "", "Attr profile name from the config")
		metricsAddr = flag.String("metrics", "", "Serve Prometheus metrics on this address")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(zl)
		launch.SetLogger(zl)
	}

	eng, attr, err := setup(*configFile, *profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exporter := metrics.NewExporter()
	launcher := launch.New(eng, launch.WithObserver(exporter))

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", exporter.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
			}
		}()
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(launcher, attr, *count); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(launcher, attr, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(configFile, profile string) (engine.Engine, *engine.Attr, error) {
	if configFile == "" {
		if profile != "" {
			return nil, nil, fmt.Errorf("-profile requires -config")
		}
		return engine.NewGoroutineEngine(), nil, nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	eng := cfg.Engine()

	if profile == "" {
		return eng, nil, nil
	}
	attr, err := cfg.Attr(profile)
	if err != nil {
		return nil, nil, err
	}
	return eng, &attr, nil
}

// tally is the demo workload: each launched thread increments it once.
type tally struct {
	mu    sync.Mutex
	delay time.Duration
	n     int
}

func (t *tally) Increment() {
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	t.mu.Lock()
	t.n++
	t.mu.Unlock()
}

func (t *tally) Value() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

func run(launcher *launch.Launcher, attr *engine.Attr, count int) error {
	work := &tally{}
	threads := make([]engine.Thread, count)

	exhausted := &tlerrors.Error{Phase: tlerrors.PhaseCreate, Kind: tlerrors.KindExhausted}
	for i := range threads {
		for {
			err := launch.Launch(launcher, &threads[i], attr, work, (*tally).Increment)
			if err == nil {
				break
			}
			if !errors.Is(err, exhausted) {
				return err
			}
			// Ceiling reached, wait for running threads to drain.
			time.Sleep(time.Millisecond)
		}
	}

	joinable := attr == nil || !attr.Detached
	if joinable {
		for i := range threads {
			if _, err := threads[i].Join(); err != nil {
				return err
			}
		}
	}

	stats := launcher.Stats()
	fmt.Printf("Launched:  %d\n", stats.Launched)
	fmt.Printf("Completed: %d\n", stats.Completed)
	fmt.Printf("Closures:  %d allocated, %d released\n",
		stats.ClosuresAllocated, stats.ClosuresReleased)
	fmt.Printf("Tally:     %d\n", work.Value())
	return nil
}
