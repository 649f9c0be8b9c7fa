// Command gosched-demo walks through the round-robin scenario of the
// scheduler's end-to-end test suite by hand, the way the teacher package's
// eventloop/examples subpackages are worked, narrated examples rather
// than tests.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/simonatoaca/gosched"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	s, err := gosched.New(2, 1, gosched.WithLogger(logger), gosched.WithMetrics(true))
	if err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}

	var mu sync.Mutex
	var trace []string
	record := func(id string) {
		mu.Lock()
		trace = append(trace, id)
		mu.Unlock()
	}

	// Round robin: A and B both at priority 2, four exec ticks each.
	if _, err := s.Fork(func(priority int) {
		for i := 0; i < 4; i++ {
			record("A")
			s.Exec()
		}
	}, 2); err != nil {
		panic(err)
	}

	if _, err := s.Fork(func(priority int) {
		for i := 0; i < 4; i++ {
			record("B")
			s.Exec()
		}
	}, 2); err != nil {
		panic(err)
	}

	s.End()

	fmt.Println("round robin trace:", trace)

	m := s.Metrics()
	fmt.Printf("forks=%d preemptions=%d\n", m.Forks, m.Preemptions)
}
