package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/corvidchess/engine/pkg/engine"
	"github.com/corvidchess/engine/pkg/engine/uci"
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvidchess [options]

corvidchess is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "corvidchess", "corvidchess contributors")

	in := engine.ReadStdinLines(ctx)
	first, ok := <-in
	if !ok || first != uci.ProtocolName {
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}

	driver, out := uci.NewDriver(ctx, e, prepend(first, in))
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}

// prepend re-delivers the already-consumed first line ahead of the rest of
// the stream, so the driver's "uci" handler still sees it.
func prepend(first string, rest <-chan string) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		out <- first
		for line := range rest {
			out <- line
		}
	}()
	return out
}
