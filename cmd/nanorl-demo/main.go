// Command nanorl-demo is a thin CLI exercising the nanorl line editor,
// grounded on cmd/nosshtradamus/main.go's flag-parsing and startup-failure
// handling and on kylelemons-goat/goat.go's lineDemo read-loop shape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"nanorl"
)

func main() {
	prompt := flag.String("prompt", "> ", "Prompt printed before the line is read")
	obscured := flag.Bool("obscured", false, "Mask typed input with '*', for password entry")
	noEcho := flag.Bool("noecho", false, "Suppress all echo of typed input")
	printVersion := flag.Bool("version", false, "Print the nanorl library version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(nanorl.Version)
		return
	}

	cfg := nanorl.DefaultConfig()
	cfg.Prompt = []byte(*prompt)
	switch {
	case *obscured:
		cfg.EchoMode = nanorl.EchoObscured
	case *noEcho:
		cfg.EchoMode = nanorl.EchoOff
	}

	line, err := nanorl.Edit(cfg)
	switch {
	case errors.Is(err, nanorl.ErrEOF):
		fmt.Fprintln(os.Stderr, "nanorl-demo: eof")
		os.Exit(1)
	case errors.Is(err, nanorl.ErrInterrupted):
		fmt.Fprintf(os.Stderr, "nanorl-demo: interrupted, partial line: %q\n", line)
		os.Exit(130)
	case err != nil:
		log.Fatalf("nanorl-demo: %v", err)
	default:
		fmt.Printf("%s\n", line)
	}
}
