package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/fixseq"
)

func main() {
	var (
		seqText     = flag.String("seq", "", "Input sequence (1,2,3 or \"1 2 3\")")
		opName      = flag.String("op", "", "Operation to apply")
		m           = flag.Int("m", 0, "Length, chunk size or lane count")
		n           = flag.Int("n", 0, "Rotation amount, shift-in value or fill value")
		h           = flag.Int("h", 0, "Grid height")
		w           = flag.Int("w", 0, "Grid width")
		list        = flag.Bool("list", false, "List operations and exit")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		fixseq.SetLogger(logger)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))

	if *list {
		fmt.Print(listOperations(color))
		return
	}

	if *interactive {
		if err := runInteractive(*seqText); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *opName == "" {
		fmt.Fprintln(os.Stderr, "Usage: reshape -seq 1,2,3,4 -op <name> [-m N] [-n N] [-h N -w N]")
		fmt.Fprintln(os.Stderr, "       reshape -list")
		fmt.Fprintln(os.Stderr, "       reshape -i  (interactive mode)")
		os.Exit(1)
	}

	out, err := apply(*opName, *seqText, params{m: *m, n: *n, h: *h, w: *w})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// listOperations renders the operation table, styled only when color is set.
func listOperations(color bool) string {
	render := func(style lipgloss.Style, s string) string {
		if !color {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder
	b.WriteString(render(titleStyle, "Operations"))
	b.WriteString("\n")
	for _, op := range operations {
		name := fmt.Sprintf("  %-13s", op.name)
		args := fmt.Sprintf("%-5s", op.args)
		b.WriteString(render(funcStyle, name))
		b.WriteString(render(typeStyle, args))
		b.WriteString(" ")
		b.WriteString(op.about)
		b.WriteString("\n")
	}
	return b.String()
}
