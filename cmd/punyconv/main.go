package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/punycode"
)

func main() {
	var (
		encode      = flag.Bool("e", false, "Encode text to Punycode")
		decode      = flag.Bool("d", false, "Decode Punycode to text")
		input       = flag.String("in", "", "Input string (reads stdin when empty)")
		maxLen      = flag.Int("max", punycode.NoLimit, "Maximum output length (-1 for no limit)")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		punycode.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *encode == *decode {
		fmt.Fprintln(os.Stderr, "Usage: punyconv -e|-d [-in string] [-max n]")
		fmt.Fprintln(os.Stderr, "       punyconv -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*encode, *input, *maxLen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(encode bool, input string, maxLen int) error {
	if input == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(data)
		// a trailing newline from the shell is never part of the label
		if n := len(input); n > 0 && input[n-1] == '\n' {
			input = input[:n-1]
		}
	}

	opts := &punycode.Options{MaxLength: maxLen}

	var out string
	var err error
	if encode {
		out, err = punycode.EncodeString(input, opts)
	} else {
		out, err = punycode.DecodeString(input, opts)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
