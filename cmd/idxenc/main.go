package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	app         = kingpin.New("idxenc", "Encode JSON objects as flat delimiter-indexed text.")
	delimiter   = app.Flag("delimiter", "Segment separator.").Short('d').Default(":").String()
	mapLike     = app.Flag("map-like", "Emit each field name as its own segment before its value.").Short('m').Bool()
	capacity    = app.Flag("capacity", "Pre-reserve this many bytes of output buffer.").Int()
	verbose     = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()
	interactive = app.Flag("interactive", "Interactive playground (requires a terminal).").Short('i').Bool()
	inputFile   = app.Arg("file", "JSON input file; reads stdin when omitted.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*delimiter, *mapLike); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var in io.Reader = os.Stdin
	name := "stdin"
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
		name = *inputFile
	}

	logger.Debug("encoding",
		zap.String("input", name),
		zap.String("delimiter", *delimiter),
		zap.Bool("map_like", *mapLike))

	out, err := encodeJSON(in, *delimiter, *mapLike, *capacity)
	if err != nil {
		logger.Error("encoding failed", zap.String("input", name), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("encoded", zap.String("input", name), zap.Int("bytes", len(out)))
	fmt.Println(out)
}
