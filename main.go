package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"cordicgen/cordic"
	"cordicgen/emit"
	"cordicgen/qformat"
)

var cli struct {
	Niter      int    `short:"N" default:"16" help:"Number of CORDIC iterations (default: 16)"`
	IntBits    *int   `name:"m" help:"Number of integer bits in Qm.n (excluding sign)"`
	FracBits   *int   `name:"n" help:"Number of fractional bits in Qm.n"`
	GenVerilog bool   `short:"V" name:"genverilog" help:"Generate a Verilog module for the LUT"`
	Out        string `default:"rtl/lookup.v" help:"Output path for the generated Verilog"`
	Verbose    bool   `help:"Print debug output"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("cordicgen"),
		kong.Description("Generate the arctan lookup table and gain constant for a CORDIC rotator."))
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	fixed := cli.IntBits != nil && cli.FracBits != nil
	if (cli.IntBits == nil) != (cli.FracBits == nil) {
		log.Warn("Only one of --m and --n was given; listing angles in radians.")
	}
	if cli.GenVerilog && !fixed {
		log.Fatalf("--genverilog requires both --m and --n")
	}
	if cli.GenVerilog && cli.Niter < 1 {
		log.Fatalf("--genverilog requires at least one iteration")
	}

	angles, gain := cordic.Generate(cli.Niter)

	var words []uint32
	var format qformat.Format
	if fixed {
		format = qformat.Format{IntBits: *cli.IntBits, FracBits: *cli.FracBits}
		var err error
		words, err = format.Encode(angles)
		if err != nil {
			log.Fatalf("%v", err)
		}
		for i, w := range words {
			log.Debugf("iter %2d: quantization error %+.3e rad", i, format.Decode(w)-angles[i])
		}
	}

	if err := emit.Report(os.Stdout, angles, gain, words); err != nil {
		log.Fatalf("Could not write report: %v", err)
	}

	if cli.GenVerilog {
		writeVerilog(cli.Out, words, format.TotalBits())
	}
}

func writeVerilog(path string, words []uint32, totalBits int) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Could not create %s: %v", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Could not create %s: %v", path, err)
	}
	if err := emit.Verilog(f, words, totalBits); err != nil {
		f.Close()
		log.Fatalf("Could not write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Could not close %s: %v", path, err)
	}
	if st, err := os.Stat(path); err == nil {
		log.Infof("Wrote %s (%s)", path, humanize.Bytes(uint64(st.Size())))
	} else {
		log.Infof("Wrote %s", path)
	}
}
