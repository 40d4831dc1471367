// Command vlayout prints the vertex buffer layout of a list of field types.
//
// Usage:
//
//	vlayout [-step vertex|instance] [-record N] [-wgsl Name] [-v] type...
//
// Types use the vertexlayout notation: f32, vec3<f32>, (u32,u32), [4]i32.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/vertexlayout"
)

func main() {
	var (
		step    = flag.String("step", "vertex", "step mode: vertex or instance")
		record  = flag.Uint64("record", 0, "host record size in bytes; strides by it when set")
		wgsl    = flag.String("wgsl", "", "also print a WGSL vertex input struct with this name")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vertexlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode, ok := vertexlayout.ParseStepMode(*step)
	if !ok {
		log.Fatalf("unknown step mode %q", *step)
	}

	fields := make([]vertexlayout.Field, 0, flag.NArg())
	for _, arg := range flag.Args() {
		t, err := vertexlayout.ParseValueType(arg)
		if err != nil {
			log.Fatal(err)
		}
		fields = append(fields, vertexlayout.Field{Type: t})
	}

	var opts []vertexlayout.Option
	if *record > 0 {
		opts = append(opts,
			vertexlayout.WithRecordSize(*record),
			vertexlayout.WithStridePolicy(vertexlayout.StrideRecordSize))
	}

	layout, err := vertexlayout.Build(fields, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if err := printLayout(os.Stdout, layout, mode); err != nil {
		log.Fatal(err)
	}

	if *wgsl != "" {
		src, err := layout.WGSL(*wgsl)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		fmt.Print(src)
	}
}

func printLayout(w io.Writer, layout *vertexlayout.Layout, mode vertexlayout.StepMode) error {
	d := layout.Describe(mode)
	fields := layout.Fields()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tTYPE\tFORMAT\tOFFSET\tSIZE")
	for i, a := range d.Attributes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", a.Slot, fields[i].Type, a.Format, a.Offset, a.Format.Size())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nstride %d, step mode %s, padding %d\n", d.Stride, d.StepMode, layout.Padding())
	return err
}
