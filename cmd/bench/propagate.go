package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/delaneyj/uiglue/glue"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func runPropagate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String(configKey))
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if cmd.Bool(renderKey) {
		out = os.Stdout
	}

	log.Printf("warming up")
	if err := benchmarkPropagate(cfg.Propagate, io.Discard); err != nil {
		return err
	}
	return benchmarkPropagate(cfg.Propagate, out)
}

// benchmarkPropagate hangs w chains of h computeds off one source, each link
// adding one to the previous, and times a write to the source reaching every
// chain end.
func benchmarkPropagate(cfg propagateConfig, out io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetTitle("glue propagation")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})

			src := glue.New(1)
			ends := 0
			for i := 0; i < w; i++ {
				last, err := chain(src, h)
				if err != nil {
					return err
				}
				last.Subscribe(func(int) {
					ends++
				})
			}

			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}
			if want := w * cfg.Iterations; ends != want {
				return fmt.Errorf("propagate %d * %d: %d chain ends notified, want %d", w, h, ends, want)
			}

			calc := tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("propagate: %d * %d", w, h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
	}

	tbl.Render()
	return nil
}

func chain(src *glue.Observable[int], h int) (*glue.Computed[int], error) {
	read := src.Value
	var last *glue.Computed[int]
	for j := 0; j < h; j++ {
		prev := read
		c, err := glue.NewComputed(glue.NoError(func() int {
			return prev() + 1
		}))
		if err != nil {
			return nil, err
		}
		read = func() int {
			v, _ := c.Value()
			return v
		}
		last = c
	}
	if last == nil {
		return glue.NewComputed(glue.NoError(src.Value))
	}
	return last, nil
}
