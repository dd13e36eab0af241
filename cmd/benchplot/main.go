// Command benchplot renders the JSONL output of fieldbench as an HTML
// page of per-operation timing curves.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SweepRow mirrors the fieldbench output schema.
type SweepRow struct {
	Op      string `json:"op"`
	Size    int    `json:"size"`
	Reps    int    `json:"reps"`
	MeanUS  int64  `json:"mean_us"`
	TotalUS int64  `json:"total_us"`
}

func main() {
	jsonlPath := flag.String("jsonl", "fieldbench.jsonl", "sweep JSONL input path")
	outPath := flag.String("out", "fieldbench.html", "HTML output path")
	flag.Parse()

	rows, err := readRows(*jsonlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *jsonlPath, err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "no sweep rows in %s\n", *jsonlPath)
		os.Exit(1)
	}

	byOp := make(map[string][]SweepRow)
	for _, r := range rows {
		byOp[r.Op] = append(byOp[r.Op], r)
	}
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	page := components.NewPage().SetPageTitle("Field/Transform/Tree timings")
	for _, op := range ops {
		series := byOp[op]
		sort.Slice(series, func(i, j int) bool { return series[i].Size < series[j].Size })

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: op}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Name: "size"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "mean us"}),
		)
		xs := make([]string, 0, len(series))
		ys := make([]opts.LineData, 0, len(series))
		for _, r := range series {
			xs = append(xs, fmt.Sprintf("%d", r.Size))
			ys = append(ys, opts.LineData{Value: r.MeanUS})
		}
		line.SetXAxis(xs).AddSeries(op, ys)
		page.AddCharts(line)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	if err := page.Render(w); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func readRows(path string) ([]SweepRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows []SweepRow
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var row SweepRow
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, sc.Err()
}
