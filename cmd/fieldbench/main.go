// Command fieldbench sweeps the library's bulk operations over a range
// of transform and tree sizes and records wall-clock timings as JSONL
// and CSV, for plotting with benchplot.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tuneinsight/lattigo/v4/utils"

	"stark-math/field"
	"stark-math/internal/logger"
	"stark-math/merkle"
	"stark-math/ntt"
	"stark-math/poly"
	"stark-math/prof"
)

const (
	defaultSizesSpec  = "1024,4096,16384,65536,262144"
	defaultLeavesSpec = "1024,4096,16384,65536"
	defaultJSONLPath  = "fieldbench.jsonl"
	defaultCSVPath    = "fieldbench.csv"
)

// SweepRow is one timed operation at one size.
type SweepRow struct {
	Op      string `json:"op"`
	Size    int    `json:"size"`
	Reps    int    `json:"reps"`
	MeanUS  int64  `json:"mean_us"`
	TotalUS int64  `json:"total_us"`
}

func main() {
	sizesSpec := flag.String("sizes", defaultSizesSpec, "comma-separated transform sizes (powers of two)")
	leavesSpec := flag.String("leaves", defaultLeavesSpec, "comma-separated Merkle leaf counts")
	reps := flag.Int("reps", 5, "repetitions per measurement")
	seed := flag.String("seed", "fieldbench", "PRNG seed string for reproducible inputs")
	jsonlPath := flag.String("jsonl", defaultJSONLPath, "JSONL output path")
	csvPath := flag.String("csv", defaultCSVPath, "CSV output path")
	flag.Parse()

	log := logger.Logger()

	sizes, err := parseSizes(*sizesSpec)
	if err != nil {
		fatalf("parse -sizes: %v", err)
	}
	leaves, err := parseSizes(*leavesSpec)
	if err != nil {
		fatalf("parse -leaves: %v", err)
	}

	prng, err := utils.NewKeyedPRNG([]byte(*seed))
	if err != nil {
		fatalf("init PRNG: %v", err)
	}

	var rows []SweepRow
	for _, n := range sizes {
		log.Info().Int("size", n).Msg("transform sweep")
		vec, err := field.RandomElements(prng, n)
		if err != nil {
			fatalf("sample input: %v", err)
		}
		for r := 0; r < *reps; r++ {
			start := time.Now()
			fwd, err := ntt.Forward(vec)
			prof.Track(start, "ntt/forward")
			if err != nil {
				fatalf("forward size %d: %v", n, err)
			}
			start = time.Now()
			if _, err := ntt.Inverse(fwd); err != nil {
				fatalf("inverse size %d: %v", n, err)
			}
			prof.Track(start, "ntt/inverse")

			f := poly.New(vec[:n/2])
			g := poly.New(vec[n/2:])
			start = time.Now()
			_ = f.Mul(g)
			prof.Track(start, "poly/mul")
		}
		rows = append(rows, snapshotRows(n, *reps)...)
	}

	for _, n := range leaves {
		log.Info().Int("leaves", n).Msg("merkle sweep")
		vec, err := field.RandomElements(prng, n)
		if err != nil {
			fatalf("sample leaves: %v", err)
		}
		data := make([][]byte, n)
		for i, e := range vec {
			data[i] = e.Encode()
		}
		for r := 0; r < *reps; r++ {
			start := time.Now()
			tree, err := merkle.New(nil, data)
			prof.Track(start, "merkle/build")
			if err != nil {
				fatalf("build tree: %v", err)
			}
			start = time.Now()
			path, err := tree.Open(n / 2)
			prof.Track(start, "merkle/open")
			if err != nil {
				fatalf("open: %v", err)
			}
			start = time.Now()
			ok, err := merkle.Verify(nil, tree.Root(), data[n/2], path.Index, path.Siblings)
			prof.Track(start, "merkle/verify")
			if err != nil || !ok {
				fatalf("verify failed (ok=%v err=%v)", ok, err)
			}
		}
		rows = append(rows, snapshotRows(n, *reps)...)
	}

	if err := writeJSONL(*jsonlPath, rows); err != nil {
		fatalf("write jsonl: %v", err)
	}
	if err := writeCSV(*csvPath, rows); err != nil {
		fatalf("write csv: %v", err)
	}
	log.Info().Int("rows", len(rows)).Str("jsonl", *jsonlPath).Str("csv", *csvPath).Msg("sweep done")
}

func snapshotRows(size, reps int) []SweepRow {
	entries := prof.SnapshotAndReset()
	out := make([]SweepRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, SweepRow{
			Op:      e.Label,
			Size:    size,
			Reps:    reps,
			MeanUS:  e.Mean().Microseconds(),
			TotalUS: e.Total.Microseconds(),
		})
	}
	return out
}

func parseSizes(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if n <= 0 || n&(n-1) != 0 {
			return nil, fmt.Errorf("size %d is not a power of two", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty size list")
	}
	return out, nil
}

func writeJSONL(path string, rows []SweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, rows []SweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"op", "size", "reps", "mean_us", "total_us"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.Op,
			strconv.Itoa(row.Size),
			strconv.Itoa(row.Reps),
			strconv.FormatInt(row.MeanUS, 10),
			strconv.FormatInt(row.TotalUS, 10),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
