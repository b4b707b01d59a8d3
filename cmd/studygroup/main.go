package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/yyyoichi/studygroup"
	"github.com/yyyoichi/studygroup/cmd/studygroup/internal/config"
	"github.com/yyyoichi/studygroup/report"
	"github.com/yyyoichi/studygroup/roster"
	"github.com/yyyoichi/studygroup/store"
)

type params struct {
	in         string
	interest   string
	size       int
	out        string
	xlsx       string
	chart      string
	db         string
	configPath string
	list       bool
}

func main() {
	var p params
	flag.StringVar(&p.in, "in", "", "student roster (.csv or .xlsx) with columns Nama, IPK, Major, Minor")
	flag.StringVar(&p.interest, "interest", "", "target course interest")
	flag.IntVar(&p.size, "size", 0, "members per group (default from config, 3)")
	flag.StringVar(&p.out, "out", "", "write grouped table as CSV")
	flag.StringVar(&p.xlsx, "xlsx", "", "write grouped table as XLSX")
	flag.StringVar(&p.chart, "chart", "", "write distribution charts as HTML")
	flag.StringVar(&p.db, "db", "", "SQLite database recording every run")
	flag.StringVar(&p.configPath, "config", "", "YAML config file")
	flag.BoolVar(&p.list, "list", false, "list runs stored in -db and exit")
	flag.Parse()

	if err := run(context.Background(), p, os.Stdout); err != nil {
		log.Fatalf("studygroup: %v", err)
	}
}

func run(ctx context.Context, p params, stdout io.Writer) error {
	if p.list {
		return listRuns(ctx, p.db, stdout)
	}

	cfg, err := config.Load(p.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if p.in == "" {
		return errors.New("-in is required")
	}
	if !roster.ValidInterest(p.interest) {
		return fmt.Errorf("%w; choose one of %q", studygroup.ErrMissingSelection, cfg.Interests)
	}
	if !cfg.Offers(p.interest) {
		return fmt.Errorf("unknown interest %q; choose one of %q", p.interest, cfg.Interests)
	}
	size := p.size
	if size == 0 {
		size = cfg.GroupSize
	}

	f, err := os.Open(p.in)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	students, err := roster.Read(p.in, f)
	f.Close()
	if err != nil {
		return err
	}
	log.Printf("Loaded %d students from %s\n", len(students), p.in)

	g, err := studygroup.New(cfg.Options()...)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := g.Compute(ctx, students, p.interest, size)
	if err != nil {
		return err
	}
	log.Printf("Formed %d groups of up to %d in %s\n", len(res.Groups), size, time.Since(start))

	if err := report.WriteTable(stdout, res); err != nil {
		return err
	}
	if summaries := report.Summarize(res); summaries != nil {
		fmt.Fprintln(stdout)
		if err := report.WriteSummary(stdout, summaries); err != nil {
			return err
		}
	}

	if p.out != "" {
		if err := writeFile(p.out, func(w io.Writer) error { return roster.WriteCSV(w, res) }); err != nil {
			return err
		}
		log.Printf("Generated: %s\n", p.out)
	}
	if p.xlsx != "" {
		if err := writeFile(p.xlsx, func(w io.Writer) error { return roster.WriteXLSX(w, res) }); err != nil {
			return err
		}
		log.Printf("Generated: %s\n", p.xlsx)
	}
	if p.chart != "" {
		if err := writeFile(p.chart, func(w io.Writer) error { return report.Render(w, res) }); err != nil {
			return err
		}
		log.Printf("Generated: %s\n", p.chart)
	}

	if p.db != "" {
		s, err := store.Open(p.db)
		if err != nil {
			return err
		}
		defer s.Close()
		saved, err := s.Save(ctx, store.Run{
			TargetInterest: p.interest,
			GroupSize:      size,
			ClusterCount:   g.ClusterCount(),
			Seed:           g.Seed(),
		}, res)
		if err != nil {
			return err
		}
		log.Printf("Saved run %s to %s\n", saved.ID, p.db)
	}
	return nil
}

func listRuns(ctx context.Context, path string, stdout io.Writer) error {
	if path == "" {
		return errors.New("-list requires -db")
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	runs, err := s.Runs(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s\t%s\t%q\tsize=%d\tstudents=%d\tgroups=%d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.TargetInterest, r.GroupSize, r.Students, r.Groups)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
