// Command kpi loads one hold file and prints the dashboard payload as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
	excel_parser_service "github.com/init-pkg/rework-tracker/internal/app/excel-parser/service"
	ingest_service "github.com/init-pkg/rework-tracker/internal/app/ingest/service"
	goals_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/goals"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer"
	record_search_service "github.com/init-pkg/rework-tracker/internal/app/record-search/service"
	"github.com/init-pkg/rework-tracker/internal/config"
	"github.com/init-pkg/rework-tracker/internal/events"
	"github.com/init-pkg/rework-tracker/internal/logger"
	memory_store "github.com/init-pkg/rework-tracker/internal/storage/memory"
)

func main() {
	var (
		from        = flag.String("from", "", "first day, YYYY-MM-DD")
		to          = flag.String("to", "", "last day, YYYY-MM-DD")
		locations   = flag.String("locations", "", "comma-separated locations")
		granularity = flag.String("granularity", "month", "cost series bucket: day, week or month")
		pretty      = flag.Bool("pretty", false, "indent the output")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: kpi [flags] <file.csv|file.xlsx>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	cfg.Log.Format = "text"
	log := logger.NewWithWriter(cfg, os.Stderr)

	parser := excel_parser_service.New(cfg, log)
	session := ingest_service.NewSession()
	pipeline := ingest_service.NewPipeline(
		parser,
		header_mapping_service.New(log),
		goals_mapping_service.New(log),
		normalizer.New(log),
	)
	svc := ingest_service.New(
		cfg, log, parser, pipeline, session,
		memory_store.New(),
		events.Noop{},
		record_search_service.New(cfg, log, nil, session),
	)

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, e := svc.Ingest(context.Background(), filepath.Base(path), st.Size(), f)
	if e != nil {
		if out != nil {
			fmt.Fprintln(os.Stderr, out.Notice.Text)
		} else {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}
	for _, w := range out.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	q := dtos.DashboardQuery{From: *from, To: *to, Granularity: *granularity}
	if *locations != "" {
		q.Locations = []string{*locations}
	}
	payload, e := dashboard_service.New(log, session).Build(q)
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
