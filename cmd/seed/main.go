// Command seed generates a fake hold dataset as CSV and optionally stores it as the
// held snapshot.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/config"
	"github.com/init-pkg/rework-tracker/internal/logger"
	"github.com/init-pkg/rework-tracker/internal/storage"
)

var (
	dispositions = []string{"Rework", "Scrap", "Release", "Rework", "Hold"}
	rootCauses   = []string{"Mislabel", "Seal failure", "Foreign material", "Underweight", "Damaged case", ""}
	locations    = []string{"North Plant", "South Plant", "East Plant"}
	itemTypes    = []string{"Finished Good", "Semi-Finished", "Packaging"}
)

var csvHeader = []string{
	"MfgOrd", "Production Date", "Hold Date", "Item Description", "Item Type",
	"Disposition", "Plant Name", "Root Cause", "Cases Produced", "Cases Reworked", "Cost",
}

func main() {
	var (
		count = flag.Int("n", 500, "number of records")
		out   = flag.String("out", "seed.csv", "CSV output path; empty skips the file")
		store = flag.Bool("store", false, "save the dataset as the held snapshot")
		seed  = flag.Int64("seed", 0, "random seed; 0 picks one")
	)
	flag.Parse()

	gofakeit.Seed(*seed)
	records := generate(*count, time.Now())

	if *out != "" {
		if err := writeCSV(*out, records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d records to %s\n", len(records), *out)
	}

	if *store {
		if err := saveSnapshot(records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func generate(n int, now time.Time) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, n)
	for range n {
		produced := gofakeit.Number(10, 2000)
		disposition := gofakeit.RandomString(dispositions)
		reworked := 0
		if disposition == "Rework" {
			reworked = gofakeit.Number(0, produced)
		}
		cost := gofakeit.Price(50, 25_000)
		held := now.AddDate(0, 0, -gofakeit.Number(0, 365))

		r := models.CanonicalRecord{
			WorkOrderID:    strconv.Itoa(gofakeit.Number(100000, 999999)),
			ProductionDate: held.AddDate(0, 0, -gofakeit.Number(0, 5)).Format("2006-01-02"),
			HoldDate:       held.Format("2006-01-02"),
			Description:    gofakeit.ProductName(),
			ItemType:       gofakeit.RandomString(itemTypes),
			Disposition:    disposition,
			Location:       gofakeit.RandomString(locations),
			RootCause:      gofakeit.RandomString(rootCauses),
			CasesProduced:  produced,
			CasesReworked:  reworked,
			Cost:           cost,
			CostImpact:     cost,
		}
		switch disposition {
		case "Rework":
			r.CostRework = cost
		case "Scrap":
			r.CostScrap = cost
		}
		records = append(records, r)
	}
	return records
}

func writeCSV(path string, records []models.CanonicalRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.WorkOrderID, r.ProductionDate, r.HoldDate, r.Description, r.ItemType,
			r.Disposition, r.Location, r.RootCause,
			strconv.Itoa(r.CasesProduced), strconv.Itoa(r.CasesReworked),
			strconv.FormatFloat(r.Cost, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func saveSnapshot(records []models.CanonicalRecord) error {
	cfg := config.MustLoad()
	log := logger.New(cfg)
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	blob, err := json.Marshal(models.Snapshot{
		BatchID:  uuid.NewString(),
		Source:   "seed",
		LoadedAt: time.Now(),
		Records:  records,
		Goals:    models.DefaultGoals(),
	})
	if err != nil {
		return err
	}
	if err := store.Set(ctx, cfg.Ingest.StorageKey, blob); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	log.Info("snapshot stored", "driver", cfg.Store.Driver, "records", len(records))
	return nil
}
