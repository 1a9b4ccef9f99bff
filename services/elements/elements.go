package elements

import (
	"context"
	"elementdata/lib/periodic"
	"elementdata/lib/scrapers/libretexts"
	"elementdata/lib/scrapers/pubchem"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/elements")

type Config struct {
	PubChemUrl    string `json:"pubchem_url"`
	LibreTextsUrl string `json:"libretexts_url"`
	OutputFile    string `json:"output_file"`
}

func DefaultConfig() Config {
	return Config{
		PubChemUrl:    pubchem.DefaultURL,
		LibreTextsUrl: libretexts.DefaultURL,
		OutputFile:    "element_data.json",
	}
}

// Run executes the whole pipeline: periodic table first, covalent
// radii merged on top, output file written only once both sources
// succeeded. Any failure along the way aborts the run; reruns start
// from scratch.
func Run(ctx context.Context, cfg Config) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	table, err := Scrape(ctx, cfg)
	if err != nil {
		return err
	}

	err = WriteFile(cfg.OutputFile, table)
	if err != nil {
		return err
	}
	slog.Info("wrote element data", "file", cfg.OutputFile, "elements", table.Len())

	return nil
}

// Scrape builds the merged table without touching the filesystem.
func Scrape(ctx context.Context, cfg Config) (*periodic.Table, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	table, err := pubchem.NewClient(pubchem.ClientOptions{
		Url: cfg.PubChemUrl,
	}).FetchTable(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("fetched periodic table", "elements", table.Len())

	err = libretexts.NewClient(libretexts.ClientOptions{
		Url: cfg.LibreTextsUrl,
	}).MergeCovalentRadii(ctx, table)
	if err != nil {
		return nil, err
	}
	slog.Info("merged covalent radii")

	return table, nil
}

// WriteFile serializes the table with 2-space indentation, truncating
// any previous output.
func WriteFile(path string, table *periodic.Table) error {
	out, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize element data: %w", err)
	}
	err = os.WriteFile(path, out, 0644)
	if err != nil {
		return fmt.Errorf("write element data: %w", err)
	}
	return nil
}

// ReadFile parses a file previously produced by WriteFile, preserving
// its key order.
func ReadFile(path string) (*periodic.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read element data: %w", err)
	}
	table := periodic.NewTable()
	err = json.Unmarshal(data, table)
	if err != nil {
		return nil, fmt.Errorf("parse element data: %w", err)
	}
	return table, nil
}
