// Command viewer inspects a running instance's database in read-only
// mode: registered projects, their algorithms and the latest
// predictions, rendered as tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"predict-lab/domain"
	"predict-lab/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	Colours        bool   `envconfig:"VIEWER_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	limit := flag.Int("limit", 10, "Predictions to show per project")
	flag.Parse()

	db, err := openReadOnly(cfg.BadgerFilepath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	projects, err := repositories.NewProjectRepository(db, quiet, 16)
	if err != nil {
		log.Fatalf("Failed to build repository: %v", err)
	}
	predictions := repositories.NewPredictionRepository(db, quiet)

	all, err := projects.ReadAllProjects()
	if err != nil {
		log.Fatalf("Failed to read projects: %v", err)
	}

	printHeader(cfg, fmt.Sprintf("Projects (%d)", len(all)))
	renderProjects(all)

	for _, project := range all {
		recent, err := predictions.RecentPredictions(project.ID, *limit)
		if err != nil {
			log.Fatalf("Failed to read predictions for %s: %v", project.ID, err)
		}
		printHeader(cfg, fmt.Sprintf("Latest predictions: %s (%d)", project.Name, len(recent)))
		renderPredictions(recent)
	}
}

func openReadOnly(path string) (*badger.DB, error) {
	// BypassLockGuard allows opening while the server holds the lock.
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

func printHeader(cfg Config, title string) {
	if cfg.Colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	fmt.Println()
	fmt.Println(title)
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderProjects(projects []domain.Project) {
	table := newTable([]string{"ID", "Name", "Problem", "Features", "Labels", "Algorithms", "Policy"})
	for _, p := range projects {
		table.Append([]string{
			shortID(p.ID),
			p.Name,
			string(p.Config.Problem),
			fmt.Sprintf("%d x %s", p.Config.FeatureSize, p.Config.FeatureClass),
			strings.Join(p.Config.LabelSet, ","),
			fmt.Sprintf("%d", len(p.Algorithms)),
			string(p.Policy.Kind),
		})
	}
	table.Render()
}

func renderPredictions(predictions []domain.Prediction) {
	table := newTable([]string{"ID", "Algorithm", "Labels", "At"})
	for _, p := range predictions {
		labels := lo.Map(p.Labels, func(l domain.Label, _ int) string {
			return fmt.Sprintf("%s:%.2f", l.Name, l.Score)
		})
		table.Append([]string{
			shortID(p.ID.String()),
			shortID(p.AlgorithmID),
			strings.Join(labels, " "),
			p.At.Format("15:04:05"),
		})
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
