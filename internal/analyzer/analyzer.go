package analyzer

import (
	"fmt"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/core/model"
	"github.com/penwyp/go-uptime-chart/internal/data/aggregator"
	"github.com/penwyp/go-uptime-chart/internal/data/parser"
	"github.com/penwyp/go-uptime-chart/internal/data/source"
	"github.com/penwyp/go-uptime-chart/internal/presentation/display"
	"github.com/penwyp/go-uptime-chart/internal/presentation/formatter"
	"github.com/penwyp/go-uptime-chart/internal/presentation/layout"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

type Config struct {
	// SourceCommand is the command whose output is parsed.
	SourceCommand string
	// InputFile, when set, replays captured output instead of running the
	// command.
	InputFile string
	// OutputFormat selects chart, json, csv or summary.
	OutputFormat string
	// NoColor forces the styler off even on a terminal.
	NoColor bool
}

// Analyzer runs the whole pipeline: acquire lines, parse records, merge
// intervals, aggregate slots, shape and format the report. Each run
// recomputes the full history; there is no state between runs.
type Analyzer struct {
	config     *Config
	source     source.LogSource
	parser     *parser.Parser
	aggregator *aggregator.SlotAggregator
}

func New(config *Config) *Analyzer {
	if config.SourceCommand == "" {
		config.SourceCommand = source.DefaultCommand
	}

	var src source.LogSource
	if config.InputFile != "" {
		src = source.NewFileSource(config.InputFile)
	} else {
		src = source.NewCommandSource(config.SourceCommand)
	}

	return &Analyzer{
		config:     config,
		source:     src,
		parser:     parser.NewParser(util.GetTimeProvider().Location()),
		aggregator: aggregator.NewSlotAggregator(),
	}
}

// Report runs the pipeline up to the shaped report, without printing.
func (a *Analyzer) Report() (*layout.Report, error) {
	startTime := time.Now()
	util.LogDebug("Starting uptime analysis")

	// Phase 1: acquire raw lines
	lines, err := a.source.Lines()
	if err != nil {
		return nil, err
	}

	// Phase 2: parse records
	parseStart := time.Now()
	intervals, err := a.parser.ParseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("'%s' returned no parsable output: %w", a.source, err)
	}
	util.LogDebugf("Phase 2 - Parsed %d records in %v", len(intervals), time.Since(parseStart))

	// Phase 3: merge overlapping intervals
	mergeStart := time.Now()
	merged := model.Merge(intervals)
	util.LogDebugf("Phase 3 - Merged %d records into %d intervals in %v",
		len(intervals), len(merged), time.Since(mergeStart))

	// Phase 4: aggregate into half-hour slots
	agg, err := a.aggregator.Aggregate(merged)
	if err != nil {
		return nil, err
	}

	// Phase 5: shape the report
	report := layout.BuildReport(agg)

	util.LogDebugf("Analysis completed in %v", time.Since(startTime))
	return report, nil
}

// Run executes the pipeline and prints the report in the configured format.
func (a *Analyzer) Run() error {
	report, err := a.Report()
	if err != nil {
		return err
	}

	styler := display.NewStyler(!a.config.NoColor && display.StdoutIsTerminal())
	f, err := formatter.New(a.config.OutputFormat, styler)
	if err != nil {
		return err
	}
	return f.Format(report)
}
