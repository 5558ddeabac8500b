package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Scusemua/go-utils/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/scusemua/chainmap/common/utils"
	"github.com/scusemua/chainmap/wordcount"
	"github.com/scusemua/chainmap/wordcount/domain"
)

var (
	options      = domain.WordCountOptions{}
	globalLogger = config.GetLogger("")
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)

	// Set default options.
	options.NumResults = domain.DefaultNumResults
	options.Capacity = domain.DefaultCapacity
	options.HashFunction = domain.DefaultHashFunction
	options.TieBreak = domain.DefaultTieBreak
}

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
}

// formatResults renders the ranked results, one per line.
func formatResults(results []wordcount.WordCount) string {
	width := 0
	for _, wc := range results {
		if len(wc.Word) > width {
			width = len(wc.Word)
		}
	}

	var sb strings.Builder
	for rank, wc := range results {
		sb.WriteString(utils.RankStyle.Render(fmt.Sprintf("%d.", rank+1)))
		sb.WriteString(" ")
		sb.WriteString(utils.WordStyle.Width(width).Render(wc.Word))
		sb.WriteString(" ")
		sb.WriteString(utils.CountStyle.Render(fmt.Sprintf("%d", wc.Count)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// count counts the words of the input file and prints the results.
func count() error {
	counter, err := wordcount.NewCounter(options.CounterOptions()...)
	if err != nil {
		return err
	}

	f, err := os.Open(options.Input)
	if err != nil {
		return errors.Wrapf(err, "failed to open input file \"%s\"", options.Input)
	}
	defer f.Close()

	if err = counter.Consume(f); err != nil {
		return err
	}

	results, err := counter.Top(options.NumResults)
	if err != nil {
		return err
	}

	fmt.Print(formatResults(results))

	table := counter.Table()
	if options.Render {
		fmt.Print(table.Render())
	}

	stats := table.Stats()
	globalLogger.Info("Counted %d word(s), %d distinct. Buckets: %d (%d empty, longest chain %d). Load factor: %s.",
		counter.Total(), counter.Distinct(), stats.Capacity, stats.EmptyBuckets, stats.LongestChain,
		stats.LoadFactor.StringFixed(4))

	return nil
}

func main() {
	ValidateOptions()

	if options.PrettyPrintOptions {
		globalLogger.Info("Starting wordcount with the following options:\n%s\n", options.PrettyString(2))
	}

	if err := count(); err != nil {
		globalLogger.Error("%s", utils.ErrorStyle.Render(fmt.Sprintf("Failed to count words: %v", err)))
		os.Exit(1)
	}

	if !options.Watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	globalLogger.Info("Watching \"%s\" for changes. Press Ctrl-C to exit.", options.Input)

	err := wordcount.Watch(ctx, options.Input, func() error {
		globalLogger.Info("Input file changed. Counting again.")
		return count()
	})
	if err != nil {
		globalLogger.Error("%s", utils.ErrorStyle.Render(fmt.Sprintf("Stopped watching \"%s\": %v", options.Input, err)))
		stop()
		os.Exit(1)
	}
}
