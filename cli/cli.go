package cli

import (
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"dlis-forge/rp66"
	"dlis-forge/rp66/fixture"
	"dlis-forge/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Merge       *MergeCmd       `arg:"subcommand:merge"`
	}
	InteractiveCmd struct{}
	MergeCmd       struct {
		Strategy string   `arg:"--strategy" default:"many-records" help:"one-record or many-records" placeholder:"many-records"`
		Out      string   `arg:"required" help:"path to destination file" placeholder:"fixture.dlis"`
		Parts    []string `arg:"positional,required" help:"fragment files in merge order" placeholder:"PART"`
		Force    bool     `help:"overwrite the destination file"`
		Verbose  bool     `help:"log merge progress to stderr"`
	}
)

const (
	StrategyOneRecord   = "one-record"
	StrategyManyRecords = "many-records"
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to assemble RP66 (DLIS) test fixtures",
			"by merging fragment files into one well-formed record stream.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func createLogger(verbose bool) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()
	if !verbose {
		logger = logger.Level(zerolog.Disabled)
	}
	return logger
}

func StartMerging(cmd MergeCmd) {
	if cmd.Strategy != StrategyOneRecord && cmd.Strategy != StrategyManyRecords {
		println("Unknown strategy: " + cmd.Strategy)
		println("Please use either " + StrategyOneRecord + " or " + StrategyManyRecords + "!")
		return
	}
	for _, part := range cmd.Parts {
		if !CheckExistence(part) {
			println("Fragment file does not exist: " + part)
			return
		}
	}
	if CheckExistence(cmd.Out) && !cmd.Force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return
	}

	logger := createLogger(cmd.Verbose)
	logger.Info().
		Str("strategy", cmd.Strategy).
		Int("fragments", len(cmd.Parts)).
		Str("out", cmd.Out).
		Msg("merging fragments")

	if first, err := os.ReadFile(cmd.Parts[0]); err == nil && !rp66.IsStorageUnitLabel(first) {
		logger.Warn().
			Str("fragment", cmd.Parts[0]).
			Msg("first fragment does not start with a storage unit label")
	}

	var err error
	switch cmd.Strategy {
	case StrategyOneRecord:
		err = fixture.MergeOneRecord(cmd.Out, cmd.Parts)
	case StrategyManyRecords:
		err = fixture.MergeManyRecords(cmd.Out, cmd.Parts)
	}
	if err != nil {
		logger.Err(err).Msg("merge failed")
		println("Error happened merging fragments: " + err.Error())
		return
	}
	println("Done merging. Please check your result file at: " + cmd.Out)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if (args.Interactive == nil && args.Merge == nil) ||
		args.Interactive != nil {
		ui.Start()
	} else {
		StartMerging(*args.Merge)
	}
}
