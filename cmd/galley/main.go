package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsawler/galley"
	"github.com/tsawler/galley/profile"
	"github.com/tsawler/galley/report"
	"go.uber.org/zap"
)

var (
	jsonOutput  bool
	noAnnotate  bool
	scanAll     bool
	profilePath string
	debugMode   bool
)

var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "galley [files]",
	Short: "Check DOCX manuscripts against the house formatting requirements",
	Long: `Galley checks one or more DOCX manuscripts against a formatting profile:
page geometry, fonts, indents, line spacing, front matter, the reference
list, figure captions and common typographic slips.

Each file gets a report of findings ordered by check. In text mode a copy
of every manuscript with findings is written next to the original, with the
offending paragraphs colored red.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit all findings as one JSON array")
	rootCmd.Flags().BoolVar(&noAnnotate, "no-annotate", false, "do not write annotated copies")
	rootCmd.Flags().BoolVar(&scanAll, "scan-all", false, "report every offending paragraph, not just the first per check")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "path to a YAML style profile")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.SilenceUsage = true
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func runCheck(cmd *cobra.Command, args []string) error {
	var logConfig zap.Config
	if debugMode {
		logConfig = zap.NewDevelopmentConfig()
	} else {
		logConfig = zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logConfig.Encoding = "console"
	rawLogger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer rawLogger.Sync()
	logger = rawLogger.Sugar()

	var prof *profile.Profile
	if profilePath != "" {
		prof, err = profile.Load(profilePath)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		logger.Debugf("loaded profile from %s", profilePath)
	}

	var records []report.Record
	for _, file := range args {
		logger.Debugf("checking %s", file)

		checker := galley.Open(file)
		if prof != nil {
			checker = checker.WithProfile(prof)
		}
		if scanAll {
			checker = checker.ScanAll()
		}

		rep, err := checker.Check()
		if err != nil {
			// One unreadable file must not stop the rest of the batch.
			logger.Warnf("could not check %s: %v", file, err)
			failed := &report.Report{Issues: []report.Issue{report.LoadFailure(err)}}
			reportFile(file, failed, &records)
			continue
		}

		reportFile(file, rep, &records)

		if !jsonOutput && !noAnnotate && len(rep.Flagged()) > 0 {
			dst, aerr := checker.Annotate()
			if aerr != nil {
				logger.Warnf("could not write annotated copy of %s: %v", file, aerr)
				continue
			}
			fmt.Printf("Annotated copy: %s\n", dst)
		}
	}

	if jsonOutput {
		encoded, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Println(string(encoded))
	}

	return nil
}

// reportFile prints one file's report in text mode, or collects its records
// in JSON mode.
func reportFile(file string, rep *report.Report, records *[]report.Record) {
	if jsonOutput {
		*records = append(*records, rep.Records(file)...)
		return
	}
	fmt.Print(rep.FormatText(file))
}
