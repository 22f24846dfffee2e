package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/summary"
	"github.com/spf13/cobra"
)

func newGenerateCmd(verbose *bool) *cobra.Command {
	opts := config.Defaults()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan the notes directory and write the summary file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, *verbose, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.NotesDir, "notesdir", "n", opts.NotesDir, "directory to scan for markdown notes")
	f.StringVarP(&opts.OutputFile, "outputfile", "o", opts.OutputFile, "summary file name, written into the notes directory")
	f.StringVarP(&opts.Format, "format", "f", opts.Format, "summary format: md (mdBook) or git (GitBook)")
	f.StringVarP(&opts.Title, "title", "t", opts.Title, "summary document title")
	f.StringSliceVarP(&opts.Sort, "sort", "s", nil, "chapter titles pinned to the front, in order")
	f.BoolVarP(&opts.MDHeader, "mdheader", "m", opts.MDHeader, "take titles from the first markdown heading")
	f.BoolVarP(&opts.Overwrite, "overwrite", "y", false, "overwrite an existing summary file without asking")

	return cmd
}

func runGenerate(opts config.Options, verbose bool, stdin io.Reader, stdout io.Writer) error {
	log := slog.Default()

	opts.ApplyBookConfig(log)
	if err := opts.Validate(); err != nil {
		return err
	}

	info, err := os.Stat(opts.NotesDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("notes directory %s not found", opts.NotesDir)
	}

	res, err := summary.Generate(opts, log)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprint(stdout, dumpTree(res.Tree, opts.Title))
	}

	outPath := filepath.Join(opts.NotesDir, opts.OutputFile)
	if !opts.Overwrite && fileExists(outPath) {
		if !confirmOverwrite(stdin, stdout, opts.OutputFile) {
			log.Info("aborted, existing file kept", "path", outPath)
			return nil
		}
	}

	if err := os.WriteFile(outPath, []byte(res.Document), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Info("summary written",
		"path", outPath,
		"files", res.Stats.Files,
		"indexes", res.Stats.Indexes,
		"skipped_dirs", res.Stats.Skipped,
	)
	return nil
}

// confirmOverwrite asks before clobbering an existing summary. Enter or
// y confirms, n aborts; anything else re-asks.
func confirmOverwrite(stdin io.Reader, stdout io.Writer, name string) bool {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintf(stdout, "File %s already exists, do you want to overwrite it? [Y/n] ", name)
		if !scanner.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "y":
			return true
		case "n":
			return false
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
