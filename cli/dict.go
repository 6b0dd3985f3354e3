package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nepalirom/gonepali/gonepali"
	"github.com/spf13/cobra"
)

func newDictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect and edit the exception dictionary",
	}

	lookup := &cobra.Command{
		Use:   "lookup WORD",
		Short: "Show the fixed form of a word",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runLookup,
	}

	complete := &cobra.Command{
		Use:   "complete PREFIX",
		Short: "List dictionary words starting with PREFIX",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runComplete,
	}
	complete.Flags().IntP("limit", "n", 10, "Most words to list, 0 for all")

	learn := &cobra.Command{
		Use:   "learn ROMAN DEVANAGARI",
		Short: "Add a word to the user dictionary",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runLearn,
	}
	learn.Flags().String("class", "", "Word classes, comma separated (pronoun, conjunction, copula, postposition, verb-ending, interrogative, particle, inflection)")

	unlearn := &cobra.Command{
		Use:   "unlearn ROMAN",
		Short: "Remove a word from the user dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runUnlearn,
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add the words of a .tsv or .yaml file to the user dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runImport,
	}

	export := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the dictionary to a .tsv or .yaml file, - for stdout as TSV",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runExport,
	}
	export.Flags().Bool("user", false, "Only the user dictionary")

	cmd.AddCommand(lookup, complete, learn, unlearn, importCmd, export)

	return cmd
}

func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	entry, ok := engine.Dictionary().Lookup(args[0])
	if !ok {
		return fmt.Errorf("%q: %w", args[0], gonepali.ErrNotFound)
	}

	return writeEntries(cmd.OutOrStdout(), []gonepali.Entry{entry})
}

func (a *app) runComplete(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	return writeEntries(cmd.OutOrStdout(), engine.Dictionary().Complete(args[0], limit))
}

func (a *app) runLearn(cmd *cobra.Command, args []string) error {
	classFlag, _ := cmd.Flags().GetString("class")
	class, err := gonepali.ParseWordClass(classFlag)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Learn(cmd.Context(), args[0], args[1], class); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Learnt %s => %s\n", args[0], args[1])
	return nil
}

func (a *app) runUnlearn(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Unlearn(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unlearnt %s\n", args[0])
	return nil
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	var entries []gonepali.Entry
	if isYAML(args[0]) {
		entries, err = gonepali.ReadEntriesYAML(file)
	} else {
		entries, err = gonepali.ReadEntriesTSV(file)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	importID, n, err := store.Import(cmd.Context(), entries)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words (import %s)\n", n, importID)
	return nil
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	userOnly, _ := cmd.Flags().GetBool("user")

	var entries []gonepali.Entry
	if userOnly {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err = store.Entries(cmd.Context())
		if err != nil {
			return err
		}
	} else {
		engine, err := a.newEngine()
		if err != nil {
			return err
		}
		entries = engine.Dictionary().Entries()
	}

	if args[0] == "-" {
		return writeEntries(cmd.OutOrStdout(), entries)
	}

	file, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	if isYAML(args[0]) {
		err = gonepali.WriteEntriesYAML(file, entries)
	} else {
		err = gonepali.WriteEntriesTSV(file, entries)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(entries), args[0])
	return file.Close()
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func writeEntries(w io.Writer, entries []gonepali.Entry) error {
	return gonepali.WriteEntriesTSV(w, entries)
}
