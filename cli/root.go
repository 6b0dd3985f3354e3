package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nepalirom/gonepali/gonepali"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by all commands
type app struct {
	configPath string
	dbPath     string
	logLevel   string
	noUserDict bool
	noCache    bool
	workers    int

	cfg Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gonepali [text...]",
		Short: "Romanized Nepali to Devanagari",
		Long: "Transliterates Romanized Nepali into Devanagari. Text comes from the arguments, " +
			"or from stdin one line at a time when there are none.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		RunE: a.runTransliterate,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file (default: $GONEPALI_CONFIG or ~/.config/gonepali/config.yaml)")
	flags.StringVarP(&a.dbPath, "db", "d", "", "User dictionary path (default from config, else $GONEPALI_DICT)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&a.noUserDict, "no-user-dict", false, "Use the built-in dictionary only")
	flags.BoolVar(&a.noCache, "no-cache", false, "Disable the word cache")

	root.AddCommand(newBatchCmd(a), newDictCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}

	if a.dbPath != "" {
		cfg.DictionaryPath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.noCache {
		cfg.DisableCache = true
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	return nil
}

func (a *app) openStore() (*gonepali.DictStore, error) {
	store, err := gonepali.OpenDictStore(a.cfg.DictionaryPath, a.log)
	if err != nil {
		return nil, fmt.Errorf("open user dictionary: %w", err)
	}
	return store, nil
}

// newEngine builds the engine with the user dictionary layered over
// the built-in one
func (a *app) newEngine() (*gonepali.Engine, error) {
	opts := []gonepali.Option{
		gonepali.WithLogger(a.log),
		gonepali.WithCache(!a.cfg.DisableCache),
		gonepali.WithWorkers(a.cfg.Workers),
	}

	if !a.noUserDict {
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()
		opts = append(opts, gonepali.WithEntrySource(store))
	}

	return gonepali.New(opts...)
}

func (a *app) runTransliterate(cmd *cobra.Command, args []string) error {
	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) > 0 {
		_, err := fmt.Fprintln(out, engine.Transliterate(strings.Join(args, " ")))
		return err
	}

	return transliterateLines(engine, cmd.InOrStdin(), out)
}

func transliterateLines(engine *gonepali.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	w := bufio.NewWriter(out)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, engine.Transliterate(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return w.Flush()
}
