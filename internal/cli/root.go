package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/minigrep/internal/version"
	"github.com/arthur-debert/minigrep/pkg/config"
	"github.com/arthur-debert/minigrep/pkg/core"
	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/help"
	"github.com/arthur-debert/minigrep/pkg/logging"
	"github.com/arthur-debert/minigrep/pkg/paths"
	"github.com/arthur-debert/minigrep/pkg/types"
	"github.com/arthur-debert/minigrep/pkg/ui"
)

const (
	flagIgnoreCase  = "ignore-case"
	flagLineNumbers = "line-numbers"
	flagFormat      = "format"
	flagNoHighlight = "no-highlight"
	flagNoFilter    = "no-filter"
	flagNoHeader    = "no-header"
	flagMaxFileSize = "max-file-size"
	flagConfig      = "config"
	flagPrintConfig = "print-config"
	flagTopic       = "topic"
	flagVerbose     = "verbose"

	// printDefaults makes --print-config write the built-in defaults file
	printDefaults = "defaults"
)

type rootFlags struct {
	verbosity   int
	ignoreCase  bool
	lineNumbers bool
	format      string
	noHighlight bool
	noFilter    bool
	noHeader    bool
	maxFileSize int64
	configFile  string
	printConfig string
	topic       string
}

// NewRootCmd creates and returns the root command. The program name is
// prepended to the positional arguments before they are resolved, so
// argv[0] must be passed as programName.
func NewRootCmd(programName string, fsys types.FS) *cobra.Command {
	f := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(f.verbosity, cmd.ErrOrStderr(), paths.New().LogFilePath())
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, append([]string{programName}, args...), fsys)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(versionTemplate())

	flags := rootCmd.Flags()
	flags.CountVarP(&f.verbosity, flagVerbose, "v", MsgFlagVerbose)
	flags.BoolVarP(&f.ignoreCase, flagIgnoreCase, "i", false, MsgFlagIgnoreCase)
	flags.BoolVarP(&f.lineNumbers, flagLineNumbers, "n", false, MsgFlagLineNumbers)
	flags.StringVar(&f.format, flagFormat, "auto", MsgFlagFormat)
	flags.BoolVar(&f.noHighlight, flagNoHighlight, false, MsgFlagNoHighlight)
	flags.BoolVar(&f.noFilter, flagNoFilter, false, MsgFlagNoFilter)
	flags.BoolVar(&f.noHeader, flagNoHeader, false, MsgFlagNoHeader)
	flags.Int64Var(&f.maxFileSize, flagMaxFileSize, 0, MsgFlagMaxFileSize)
	flags.StringVar(&f.configFile, flagConfig, "", MsgFlagConfig)
	flags.StringVar(&f.printConfig, flagPrintConfig, "", MsgFlagPrintConfig)
	flags.Lookup(flagPrintConfig).NoOptDefVal = "toml"
	flags.StringVar(&f.topic, flagTopic, "", MsgFlagTopic)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidArguments, err.Error())
	})

	return rootCmd
}

func run(cmd *cobra.Command, f *rootFlags, tokens []string, fsys types.FS) error {
	out := cmd.OutOrStdout()

	if f.topic != "" {
		return showTopic(out, f.topic)
	}

	if f.printConfig == printDefaults {
		_, err := io.WriteString(out, config.GetDefaultsContent())
		return err
	}

	if f.printConfig == "" {
		// A bad invocation is reported before any config is read.
		if _, err := config.FromArgs(tokens); err != nil {
			return err
		}
	}

	settings, err := config.LoadSettings(config.LoadOptions{
		ConfigFile: f.configFile,
		Flags:      changedSettings(cmd, f),
	})
	if err != nil {
		return err
	}

	if f.printConfig != "" {
		data, err := settings.Marshal(f.printConfig)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	report, err := core.Run(core.Options{Args: tokens, Settings: settings, FS: fsys})
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(settings.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid format")
	}
	renderer, err := ui.NewRenderer(format, out, ui.Options{
		Header:      settings.Header,
		LineNumbers: settings.LineNumbers,
		Highlight:   settings.Highlight,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}

	logger := logging.WithFields(map[string]interface{}{
		"count":  report.Count(),
		"format": format.String(),
	})
	logger.Debug().Msg("Rendering report")
	return renderer.Render(report)
}

// changedSettings maps the flags the user actually set onto setting
// keys, so unset flags never shadow the config file or environment.
func changedSettings(cmd *cobra.Command, f *rootFlags) map[string]interface{} {
	flags := cmd.Flags()
	m := make(map[string]interface{})
	if flags.Changed(flagIgnoreCase) {
		m[config.KeyIgnoreCase] = f.ignoreCase
	}
	if flags.Changed(flagLineNumbers) {
		m[config.KeyLineNumbers] = f.lineNumbers
	}
	if flags.Changed(flagFormat) {
		m[config.KeyFormat] = f.format
	}
	if flags.Changed(flagNoHighlight) {
		m[config.KeyHighlight] = !f.noHighlight
	}
	if flags.Changed(flagNoFilter) {
		m[config.KeyFilter] = !f.noFilter
	}
	if flags.Changed(flagNoHeader) {
		m[config.KeyHeader] = !f.noHeader
	}
	if flags.Changed(flagMaxFileSize) {
		m[config.KeyMaxFileSize] = f.maxFileSize
	}
	return m
}

func showTopic(w io.Writer, name string) error {
	var renderer help.Renderer = &help.PlainRenderer{}
	if file, ok := w.(*os.File); ok && ui.DetectFormat(file) == ui.FormatTerminal {
		renderer = help.NewGlamourRenderer()
	}

	tm, err := help.New(help.Embedded(), help.Options{Renderer: renderer})
	if err != nil {
		return err
	}
	return tm.Show(w, name)
}

func versionTemplate() string {
	return fmt.Sprintf(MsgVersionFormat, version.Version) +
		fmt.Sprintf(MsgCommitFormat, version.Commit) +
		fmt.Sprintf(MsgBuiltFormat, version.Date)
}
