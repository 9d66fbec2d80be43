package core

import (
	"github.com/arthur-debert/minigrep/pkg/config"
	"github.com/arthur-debert/minigrep/pkg/filesystem"
	"github.com/arthur-debert/minigrep/pkg/loader"
	"github.com/arthur-debert/minigrep/pkg/logging"
	"github.com/arthur-debert/minigrep/pkg/search"
	"github.com/arthur-debert/minigrep/pkg/types"
)

// Options contains everything a single run needs
type Options struct {
	// Args is the full argument list, program name included
	Args     []string
	Settings config.Settings
	// FS defaults to the OS filesystem when nil
	FS types.FS
}

// Run resolves the arguments, loads the file and selects the lines to
// report.
func Run(opts Options) (*types.Report, error) {
	logger := logging.GetLogger("core.run")
	done := logging.LogOperationStart(logger, "search")
	defer done()

	cfg, err := config.FromArgs(opts.Args)
	if err != nil {
		logger.Debug().Err(err).Msg("Argument resolution failed")
		return nil, err
	}
	logger.Debug().
		Str("query", cfg.Query).
		Str("filePath", cfg.FilePath).
		Msg("Config resolved")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	contents, err := loader.Load(fsys, cfg.FilePath, opts.Settings.MaxFileSize)
	if err != nil {
		logger.Debug().Err(err).Str("filePath", cfg.FilePath).Msg("Content load failed")
		return nil, err
	}
	logger.Debug().
		Int("bytes", len(contents)).
		Msg("Content loaded")

	report := &types.Report{
		Query:      cfg.Query,
		FilePath:   cfg.FilePath,
		IgnoreCase: opts.Settings.IgnoreCase,
		Filtered:   opts.Settings.Filter,
	}
	if report.Filtered {
		report.Matches = search.Find(cfg.Query, contents, report.IgnoreCase)
	} else {
		report.Content = contents
		report.Matches = search.Lines(contents)
	}

	logger.Debug().
		Bool("filtered", report.Filtered).
		Int("count", report.Count()).
		Msg("Report ready")
	return report, nil
}
