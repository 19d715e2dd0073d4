package app

import (
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/emailextract/internal/extract"
	"github.com/hyperifyio/emailextract/internal/source"
)

// App runs the open, scan, dedupe and write steps once, in that order,
// stopping at the first failure.
type App struct {
	cfg    Config
	rep    *Reporter
	src    source.Options
	policy extract.Policy
	stat   func(string) (int64, error)
}

// New validates cfg and prepares a run that reports progress to rep.
func New(cfg Config, rep *Reporter) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	format, _ := source.ParseFormat(cfg.Format)
	policy, _ := extract.ParsePolicy(cfg.Dedupe)
	return &App{
		cfg:    cfg,
		rep:    rep,
		src:    source.Options{Format: format, Encoding: cfg.Encoding, Path: cfg.InputPath},
		policy: policy,
		stat:   extract.Stat,
	}, nil
}

// Run executes the pipeline. Errors are *extract.Error values whose Kind
// names the failing step.
func (a *App) Run() error {
	matches, err := a.collect()
	if err != nil {
		return err
	}

	deduped := extract.Dedupe(matches, a.policy)
	log.Debug().Int("matches", len(matches)).Int("kept", len(deduped)).Str("policy", string(a.policy)).Msg("deduped")
	a.rep.Extracted(len(deduped))

	a.rep.Writing()
	if err := extract.Write(a.cfg.OutputPath, deduped); err != nil {
		return err
	}
	a.rep.Written(a.cfg.OutputPath)
	a.rep.Blank()
	return nil
}

// collect opens the input, reports its metadata and scans it. The input file
// is closed before collect returns on every path.
func (a *App) collect() ([]string, error) {
	in := a.cfg.InputPath
	f, err := extract.Open(in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a.rep.InputPath(in)
	size, err := a.stat(in)
	if err != nil {
		return nil, err
	}
	a.rep.InputInfo(size, a.cfg.OutputPath)

	a.rep.Extracting()
	log.Debug().Str("input", in).Str("format", string(a.src.Resolve())).Str("encoding", a.src.Encoding).Msg("scanning")
	r, err := source.NewReader(f, a.src)
	if err != nil {
		return nil, &extract.Error{Kind: extract.ScanFailed, Path: in, Err: err}
	}
	return extract.Scan(r)
}
