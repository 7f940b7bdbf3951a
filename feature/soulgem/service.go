package soulgem

import (
	"context"
	"fmt"
	"sync"

	"yastm-generator/core/plugin"
	"yastm-generator/feature/soulgem/filesync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RecordStore loads and saves plugins.
type RecordStore interface {
	LoadMods(ctx context.Context, names []plugin.ModKey) ([]*plugin.Mod, error)
	SaveMod(ctx context.Context, mod *plugin.Mod) error
}

// Options control a generator run.
type Options struct {
	// DryRun skips saving the patch and syncing the configuration file.
	DryRun bool
}

// Outcome describes a finished run.
type Outcome struct {
	// Config is the generated configuration.
	Config []byte `json:"-"`
	// File is the location of the configuration file.
	File string `json:"file"`
	// Sync is the effect on the configuration file; empty for dry runs.
	Sync filesync.Outcome `json:"sync,omitempty"`
	// DryRun is set when nothing was persisted.
	DryRun bool `json:"dry_run"`
	// Report summarizes the run.
	Report Report `json:"report"`
}

// Service runs the generator against the record store.
type Service struct {
	cfg     Config
	records RecordStore
	fs      afero.Fs
	target  filesync.Target
	logger  *zap.Logger

	// mu serializes runs that persist; previews share one run through previews.
	mu       sync.Mutex
	previews singleflight.Group
}

// NewService creates a new soul gem service.
func NewService(cfg Config, records RecordStore, fs afero.Fs, target filesync.Target, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		records: records,
		fs:      fs,
		target:  target,
		logger:  logger,
	}
}

// Generate runs the generator once. Unless opts.DryRun is set, the patch is saved
// when the run changed it and the configuration file is synced.
func (s *Service) Generate(ctx context.Context, opts Options) (*Outcome, error) {
	if opts.DryRun {
		return s.run(ctx, opts)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(ctx, opts)
}

// Preview runs the generator without persisting anything. Concurrent callers
// share a single run, which is detached from the cancellation of the caller that
// started it.
func (s *Service) Preview(ctx context.Context) (*Outcome, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.previews.Do("preview", func() (any, error) {
		return s.run(shared, Options{DryRun: true})
	})
	if err != nil {
		return nil, err
	}
	return v.(*Outcome), nil
}

func (s *Service) run(ctx context.Context, opts Options) (*Outcome, error) {
	names, err := s.loadOrder()
	if err != nil {
		return nil, err
	}

	mods, err := s.records.LoadMods(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	if len(mods) != len(names) {
		return nil, fmt.Errorf("record store returned %d plugins for %d names", len(mods), len(names))
	}
	patch := mods[len(mods)-1]

	s.logger.Info("Generating soul gem configuration",
		zap.Int("plugins", len(mods)),
		zap.String("patch", string(patch.ModKey())),
		zap.Bool("dry_run", opts.DryRun),
	)

	res, err := NewGenerator(plugin.NewLoadOrder(mods...), patch, s.logger).Run()
	if err != nil {
		return nil, err
	}

	name := ConfigFileName(patch.ModKey())
	out := &Outcome{
		Config: res.Config,
		File:   s.target.Location(name),
		DryRun: opts.DryRun,
		Report: res.Report,
	}
	if opts.DryRun {
		return out, nil
	}

	if res.Report.Changed() {
		if err := s.records.SaveMod(ctx, patch); err != nil {
			return nil, fmt.Errorf("failed to save patch: %w", err)
		}
	}

	out.Sync, err = filesync.Sync(ctx, s.target, name, res.Config)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Soul gem configuration synced",
		zap.String("file", out.File),
		zap.String("sync", string(out.Sync)),
		zap.Int("groups", res.Report.Emitted),
		zap.Int("skipped", res.Report.Skipped),
		zap.Int("created", res.Report.Created),
		zap.Int("relinked", res.Report.Relinked),
	)
	return out, nil
}

// loadOrder reads plugins.txt and moves the patch to the end.
func (s *Service) loadOrder() ([]plugin.ModKey, error) {
	f, err := s.fs.Open(s.cfg.LoadOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to open load order: %w", err)
	}
	defer f.Close()

	listed, err := plugin.ParseLoadOrder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read load order %s: %w", s.cfg.LoadOrder, err)
	}

	patch := s.cfg.PatchKey()
	names := make([]plugin.ModKey, 0, len(listed)+1)
	for _, name := range listed {
		if name != patch {
			names = append(names, name)
		}
	}
	return append(names, patch), nil
}
