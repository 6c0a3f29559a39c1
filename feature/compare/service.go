package compare

import (
	"context"

	"photo-manager/core/library"
	"photo-manager/core/reconcile"
	"photo-manager/feature/history"

	"go.uber.org/zap"
)

// Service runs comparisons between a local and a remote scanner.
type Service struct {
	local   reconcile.Scanner
	remote  reconcile.Scanner
	cfg     Config
	history *history.Store
	logger  *zap.Logger
}

// NewService creates a new compare service. The history store may be nil, in
// which case runs are not persisted.
func NewService(local, remote reconcile.Scanner, cfg Config, store *history.Store, logger *zap.Logger) *Service {
	return &Service{
		local:   local,
		remote:  remote,
		cfg:     cfg,
		history: store,
		logger:  logger,
	}
}

// Run scans both sides and compares them with the configured threshold. It
// always rescans, which is what a one-shot CLI invocation wants.
func (s *Service) Run(ctx context.Context) (*reconcile.Report, error) {
	local, remote, err := reconcile.LoadCollections(ctx, s.local, s.remote)
	if err != nil {
		return nil, err
	}
	return s.compare(ctx, local, remote, s.cfg.Threshold)
}

// RunCached compares using the snapshot cache, rescanning only when the
// stored snapshot has expired. The threshold overrides the configured one,
// so serve mode can answer per-request thresholds from a single scan pass.
func (s *Service) RunCached(ctx context.Context, threshold float64) (*reconcile.Report, error) {
	snap, err := reconcile.GetOrBuildSnapshot(ctx, s.local, s.remote, s.cfg.CacheTTL)
	if err != nil {
		return nil, err
	}
	return s.compare(ctx, snap.Local, snap.Remote, threshold)
}

// Invalidate drops the scan snapshot so the next cached run rescans.
func (s *Service) Invalidate() {
	reconcile.InvalidateSnapshot(s.local, s.remote)
}

func (s *Service) compare(ctx context.Context, local, remote library.Collection, threshold float64) (*reconcile.Report, error) {
	result, err := reconcile.Compare(local, remote, threshold)
	if err != nil {
		return nil, err
	}

	report := reconcile.BuildReport(result, threshold)
	s.logger.Info("Comparison finished",
		zap.String("run_id", report.RunID),
		zap.Bool("in_sync", report.InSync),
		zap.Int("local_albums", report.Summary.LocalTotal),
		zap.Int("remote_albums", report.Summary.RemoteTotal),
		zap.Int("mismatches", report.Summary.MismatchCount))

	s.persist(ctx, report)
	return report, nil
}

// persist saves the run when history is available. Persistence failures are
// logged but never fail the comparison itself.
func (s *Service) persist(ctx context.Context, report *reconcile.Report) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, report, s.local.Name(), s.remote.Name()); err != nil {
		s.logger.Warn("Failed to persist comparison run",
			zap.String("run_id", report.RunID),
			zap.Error(err))
	}
}
