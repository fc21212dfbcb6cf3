package game

import (
	"context"

	"go.uber.org/zap"

	"dippy_dump/internal/domain/game"
)

type GameStore interface {
	GetPhasesByGameID(ctx context.Context, gameID int64) ([]game.PhaseRow, error)
	GetPositionsByPhaseID(ctx context.Context, phaseID int64) ([]game.PositionRow, error)
	GetOrdersByPhaseID(ctx context.Context, phaseID int64) ([]game.OrderRow, error)
}

// ReportSink receives the report one section at a time. Flush is called at the
// end of every section and before an error is returned.
type ReportSink interface {
	WritePhase(phase game.Phase) error
	WritePosition(position game.Position) error
	BeginOrders() error
	WriteOrder(order game.Order) error
	Flush() error
}

type ReportUseCase struct {
	store GameStore
	log   *zap.SugaredLogger
}

func NewReportUseCase(store GameStore, log *zap.SugaredLogger) *ReportUseCase {
	return &ReportUseCase{store: store, log: log}
}

// WriteGameReport renders every phase of the game in ordinal order. The first
// error aborts the report; every line rendered before it stays written.
func (r *ReportUseCase) WriteGameReport(ctx context.Context, gameID int64, sink ReportSink) error {
	rows, err := r.store.GetPhasesByGameID(ctx, gameID)
	if err != nil {
		return err
	}
	r.log.Debugf("game %d has %d phase rows", gameID, len(rows))

	for _, row := range rows {
		if row.Blank() {
			continue
		}
		phase, ok := ParsePhase(row)
		if !ok {
			r.log.Warnf("skipping phase row %q", row.Line())
			continue
		}
		if err = r.writePhase(ctx, phase, sink); err != nil {
			// Lines already rendered in the failing section still reach the output.
			_ = sink.Flush()
			return err
		}
	}
	return nil
}

func (r *ReportUseCase) writePhase(ctx context.Context, phase game.Phase, sink ReportSink) error {
	if err := sink.WritePhase(phase); err != nil {
		return err
	}

	positions, err := r.store.GetPositionsByPhaseID(ctx, phase.ID)
	if err != nil {
		return err
	}
	for _, row := range positions {
		if row.Blank() {
			continue
		}
		position, err := ParsePosition(row)
		if err != nil {
			return err
		}
		if err = sink.WritePosition(position); err != nil {
			return err
		}
	}
	if err = sink.Flush(); err != nil {
		return err
	}

	if err = sink.BeginOrders(); err != nil {
		return err
	}
	orders, err := r.store.GetOrdersByPhaseID(ctx, phase.ID)
	if err != nil {
		return err
	}
	for _, row := range orders {
		if row.Blank() {
			continue
		}
		order, err := ParseOrder(row)
		if err != nil {
			return err
		}
		if err = sink.WriteOrder(order); err != nil {
			return err
		}
	}
	if err = sink.Flush(); err != nil {
		return err
	}

	r.log.Debugf("rendered %s: %d positions, %d orders", phase.Header(), len(positions), len(orders))
	return nil
}
