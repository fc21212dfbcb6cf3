package repo

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"dippy_dump/internal/adapters"
	"dippy_dump/internal/domain/game"
	"dippy_dump/internal/errors"
)

type GameRepository struct {
	log     *zap.SugaredLogger
	adapter *adapters.AdapterSQL
}

func NewGameRepository(log *zap.SugaredLogger, adapter *adapters.AdapterSQL) *GameRepository {
	return &GameRepository{
		log:     log,
		adapter: adapter,
	}
}

func (g *GameRepository) GetPhasesByGameID(ctx context.Context, gameID int64) ([]game.PhaseRow, error) {
	query := "select id, name, type from gamephase where game_id = " + g.adapter.Placeholder(1) + " order by ordinal"
	g.log.Debugf("%s [%d]", query, gameID)
	rows, err := g.adapter.DB.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, queryFailure("phases of game", gameID, err)
	}
	defer rows.Close()

	var result []game.PhaseRow
	for rows.Next() {
		var id sql.NullInt64
		var name, typ sql.NullString
		if err = rows.Scan(&id, &name, &typ); err != nil {
			return nil, queryFailure("phases of game", gameID, err)
		}
		result = append(result, game.PhaseRow{ID: id.Int64, Name: name.String, Type: typ.String})
	}
	if err = rows.Err(); err != nil {
		return nil, queryFailure("phases of game", gameID, err)
	}
	return result, nil
}

func (g *GameRepository) GetPositionsByPhaseID(ctx context.Context, phaseID int64) ([]game.PositionRow, error) {
	query := "select type, power, province from gameposition where phase_id = " + g.adapter.Placeholder(1)
	g.log.Debugf("%s [%d]", query, phaseID)
	rows, err := g.adapter.DB.QueryContext(ctx, query, phaseID)
	if err != nil {
		return nil, queryFailure("positions of phase", phaseID, err)
	}
	defer rows.Close()

	var result []game.PositionRow
	for rows.Next() {
		var typ, power, province sql.NullString
		if err = rows.Scan(&typ, &power, &province); err != nil {
			return nil, queryFailure("positions of phase", phaseID, err)
		}
		result = append(result, game.PositionRow{Type: typ.String, Power: power.String, Province: province.String})
	}
	if err = rows.Err(); err != nil {
		return nil, queryFailure("positions of phase", phaseID, err)
	}
	return result, nil
}

func (g *GameRepository) GetOrdersByPhaseID(ctx context.Context, phaseID int64) ([]game.OrderRow, error) {
	query := "select text from gameorder where phase_id = " + g.adapter.Placeholder(1)
	g.log.Debugf("%s [%d]", query, phaseID)
	rows, err := g.adapter.DB.QueryContext(ctx, query, phaseID)
	if err != nil {
		return nil, queryFailure("orders of phase", phaseID, err)
	}
	defer rows.Close()

	var result []game.OrderRow
	for rows.Next() {
		var text sql.NullString
		if err = rows.Scan(&text); err != nil {
			return nil, queryFailure("orders of phase", phaseID, err)
		}
		result = append(result, game.OrderRow{Text: text.String})
	}
	if err = rows.Err(); err != nil {
		return nil, queryFailure("orders of phase", phaseID, err)
	}
	return result, nil
}

func queryFailure(what string, id int64, err error) error {
	return fmt.Errorf("select %s %d: %w: %w", what, id, errors.ErrQueryFailure, err)
}
