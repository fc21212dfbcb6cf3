package game_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dippy_dump/internal/delivery/report"
	"dippy_dump/internal/domain/game"
	errors2 "dippy_dump/internal/errors"
	gameuc "dippy_dump/internal/usecase/game"
)

type fakeStore struct {
	phases    []game.PhaseRow
	positions map[int64][]game.PositionRow
	orders    map[int64][]game.OrderRow
	err       error
	calls     []string
}

func (f *fakeStore) GetPhasesByGameID(ctx context.Context, gameID int64) ([]game.PhaseRow, error) {
	f.calls = append(f.calls, "phases")
	return f.phases, nil
}

func (f *fakeStore) GetPositionsByPhaseID(ctx context.Context, phaseID int64) ([]game.PositionRow, error) {
	f.calls = append(f.calls, "positions")
	return f.positions[phaseID], nil
}

func (f *fakeStore) GetOrdersByPhaseID(ctx context.Context, phaseID int64) ([]game.OrderRow, error) {
	f.calls = append(f.calls, "orders")
	if f.err != nil {
		return nil, f.err
	}
	return f.orders[phaseID], nil
}

func writeReport(t *testing.T, store *fakeStore) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := gameuc.NewReportUseCase(store, zap.NewNop().Sugar()).WriteGameReport(context.Background(), 1, report.NewWriter(&buf))
	return buf.String(), err
}

func TestWriteGameReportSinglePhase(t *testing.T) {
	store := &fakeStore{
		phases: []game.PhaseRow{{ID: 1, Name: "Spring, 1901 Movement", Type: "Movement"}},
		positions: map[int64][]game.PositionRow{
			1: {{Type: "Army", Power: "France", Province: "Par"}},
		},
		orders: map[int64][]game.OrderRow{
			1: {{Text: "Par: Army Par-Bur"}},
		},
	}

	out, err := writeReport(t, store)
	require.NoError(t, err)
	assert.Equal(t, "PHASE 1901 Spring Movement\nPOSITIONS\nFrance: Army Par\nORDERS\nPar-Bur\n", out)
	assert.Equal(t, []string{"phases", "positions", "orders"}, store.calls)
}

func TestWriteGameReportPhasesInStoreOrder(t *testing.T) {
	store := &fakeStore{
		phases: []game.PhaseRow{
			{ID: 10, Name: "Spring, 1901 Movement", Type: "Movement"},
			{},
			{ID: 11, Name: "not a phase", Type: "Movement"},
			{ID: 12, Name: "Fall, 1901 Movement", Type: "Movement"},
			{ID: 13, Name: "Winter, 1901 Adjustment", Type: "Adjustment"},
		},
		positions: map[int64][]game.PositionRow{
			10: {{Type: "Fleet", Power: "England", Province: "Lon"}, {}, {Type: "Fleet", Power: "France", Province: "Bre"}},
			12: {{Type: "Fleet", Power: "England", Province: "nwg"}},
			13: {{Type: "Fleet", Power: "France", Province: "mao"}},
		},
		orders: map[int64][]game.OrderRow{
			10: {{Text: "Lon: Fleet Lon-nwg"}, {Text: "   "}, {Text: "Bre: Fleet Bre-mao"}},
			13: {{Text: "Par: build Army Par"}},
		},
	}

	out, err := writeReport(t, store)
	require.NoError(t, err)
	assert.Equal(t, `PHASE 1901 Spring Movement
POSITIONS
England: Fleet Lon
France: Fleet Bre
ORDERS
Lon-nrg
Bre-mid
PHASE 1901 Fall Movement
POSITIONS
England: Fleet nrg
ORDERS
PHASE 1901 Winter Adjustment
POSITIONS
France: Fleet mid
ORDERS
build Army Par
`, out)
	assert.Equal(t, []string{"phases", "positions", "orders", "positions", "orders", "positions", "orders"}, store.calls)

	blocks, err := report.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "Winter", blocks[2].Phase.Season)
	assert.Equal(t, []game.Position{{Power: "France", UnitType: "Fleet", Province: "mid"}}, blocks[2].Positions)
	assert.Equal(t, "build Army Par", blocks[2].Orders[0].String())
}

func TestWriteGameReportStopsOnUnparseableLine(t *testing.T) {
	store := &fakeStore{
		phases: []game.PhaseRow{
			{ID: 1, Name: "Spring, 1901 Movement", Type: "Movement"},
			{ID: 2, Name: "Fall, 1901 Movement", Type: "Movement"},
		},
		positions: map[int64][]game.PositionRow{
			1: {{Type: "Army", Power: "France", Province: "Par"}},
		},
		orders: map[int64][]game.OrderRow{
			1: {{Text: "Par Army Par-Bur"}},
		},
	}

	out, err := writeReport(t, store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors2.ErrUnparseableLine))
	assert.Contains(t, err.Error(), "Par Army Par-Bur")
	assert.Equal(t, "PHASE 1901 Spring Movement\nPOSITIONS\nFrance: Army Par\nORDERS\n", out)
	assert.Equal(t, []string{"phases", "positions", "orders"}, store.calls)
}

func TestWriteGameReportKeepsLinesBeforeFailingPosition(t *testing.T) {
	store := &fakeStore{
		phases: []game.PhaseRow{{ID: 1, Name: "Spring, 1901 Movement", Type: "Movement"}},
		positions: map[int64][]game.PositionRow{
			1: {
				{Type: "Army", Power: "France", Province: "Par"},
				{Type: "Army", Power: "Great Britain", Province: "Lon"},
			},
		},
	}

	out, err := writeReport(t, store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors2.ErrUnparseableLine))
	assert.Equal(t, "PHASE 1901 Spring Movement\nPOSITIONS\nFrance: Army Par\n", out)
	assert.Equal(t, []string{"phases", "positions"}, store.calls)
}

func TestWriteGameReportQueryFailure(t *testing.T) {
	store := &fakeStore{
		phases: []game.PhaseRow{{ID: 1, Name: "Spring, 1901 Movement", Type: "Movement"}},
		err:    errors2.ErrQueryFailure,
	}

	_, err := writeReport(t, store)
	assert.True(t, errors.Is(err, errors2.ErrQueryFailure))
}

func TestWriteGameReportNoPhases(t *testing.T) {
	out, err := writeReport(t, &fakeStore{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
