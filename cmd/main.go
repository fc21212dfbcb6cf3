package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dippy_dump/internal/adapters"
	"dippy_dump/internal/bootstrap"
	"dippy_dump/internal/delivery/report"
	"dippy_dump/internal/errors"
	repo "dippy_dump/internal/repository"
	gameuc "dippy_dump/internal/usecase/game"
)

type closer interface {
	Close(ctx context.Context) error
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup configuration:", err)
		os.Exit(1)
	}

	logger := NewLogger(cfg.LogLevel).With("run_id", uuid.New().String())

	if err = newRootCmd(cfg, logger).Execute(); err != nil {
		logger.Errorw("report failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func NewLogger(level string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func newRootCmd(cfg *bootstrap.Config, log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:           "dippy_dump game_<id>.txt",
		Short:         "Print the phases, positions and orders of a droidippy game",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, log, args[0], report.NewWriter(cmd.OutOrStdout()))
		},
	}
}

func run(ctx context.Context, cfg *bootstrap.Config, log *zap.SugaredLogger, filename string, out gameuc.ReportSink) error {
	gameID, err := gameuc.ExtractGameID(filename)
	if err != nil {
		return err
	}
	log.Infof("dumping game %d from %s store", gameID, cfg.DBDriver)

	store, adapter, err := initGameStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	return gameuc.NewReportUseCase(store, log).WriteGameReport(ctx, gameID, out)
}

func initGameStore(ctx context.Context, cfg *bootstrap.Config, log *zap.SugaredLogger) (gameuc.GameStore, closer, error) {
	switch cfg.DBDriver {
	case bootstrap.DriverMongo:
		mongoAdapter := adapters.NewAdapterMongo(cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			return nil, nil, err
		}
		return repo.NewMongoGameRepository(log, mongoAdapter.Database), mongoAdapter, nil
	case bootstrap.DriverPostgres, bootstrap.DriverSQLite:
		sqlAdapter := adapters.NewAdapterSQL(cfg, log)
		if err := sqlAdapter.Init(ctx); err != nil {
			return nil, nil, err
		}
		return repo.NewGameRepository(log, sqlAdapter), sqlAdapter, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownDriver, cfg.DBDriver)
	}
}
