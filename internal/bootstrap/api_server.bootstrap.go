package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marketref/candle-admin/internal/config"
	candleHandler "github.com/marketref/candle-admin/internal/handler/candle/http"
	"github.com/marketref/candle-admin/internal/infrastructure"
	"github.com/marketref/candle-admin/internal/repository"
	"github.com/marketref/candle-admin/internal/service/candle"
	"github.com/marketref/candle-admin/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func StartAPIServer(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := infrastructure.NewPostgresConnection(ctx, config.Env.Database["marketdata"])
	util.ContinueOrFatal(err)
	infrastructure.StartPostgresHealthCheck(ctx, db, config.Env.Database["marketdata"].PingInterval)

	symbolRepo := repository.NewPostgresSymbolRepository(db)
	pairRepo := repository.NewPostgresCurrencyPairRepository(db)
	exchangeRepo := repository.NewPostgresExchangeRepository(db)
	timePeriodRepo := repository.NewPostgresTimePeriodRepository(db)
	configRepo := repository.NewPostgresExchangeConfigurationRepository(db)
	candleRepo := repository.NewPostgresCandleRepository(db)

	resolver := candle.NewResolver(symbolRepo, pairRepo, exchangeRepo, timePeriodRepo)
	candleService := candle.NewCandleService(resolver, candleRepo, pairRepo, exchangeRepo, timePeriodRepo, configRepo)

	candleHTTPHandler := candleHandler.NewCandleHTTPHandler(candleService)
	httpMux := http.NewServeMux()
	candleHTTPHandler.Register(httpMux)

	httpPort := fmt.Sprintf(":%s", config.Env.Port["api_http"])
	httpServer := infrastructure.NewHTTPServerWithConfig(infrastructure.HTTPServerConfig{
		Addr:            httpPort,
		ShutdownTimeout: config.Env.GracefulShutdownTimeout,
	}, httpMux)

	go func() {
		err := httpServer.Start()
		if err != nil {
			logrus.Error(err)
		}
	}()
	logrus.Info(fmt.Sprintf("http server started on %s", httpPort))

	wait := gracefulShutdown(ctx, config.Env.GracefulShutdownTimeout, map[string]operation{
		"database": func(ctx context.Context) error {
			cancel()
			return db.Close()
		},
		"http": func(ctx context.Context) error {
			return httpServer.Shutdown(ctx)
		},
	})

	<-wait
}
