package app

import (
	"context"
	"fmt"

	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"

	"github.com/thanhnd-dev/casso-recon/internal/transport/casso"

	"github.com/thanhnd-dev/casso-recon/pkg/uow"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/thanhnd-dev/casso-recon/internal/config"
	"github.com/thanhnd-dev/casso-recon/internal/notify"
	"github.com/thanhnd-dev/casso-recon/internal/pricing"
	"github.com/thanhnd-dev/casso-recon/internal/repository/pgrepo"
	"github.com/thanhnd-dev/casso-recon/internal/service"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with run address %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	cassoClient := casso.NewHTTPClient(a.Config.CassoAPIAddress, a.Config.CassoAPIKey)
	gateway := initGateway(a.Config.AMQPAddress, a.Logger)
	if closer, ok := gateway.(*notify.AMQPGateway); ok {
		defer closer.Close()
	}

	services, sErr := service.Factory(service.FactoryArgs{
		UnitOfWork:    unitOfWork,
		PricingConfig: pricingConfig(a.Config),
		Fetcher:       cassoClient,
		Notifier:      gateway,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		Recon:              services.Recon,
		WebhookSecureToken: a.Config.WebhookSecureToken,
		JWTSecretKey:       []byte(a.Config.JWTOperatorSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := casso.New(services.Recon, cassoClient, a.Logger).
		SetWorkers(5) //nolint:mnd

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// order repo
	orderRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewOrderRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.OrderRepoName), orderRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// processed transaction repo
	processedRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewProcessedTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.ProcessedTransactionRepoName),
		processedRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// match attempt repo
	attemptRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewMatchAttemptRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.MatchAttemptRepoName),
		attemptRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}

// initGateway поднимает AMQP шлюз уведомлений. Сервис уведомлений не
// критичен для сверки: если брокер недоступен, работаем с заглушкой.
func initGateway(amqpURL string, l *logrus.Logger) notify.Gateway {
	if amqpURL == "" {
		return notify.NewNop(l)
	}
	gateway, gErr := notify.NewAMQP(amqpURL, l)
	if gErr != nil {
		l.WithError(gErr).Warn("amqp gateway unavailable, falling back to nop notifier")
		return notify.NewNop(l)
	}
	return gateway
}

func pricingConfig(conf *config.Config) pricing.Config {
	return pricing.Config{
		TaxRate:               decimal.NewFromFloat(conf.TaxRate),
		FlatDeliveryFee:       conf.FlatDeliveryFee,
		FreeDeliveryThreshold: conf.FreeDeliveryThreshold,
	}
}
