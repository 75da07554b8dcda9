package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/thanhnd-dev/casso-recon/internal/pricing"
	"github.com/thanhnd-dev/casso-recon/pkg/uow"
)

type AppServices struct {
	Recon *ReconService
}

type FactoryArgs struct {
	UnitOfWork    uow.UOW
	PricingConfig pricing.Config
	Fetcher       TransactionFetcher
	Notifier      Notifier
	Logger        *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	reconService, reconErr := NewReconService(
		args.UnitOfWork,
		pricing.New(args.PricingConfig),
		args.Fetcher,
		args.Notifier,
		args.Logger,
	)
	if reconErr != nil {
		return nil, fmt.Errorf("service factory: %s", reconErr.Error())
	}

	return &AppServices{
		Recon: reconService,
	}, nil
}
