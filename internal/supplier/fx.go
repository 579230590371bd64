package supplier

import (
	"github.com/managekarlo/backoffice/internal/supplier/domain"
	"github.com/managekarlo/backoffice/internal/supplier/service"
	"github.com/managekarlo/backoffice/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.ProvideStore[domain.Supplier]),
	fx.Provide(service.New),
)
