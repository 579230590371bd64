package stock

import (
	"github.com/managekarlo/backoffice/internal/stock/repository"
	"github.com/managekarlo/backoffice/internal/stock/service"
	"go.uber.org/fx"
)

var Module = fx.Module("stock.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
