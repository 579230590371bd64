package product

import (
	"github.com/managekarlo/backoffice/internal/product/repository"
	"github.com/managekarlo/backoffice/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
