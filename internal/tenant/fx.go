package tenant

import (
	"github.com/managekarlo/backoffice/internal/tenant/domain"
	"github.com/managekarlo/backoffice/internal/tenant/repository"
	"github.com/managekarlo/backoffice/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(s *service.Service) domain.Service { return s }),
	fx.Provide(func(s *service.Service) domain.Numbering { return s }),
)
