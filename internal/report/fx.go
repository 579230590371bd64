package report

import (
	"github.com/managekarlo/backoffice/internal/report/repository"
	"github.com/managekarlo/backoffice/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
