package expense

import (
	"github.com/managekarlo/backoffice/internal/expense/domain"
	"github.com/managekarlo/backoffice/internal/expense/service"
	"github.com/managekarlo/backoffice/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.ProvideStore[domain.Expense]),
	fx.Provide(service.New),
)
