package components

import (
	"log/slog"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"
	"staymarket/internal/infra/notify"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/config"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRefundPolicy,
	NewRetryConfig,
	fx.Annotate(
		NewNotifier,
		fx.As(new(shared.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSettlementCommands,
		commands.NewIntakeCommands,
		NewQuotaCommands,
		commands.NewFeeConfigCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewLedgerQueries,
		queries.NewQuotaQueries,
		queries.NewFeeConfigQueries,
	),
)

func NewRefundPolicy(cfg config.Config) (*refund.Policy, error) {
	cancelPct, err := decimal.NewFromString(cfg.Settlement.RefundCancelFeePercent)
	if err != nil {
		return nil, err
	}
	latePct, err := decimal.NewFromString(cfg.Settlement.RefundLateFeePercent)
	if err != nil {
		return nil, err
	}
	adminPct, err := decimal.NewFromString(cfg.Settlement.RefundAdminPercent)
	if err != nil {
		return nil, err
	}
	return refund.NewPolicy(
		cfg.Settlement.RefundFreeCancelDays,
		cfg.Settlement.RefundLateCancelDays,
		cancelPct, latePct, adminPct,
	)
}

func NewRetryConfig(cfg config.Config) shared.RetryConfig {
	return shared.RetryConfig{
		MaxRetries: cfg.Settlement.MaxRetries,
		BaseWait:   cfg.Settlement.RetryBaseWait,
	}
}

func NewNotifier(lc fx.Lifecycle, logger *slog.Logger) *notify.LogNotifier {
	n := notify.NewLogNotifier(logger)
	lc.Append(fx.StopHook(n.Close))
	return n
}

func NewSettlementCommands(
	bookings shared.BookingStore,
	ledgers shared.LedgerStore,
	feeConfig shared.FeeConfigStore,
	refundPolicy *refund.Policy,
	notifier shared.Notifier,
	clk clock.Clock,
	retry shared.RetryConfig,
	cfg config.Config,
) commands.SettlementCommands {
	return commands.NewSettlementCommands(
		bookings, ledgers, feeConfig, refundPolicy, notifier, clk, retry,
		cfg.Settlement.AutoConfirmWindow,
	)
}

func NewQuotaCommands(
	quotas shared.QuotaStore,
	ledgers shared.LedgerStore,
	clk clock.Clock,
	retry shared.RetryConfig,
	cfg config.Config,
) (commands.QuotaCommands, error) {
	slotPrice, err := money.Parse(cfg.Quota.SlotPriceAmount, money.Currency(cfg.Quota.SlotPriceCurrency))
	if err != nil {
		return nil, err
	}
	return commands.NewQuotaCommands(
		quotas, ledgers, clk, retry,
		slotPrice, cfg.Quota.DefaultListingLimit,
	), nil
}
