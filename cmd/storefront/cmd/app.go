package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/config"
	kvinfra "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/infra/repository"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/logs"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/metrics"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/persistence"
	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/usecase"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// 1コマンド分の依存一式
type runtime struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Store    *store.Store
	Client   *api.Client
	Tokens   *persistence.TokenStore

	Session  *usecase.SessionUsecase
	Catalog  *usecase.CatalogUsecase
	Cart     *usecase.CartUsecase
	Checkout *usecase.CheckoutUsecase
	Orders   *usecase.OrderUsecase
}

type configPath string

func modules(path string) fx.Option {
	return fx.Options(
		fx.Supply(configPath(path)),
		injectInfra(),
		injectState(),
		injectUsecase(),
		fx.Invoke(attachPersistence),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		loadConfig,
		logs.New,
		prometheus.NewRegistry,
		newMetrics,
		openKV,
		persistence.NewTokenStore,
		newClient,
	)
}

func injectState() fx.Option {
	return fx.Provide(
		newStore,
		persistence.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		newSessionUsecase,
		newCatalogUsecase,
		newCartUsecase,
		newCheckoutUsecase,
		newOrderUsecase,
	)
}

func loadConfig(path configPath) (*config.Config, error) {
	return config.Load(string(path))
}

func newMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

// 保存先はコマンド終了時に閉じる
func openKV(lc fx.Lifecycle, cfg *config.Config) (repo.KVRepository, error) {
	kv, closeFn, err := kvinfra.OpenKV(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closeFn))
	return kv, nil
}

func newStore(logger *slog.Logger, m *metrics.Metrics) *store.Store {
	return store.New(store.WithLogger(logger), store.WithDispatchHook(m.DispatchHook()))
}

func newClient(cfg *config.Config, logger *slog.Logger, tokens *persistence.TokenStore, m *metrics.Metrics) *api.Client {
	opts := []api.Option{
		api.WithTokenSource(tokens),
		api.WithLogger(logger),
		api.WithRequestObserver(m.RequestObserver()),
		api.WithOnUnauthorized(func(ctx context.Context) {
			logger.WarnContext(ctx, "session expired or invalid, run `storefront login` again")
		}),
	}
	if cfg.API.Tracing {
		opts = append(opts, api.WithTracing())
	}
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, opts...)
}

// 起動時に復元して、以降の変更を保存する
func attachPersistence(lc fx.Lifecycle, p *persistence.Persister, s *store.Store) {
	var detach func()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			detach = p.Attach(context.Background(), s)
			return nil
		},
		OnStop: func(context.Context) error {
			if detach != nil {
				detach()
			}
			return nil
		},
	})
}

func newSessionUsecase(s *store.Store, c *api.Client, tokens *persistence.TokenStore, logger *slog.Logger) *usecase.SessionUsecase {
	return usecase.NewSessionUsecase(s, c.Auth, tokens, logger)
}

func newCatalogUsecase(s *store.Store, c *api.Client) *usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(s, c.Products, c.Categories)
}

func newCartUsecase(s *store.Store, catalog *usecase.CatalogUsecase, cfg *config.Config) *usecase.CartUsecase {
	return usecase.NewCartUsecase(s, catalog, cfg.Checkout.PromoDelay)
}

func newCheckoutUsecase(s *store.Store, c *api.Client, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *usecase.CheckoutUsecase {
	return usecase.NewCheckoutUsecase(s, c.Orders, validator.NewCheckoutValidator(), cfg.Checkout.SubmitDelay, logger,
		usecase.WithCheckoutResultHook(m.CheckoutResult))
}

func newOrderUsecase(s *store.Store, c *api.Client) *usecase.OrderUsecase {
	return usecase.NewOrderUsecase(s, c.Orders)
}

// withRuntimeは依存を組み立ててfnを実行し、終わったら保存先を閉じる
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime) error) error {
	var rt runtime
	app := fx.New(
		modules(cfgFile),
		fx.NopLogger,
		fx.Invoke(func(p runtime) { rt = p }),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, &rt)

	if printMetrics {
		if err := metrics.Write(cmd.OutOrStdout(), rt.Registry); err != nil {
			rt.Logger.Warn("failed to write metrics", slog.Any("error", err))
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}
