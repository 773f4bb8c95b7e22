package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/callback_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/export_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/help_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/history_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/report_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/stats_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/text_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/user_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/middleware"
	"github.com/IT-Nick/burncheckbot/internal/domain/certificate"
	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	msgRepo "github.com/IT-Nick/burncheckbot/internal/domain/messages/repository"
	msgService "github.com/IT-Nick/burncheckbot/internal/domain/messages/service"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/IT-Nick/burncheckbot/internal/domain/questions"
	"github.com/IT-Nick/burncheckbot/internal/domain/report"
	resultsRepo "github.com/IT-Nick/burncheckbot/internal/domain/results/repository"
	resultsService "github.com/IT-Nick/burncheckbot/internal/domain/results/service"
	"github.com/IT-Nick/burncheckbot/internal/domain/sessions"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"github.com/IT-Nick/burncheckbot/internal/infra/logger"
	"github.com/IT-Nick/burncheckbot/internal/infra/metrics"
	"github.com/IT-Nick/burncheckbot/internal/infra/poller"
	"github.com/IT-Nick/burncheckbot/internal/infra/telegram"
	"github.com/IT-Nick/burncheckbot/internal/infra/timer"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gopkg.in/telebot.v4"
	tmw "gopkg.in/telebot.v4/middleware"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	messageService *msgService.MessageService
	resultService  *resultsService.ResultService
	ledger         *stats.Ledger
	certificates   *certificate.Renderer
	reports        *report.Generator
}

type App struct {
	config  *config.Config
	log     zerolog.Logger
	bot     *telebot.Bot
	db      *pgxpool.Pool
	server  *http.Server
	bank    *questions.Bank
	store   sessions.Store
	metrics *metrics.Metrics
	machine *flow.Machine

	Services
}

// newSessionStore подменяется в тестах
var newSessionStore = sessions.NewStore

func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	bank, err := questions.Load()
	if err != nil {
		return nil, fmt.Errorf("questions.Load: %w", err)
	}
	log.Info().Int("phases", bank.Len()).Int("questions", bank.QuestionCount()).Msg("question bank loaded")

	store, err := newSessionStore(sessions.Options{
		Backend:  cfg.Sessions.Backend,
		TTL:      cfg.Sessions.TTL,
		RedisURL: cfg.Sessions.RedisURL,
	})
	if err != nil {
		return nil, err
	}

	if rs, ok := store.(*sessions.RedisStore); ok {
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
	}

	db, err := InitDatabase(ctx, cfg, logger.Component(log, "database"))
	if err != nil {
		if c, ok := store.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		config:  cfg,
		log:     log,
		db:      db,
		bank:    bank,
		store:   store,
		metrics: metrics.New(),
	}

	if err := app.initServices(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(ctx context.Context) error {
	app.ledger = stats.Open(app.config.Stats.Path, logger.Component(app.log, "stats"),
		stats.WithPersistErrorHook(app.metrics.LedgerWriteFailed))

	fonts := certificate.NewFontLocator(fontCandidates(app.config.Certificate.Fonts))
	app.certificates = certificate.NewRenderer(app.config.Certificate.Template, fonts, logger.Component(app.log, "certificate"))
	app.reports = report.NewGenerator(fonts)

	if app.db == nil {
		app.messageService = msgService.NewMessageService(nil)
		app.resultService = resultsService.NewResultService(nil)
		return nil
	}

	// Репозитории нужны только при настроенной базе
	messageRepo := msgRepo.NewMessageRepository(app.db)
	if err := messageRepo.EnsureSchema(ctx); err != nil {
		return err
	}
	resultRepo := resultsRepo.NewResultRepository(app.db)
	if err := resultRepo.EnsureSchema(ctx); err != nil {
		return err
	}

	app.messageService = msgService.NewMessageService(messageRepo)
	app.resultService = resultsService.NewResultService(resultRepo)

	n, err := app.messageService.Reload(ctx)
	if err != nil {
		app.log.Warn().Err(err).Msg("failed to load message overrides, using built-in texts")
	} else {
		app.log.Info().Int("overrides", n).Msg("message overrides loaded")
	}
	return nil
}

func fontCandidates(fonts []config.Font) []certificate.FontCandidate {
	if len(fonts) == 0 {
		return nil
	}
	out := make([]certificate.FontCandidate, 0, len(fonts))
	for _, f := range fonts {
		out = append(out, certificate.FontCandidate{Path: f.Path, Description: f.Description})
	}
	return out
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	p, err := poller.NewPoller(app.config)
	if err != nil {
		return err
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:   app.config.TelegramBot.Token,
		Poller:  p,
		OnError: app.onError,
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	deps := flow.Deps{
		Bank:         app.bank,
		Sessions:     app.store,
		Ledger:       app.ledger,
		Texts:        app.messageService,
		Certificates: app.certificates,
		Archive:      app.resultService,
		Observer:     app.metrics,
	}
	if !app.config.Channel.DisableSubscriptionCheck {
		deps.Membership = telegram.NewMembershipChecker(bot, app.config.Channel.Username, logger.Component(app.log, "membership"))
	}

	app.machine = flow.NewMachine(deps, flow.Config{
		ChannelName:           app.config.Channel.Name,
		ChannelLink:           app.config.Channel.Link,
		SkipSubscriptionCheck: app.config.Channel.DisableSubscriptionCheck,
	}, logger.Component(app.log, "flow"))

	app.bootstrapHandlersTelegram()

	if app.config.TelegramBot.Mode == config.ModePolling {
		// Вебхук, оставшийся от прошлого запуска, мешает long polling
		if err := bot.RemoveWebhook(false); err != nil {
			app.log.Warn().Err(err).Msg("failed to remove webhook")
		}
	}

	go app.bot.Start()

	app.log.Info().
		Str("mode", app.config.TelegramBot.Mode).
		Str("bot", bot.Me.Username).
		Msg("telegram bot started")
	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	log := logger.Component(app.log, "telegram")

	app.bot.Use(
		middleware.Logger(log, app.metrics),
		middleware.Recover(func(err error, c telebot.Context) {
			log.Error().Err(err).Msg("recovered from panic")
		}),
		tmw.AutoRespond(),
		middleware.DebugUserActions(app.config.Debug, app.machine, log),
	)

	app.bot.Handle("/start", start_handler.NewStartHandler(app.machine).GetHandlerFunc())
	app.bot.Handle("/help", help_handler.NewHelpHandler(app.machine).GetHandlerFunc())
	app.bot.Handle(telebot.OnText, text_handler.NewTextHandler(app.machine).GetHandlerFunc())
	app.bot.Handle(telebot.OnCallback, callback_handler.NewCallbackHandler(app.machine).GetHandlerFunc())

	// Команды администратора. Для остальных пользователей они молча игнорируются.
	admin := app.bot.Group()
	admin.Use(tmw.Whitelist(app.config.AdminIDs...))
	admin.Handle("/stats", stats_handler.NewStatsHandler(app.ledger).GetHandlerFunc())
	admin.Handle("/export", export_handler.NewExportHandler(app.ledger).GetHandlerFunc())
	admin.Handle("/user", user_handler.NewUserHandler(app.ledger).GetHandlerFunc())
	admin.Handle("/report", report_handler.NewReportHandler(app.ledger, app.reports).GetHandlerFunc())
	admin.Handle("/history", history_handler.NewHistoryHandler(app.resultService).GetHandlerFunc())
}

// onError последний рубеж: ошибка логируется, пользователь получает извинение
func (app *App) onError(err error, c telebot.Context) {
	ev := app.log.Error().Err(err)
	if c == nil {
		ev.Msg("telegram error")
		return
	}

	sender := c.Sender()
	if sender != nil {
		ev = ev.Int64("user_id", sender.ID)
	}
	ev.Str("kind", middleware.UpdateKind(c)).Msg("failed to handle update")

	if sender == nil {
		return
	}
	apology := app.messageService.GetMessageByKey(model.UnexpectedErrorKey)
	if sendErr := c.Send(apology, telebot.ModeHTML); sendErr != nil {
		app.log.Error().Err(sendErr).Int64("user_id", sender.ID).Msg("failed to send apology")
	}
}

// initHTTPServer собирает HTTP сервер администратора. Пустой адрес отключает его.
func (app *App) initHTTPServer() {
	if app.config.Server.Addr == "" || app.server != nil {
		return
	}

	if !app.config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	var botUsername string
	if app.bot != nil && app.bot.Me != nil {
		botUsername = app.bot.Me.Username
	}

	router := NewRouter(RouterDeps{
		Ledger:      app.ledger,
		History:     app.resultService,
		Metrics:     app.metrics.Handler(),
		BotUsername: botUsername,
		AdminToken:  app.config.Server.AdminToken,
		Log:         logger.Component(app.log, "http"),
	})

	app.server = &http.Server{
		Addr:              app.config.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// ListenAndServeHTTP запускает HTTP сервер
func (app *App) ListenAndServeHTTP() error {
	app.initHTTPServer()
	if app.server == nil {
		app.log.Info().Msg("admin HTTP server disabled")
		return nil
	}

	app.log.Info().Str("addr", app.server.Addr).Msg("admin HTTP server started")
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// backgroundJobs периодические задачи: очистка сессий и перечитывание текстов
func (app *App) backgroundJobs() []timer.Job {
	var jobs []timer.Job

	if mem, ok := app.store.(*sessions.MemoryStore); ok {
		jobs = append(jobs, timer.Job{
			Name:     "sessions_sweep",
			Interval: app.config.Sessions.SweepInterval,
			Run: func(_ context.Context, now time.Time) error {
				n := mem.Sweep(now)
				app.metrics.SessionsSwept(n)
				if n > 0 {
					app.log.Debug().Int("removed", n).Msg("expired sessions swept")
				}
				return nil
			},
		})
	}

	if app.db != nil {
		jobs = append(jobs, timer.Job{
			Name:     "messages_reload",
			Interval: app.config.Messages.ReloadInterval,
			Run: func(ctx context.Context, _ time.Time) error {
				_, err := app.messageService.Reload(ctx)
				return err
			},
		})
	}

	return jobs
}

// ListenAndServe запускает бота, фоновые задачи и HTTP сервер до отмены контекста
func (app *App) ListenAndServe(ctx context.Context) error {
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	jobsCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	updater := timer.NewTimerUpdater(logger.Component(app.log, "timer"), app.backgroundJobs()...)
	updater.Start(jobsCtx)

	app.initHTTPServer()
	httpErr := make(chan error, 1)
	go func() {
		httpErr <- app.ListenAndServeHTTP()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-httpErr:
		if err != nil {
			err = fmt.Errorf("failed to start HTTP server: %w", err)
		} else if app.server == nil {
			// HTTP отключён, ждём остановки
			<-ctx.Done()
		}
	}

	app.log.Info().Msg("shutting down")
	app.bot.Stop()

	if app.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if shErr := app.server.Shutdown(shutdownCtx); shErr != nil {
			app.log.Error().Err(shErr).Msg("failed to shut down HTTP server")
		}
		cancel()
	}

	cancelJobs()
	updater.Wait()
	app.Close()

	return err
}

// Close освобождает соединения с базой и Redis
func (app *App) Close() {
	if app.db != nil {
		app.db.Close()
	}
	if closer, ok := app.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			app.log.Error().Err(err).Msg("failed to close session store")
		}
	}
}
