// Package app wires the store, the Discord session and the services together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/diegoclair/morning-club-bot/internal/clock"
	"github.com/diegoclair/morning-club-bot/internal/config"
	"github.com/diegoclair/morning-club-bot/internal/database"
	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/service"
	"github.com/diegoclair/morning-club-bot/internal/handlers"
	"github.com/diegoclair/morning-club-bot/internal/metrics"
	"github.com/diegoclair/morning-club-bot/internal/notifier"
)

const (
	intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	shutdownTimeout = 15 * time.Second
)

type App struct {
	cfg      config.Config
	log      zerolog.Logger
	db       *database.DB
	session  *discordgo.Session
	services *service.Services
	server   *http.Server
}

// New opens and migrates the store and builds every component. Nothing
// connects to Discord until Run.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*App, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("driver", string(db.Dialect())).Msg("running migrations")
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.VerifySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = intents

	dm := database.NewInstance(db)
	m := metrics.New()

	services := service.New(dm, buildNotifier(cfg, session, dm.Config()), service.Options{
		Clock:   clock.NewSystem(cfg.Location()),
		Metrics: m,
		Logger:  log,
		Retry:   service.RetryPolicy{Attempts: cfg.RetryAttempts, BaseDelay: cfg.RetryBaseDelay},
	})

	discordHandler := handlers.NewDiscord(session, services.Attendance, cfg.GuildID, cfg.CommandPrefix, log)
	session.AddHandler(discordHandler.OnMessageCreate)
	session.AddHandler(discordHandler.OnVoiceStateUpdate)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("connected to discord")
	})

	if err := seedChannels(ctx, dm.Config(), cfg, log); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		session:  session,
		services: services,
		server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handlers.NewRouter(services.Attendance, m.Handler(), log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run connects to Discord, resumes active members and serves HTTP until ctx
// is cancelled or a component fails.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer a.session.Close()

	a.checkChannels(ctx)

	if err := a.services.Attendance.Start(ctx); err != nil {
		return err
	}
	defer a.services.Attendance.Shutdown()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info().Str("addr", a.server.Addr).Msg("http server starting")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDB(ctx context.Context, cfg config.Config) (*database.DB, error) {
	var (
		db  *database.DB
		err error
	)
	switch database.Dialect(cfg.DatabaseDriver) {
	case database.Postgres:
		db, err = database.NewPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	default:
		db, err = database.NewSQLite(cfg.DatabasePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func buildNotifier(cfg config.Config, session *discordgo.Session, configRepo contract.ConfigRepo) contract.Notifier {
	discord := notifier.NewDiscord(session, configRepo)
	if cfg.SlackWebhookURL == "" {
		return discord
	}
	return notifier.Multi{discord, notifier.NewSlack(cfg.SlackWebhookURL, &http.Client{Timeout: 10 * time.Second})}
}

// seedChannels copies the channels from the environment into the store the
// first time. Channels set through commands win afterwards.
func seedChannels(ctx context.Context, repo contract.ConfigRepo, cfg config.Config, log zerolog.Logger) error {
	stored, err := repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load channel config: %w", err)
	}

	if stored.TextChannelID == "" && cfg.TextChannelID != "" {
		if err := repo.SetTextChannel(ctx, cfg.TextChannelID); err != nil {
			return err
		}
		log.Info().Str("channel_id", cfg.TextChannelID).Msg("text channel seeded from environment")
	}
	if stored.VoiceChannelID == "" && cfg.VoiceChannelID != "" {
		if err := repo.SetVoiceChannel(ctx, cfg.VoiceChannelID); err != nil {
			return err
		}
		log.Info().Str("channel_id", cfg.VoiceChannelID).Msg("voice channel seeded from environment")
	}
	return nil
}

// checkChannels warns about stored channels Discord no longer knows.
func (a *App) checkChannels(ctx context.Context) {
	stored, err := database.NewInstance(a.db).Config().Get(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to load channel config")
		return
	}

	for kind, id := range map[string]string{"text": stored.TextChannelID, "voice": stored.VoiceChannelID} {
		if id == "" {
			a.log.Warn().Str("kind", kind).Msg("channel not configured")
			continue
		}
		if _, err := a.session.Channel(id, discordgo.WithContext(ctx)); err != nil {
			a.log.Warn().Err(err).Str("kind", kind).Str("channel_id", id).Msg("configured channel cannot be resolved")
		}
	}
}
