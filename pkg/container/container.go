package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"mutqin-client/internal/config"
	"mutqin-client/internal/domains/auth"
	authHandler "mutqin-client/internal/domains/auth/handler"
	dashboardHandler "mutqin-client/internal/domains/dashboard/handler"
	"mutqin-client/internal/domains/profile"
	profileHandler "mutqin-client/internal/domains/profile/handler"
	"mutqin-client/internal/domains/progress"
	progressHandler "mutqin-client/internal/domains/progress/handler"
	"mutqin-client/internal/domains/sessions"
	sessionHandler "mutqin-client/internal/domains/sessions/handler"
	"mutqin-client/internal/domains/tutors"
	tutorHandler "mutqin-client/internal/domains/tutors/handler"
	"mutqin-client/internal/domains/voicechat"
	"mutqin-client/internal/guard"
	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/poll"
	"mutqin-client/internal/session"
	"mutqin-client/internal/shared/webutil"
	"mutqin-client/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Root of the dependency graph; everything is a singleton.
type Container struct {
	Config *config.Config

	// Session store (in-memory or Redis)
	Store      session.Store
	redisStore *session.RedisStore

	Responder *webutil.Responder

	// Services
	AuthService      *auth.Service
	OAuth            *auth.OAuth
	ProfileService   *profile.Service
	SessionService   *sessions.Service
	TutorService     *tutors.Service
	ProgressService  *progress.Service
	VoiceChatService *voicechat.Service

	// Handlers
	AuthHandler      *authHandler.AuthHandler
	ProfileHandler   *profileHandler.ProfileHandler
	SessionHandler   *sessionHandler.SessionHandler
	TutorHandler     *tutorHandler.TutorHandler
	CalendlyHandler  *progressHandler.CalendlyHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	VoiceChatHandler *voicechat.Handler

	// Role resolver for the navigation guard
	RoleResolver guard.RoleResolver

	// Background availability poller
	chatPoller *poll.Runner
	pollCancel context.CancelFunc
}

// NewContainer initializes toàn bộ dependencies. Any failure here stops
// the application from starting.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	// 2. Session store
	if cfg.Redis.Enabled {
		redisStore := session.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := redisStore.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.redisStore = redisStore
		c.Store = redisStore
	} else {
		log.Println("[SESSION] Redis disabled, using in-memory session store")
		c.Store = session.NewMemoryStore()
	}

	c.Responder = &webutil.Responder{Store: c.Store}

	// 3. Per-resource HTTP clients. Each reads the token for the current
	// browser session from the store via the request context.
	tokens := func(ctx context.Context) (string, error) {
		return c.Store.Token(ctx, webutil.SID(ctx))
	}

	authAPI, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.AuthTimeout,
		Tokens:    tokens,
		Overrides: auth.StatusOverrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build auth client: %w", err)
	}

	profileAPI, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.ProfileTimeout,
		Tokens:    tokens,
		Overrides: profile.StatusOverrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build profile client: %w", err)
	}

	sessionsAPI, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.SessionsTimeout,
		Tokens:    tokens,
		Overrides: sessions.StatusOverrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build sessions client: %w", err)
	}

	tutorsAPI, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.TutorsTimeout,
		Tokens:    tokens,
		Overrides: tutors.StatusOverrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build tutors client: %w", err)
	}

	progressAPI, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.ProgressTimeout,
		Tokens:    tokens,
		Overrides: progress.StatusOverrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build progress client: %w", err)
	}

	// 4. Services
	c.AuthService = auth.NewService(authAPI, c.Store)
	c.OAuth = auth.NewOAuth(cfg.OAuth)
	c.ProfileService = profile.NewService(profileAPI, c.Store)
	c.SessionService = sessions.NewService(sessionsAPI, c.ProfileService)
	c.TutorService = tutors.NewService(tutorsAPI)
	c.ProgressService = progress.NewService(progressAPI)
	c.VoiceChatService = voicechat.NewService(cfg.VoiceChat.URL)

	// 5. Role resolver for guarded routes
	c.RoleResolver = func(ctx context.Context, sid string) (guard.Role, error) {
		role, err := c.ProfileService.Role(ctx, sid)
		if err != nil {
			return "", err
		}
		return guard.Normalize(role), nil
	}

	// 6. Handlers
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService, c.OAuth, c.Responder)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService, c.Responder)
	c.SessionHandler = sessionHandler.NewSessionHandler(c.SessionService, c.Responder)
	c.TutorHandler = tutorHandler.NewTutorHandler(c.TutorService, c.Responder)
	c.CalendlyHandler = progressHandler.NewCalendlyHandler(c.ProgressService, c.ProfileService, c.Responder)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.ProfileService, c.SessionService, c.ProgressService, c.Responder)
	c.VoiceChatHandler = voicechat.NewHandler(c.VoiceChatService)

	// 7. Background voice-chat availability poller
	pollCtx, pollCancel := context.WithCancel(context.Background())
	c.pollCancel = pollCancel
	c.chatPoller = poll.NewRunner("voicechat", cfg.VoiceChat.PollInterval, c.VoiceChatService.Probe)
	c.chatPoller.Start(pollCtx)

	return c, nil
}

// Cleanup releases long-lived resources on shutdown.
func (c *Container) Cleanup() {
	if c.pollCancel != nil {
		c.pollCancel()
	}
	if c.redisStore != nil {
		if err := c.redisStore.Close(); err != nil {
			log.Printf("[REDIS] Close failed: %v", err)
		}
	}
}
