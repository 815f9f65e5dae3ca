// @title Festival CMS API
// @version 1.0
// @description Events, schedules and festival site content.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/lib/pq"

	"festivalcms/config"
	_ "festivalcms/docs"
	"festivalcms/internal/adapters/auth"
	"festivalcms/internal/adapters/email"
	"festivalcms/internal/adapters/render"
	"festivalcms/internal/adapters/storage"
	deliveryhttp "festivalcms/internal/delivery/http"
	"festivalcms/internal/delivery/http/controllers"
	"festivalcms/internal/domain"
	"festivalcms/internal/jobs"
	"festivalcms/internal/repository/postgres"
	"festivalcms/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		return err
	}

	files, uploads, err := newStorage(cfg)
	if err != nil {
		return err
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SES.Region,
			AccessKeyID:        cfg.SES.AccessKeyID,
			SecretAccessKey:    cfg.SES.SecretAccessKey,
			InsecureSkipVerify: cfg.SES.InsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:               cfg.SMTP.Host,
			Port:               cfg.SMTP.Port,
			Username:           cfg.SMTP.Username,
			Password:           cfg.SMTP.Password,
			InsecureSkipVerify: cfg.SMTP.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	tokens := auth.NewJWT(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(0)
	timeout := cfg.RequestTimeout

	// Repositories
	tx := postgres.NewTransactor(db)
	eventRepo := postgres.NewEventRepository(db)
	dayRepo := postgres.NewEventDayRepository(db)
	slotRepo := postgres.NewTimeSlotRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	eventSvc := services.NewEventService(tx, eventRepo, dayRepo, slotRepo, logger, timeout)
	authSvc := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry, timeout)
	userSvc := services.NewUserService(userRepo, hasher, timeout)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	contactSvc := services.NewContactService(postgres.NewContactRepository(db), emailSvc, logger, timeout)
	speakerSvc := services.NewSpeakerService(eventRepo, postgres.NewSpeakerRepository(db), files, logger, timeout)
	workshopSvc := services.NewWorkshopService(eventRepo, postgres.NewWorkshopRepository(db), files, logger, timeout)
	mediaSvc := services.NewMediaService(postgres.NewMediaRepository(db), files, logger, timeout)
	newsSvc := services.NewNewsService(postgres.NewNewsRepository(db), files, logger, timeout)
	videoSvc := services.NewVideoBlogService(postgres.NewVideoBlogRepository(db), files, logger, timeout)
	archiveSvc := services.NewArchiveService(tx, postgres.NewArchiveRepository(db), files, logger, timeout)
	viewSvc := services.NewViewCounterService(postgres.NewViewCounterRepository(db), timeout)

	handler := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Event:       controllers.NewEventController(logger, eventSvc, render.NewScheduleRenderer(loc)),
		Auth:        controllers.NewAuthController(logger, authSvc, cfg.JWTExpiry, cfg.CookieSecure),
		User:        controllers.NewUserController(logger, userSvc),
		Speaker:     controllers.NewSpeakerController(logger, speakerSvc),
		Workshop:    controllers.NewWorkshopController(logger, workshopSvc),
		Banner:      controllers.NewBannerController(logger, mediaSvc),
		Brochure:    controllers.NewBrochureController(logger, mediaSvc),
		News:        controllers.NewNewsController(logger, newsSvc),
		VideoBlog:   controllers.NewVideoBlogController(logger, videoSvc),
		Archive:     controllers.NewArchiveController(logger, archiveSvc),
		Contact:     controllers.NewContactController(logger, contactSvc),
		ViewCounter: controllers.NewViewCounterController(logger, viewSvc, cfg.CookieSecure),
	}, deliveryhttp.RouterConfig{
		Logger:   logger,
		Verifier: tokens,
		Uploads:  uploads,
	})

	reconciler := jobs.NewReconciler(tx, dayRepo, slotRepo, logger, timeout)
	if _, _, err := reconciler.RunOnce(context.Background()); err != nil {
		logger.Warn("initial orphan sweep failed", "err", err)
	}
	if err := reconciler.Start(cfg.ReconcileSchedule); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageProvider)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("signal received, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	reconciler.Stop(shutdownCtx)
	return srv.Shutdown(shutdownCtx)
}

// newStorage builds the configured file storage. For local storage it also returns the
// handler serving stored files.
func newStorage(cfg *config.Config) (domain.FileStorage, http.Handler, error) {
	if cfg.StorageProvider == config.StorageS3 {
		s, err := storage.NewS3Storage(storage.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Endpoint:        cfg.S3.Endpoint,
			PublicBaseURL:   cfg.S3.PublicBaseURL,
		})
		return s, nil, err
	}
	root, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, nil, err
	}
	return storage.NewLocalStorage(root), http.FileServer(http.Dir(root)), nil
}
