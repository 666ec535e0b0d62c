package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jannashin6/docease/internal/config"
	"github.com/jannashin6/docease/internal/domain/appointment"
	"github.com/jannashin6/docease/internal/domain/chat"
	"github.com/jannashin6/docease/internal/domain/doctor"
	"github.com/jannashin6/docease/internal/domain/patient"
	"github.com/jannashin6/docease/internal/domain/waitingqueue"
	"github.com/jannashin6/docease/internal/platform/assistant"
	"github.com/jannashin6/docease/internal/platform/blobstore"
	"github.com/jannashin6/docease/internal/platform/middleware"
	"github.com/jannashin6/docease/internal/platform/validate"
)

// rosterAdapter adapts the doctor service to the assistant.Roster interface,
// avoiding a circular import between the assistant and doctor packages.
type rosterAdapter struct {
	doctors *doctor.Service
}

func (a *rosterAdapter) FirstBySpecialty(ctx context.Context, specialty string) (assistant.DoctorRef, bool) {
	d, err := a.doctors.FirstBySpecialty(ctx, specialty)
	if err != nil {
		return assistant.DoctorRef{}, false
	}
	return assistant.DoctorRef{ID: d.ID, Name: d.Name, Specialty: d.Specialty}, true
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "docease-server",
		Short: "DocEase appointment booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(doctorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the DocEase API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the triage assistant a one-off question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorSvc := doctor.NewService(doctor.NewInMemoryRepo(doctor.SeedDoctors()), doctor.DefaultScheduleConfig())
			engine := assistant.NewEngine(&rosterAdapter{doctors: doctorSvc})

			reply := engine.Respond(cmd.Context(), strings.Join(args, " "))
			fmt.Println(reply.Content)
			if len(reply.Keywords) > 0 {
				fmt.Printf("keywords: %v\n", reply.Keywords)
			}
			if reply.DoctorID != "" {
				fmt.Printf("recommended doctor id: %s\n", reply.DoctorID)
			}
			return nil
		},
	}
}

func doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "Print the seeded doctor roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorSvc := doctor.NewService(doctor.NewInMemoryRepo(doctor.SeedDoctors()), doctor.DefaultScheduleConfig())
			roster, err := doctorSvc.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%-4s %-22s %-20s %s\n", "ID", "NAME", "SPECIALTY", "AVAILABILITY")
			for _, d := range roster {
				fmt.Printf("%-4s %-22s %-20s %v\n", d.ID, d.Name, d.Specialty, d.Availability)
			}
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// Chat history blob store: Redis when configured, in-memory otherwise.
	var chatStore blobstore.Store
	if cfg.RedisURL != "" {
		redisStore, err := blobstore.NewRedisStore(ctx, cfg.RedisURL, cfg.ChatHistoryKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		chatStore = redisStore
		logger.Info().Msg("chat history backed by redis")
	} else {
		chatStore = blobstore.NewMemoryStore()
		logger.Warn().Msg("REDIS_URL not set; chat history is in-memory only")
	}

	// Services
	sched := doctor.ScheduleConfig{
		HorizonDays:     cfg.HorizonDays,
		SlotStartHour:   cfg.SlotStartHour,
		SlotEndHour:     cfg.SlotEndHour,
		SlotStepMinutes: cfg.SlotStepMinutes,
	}
	doctorSvc := doctor.NewService(doctor.NewInMemoryRepo(doctor.SeedDoctors()), sched)
	patientSvc := patient.NewService(patient.SeedUser())
	apptSvc := appointment.NewService(appointment.NewInMemoryRepo(appointment.SeedAppointments()), doctorSvc, patientSvc, sched, logger)
	queueSvc := waitingqueue.NewService(waitingqueue.NewInMemoryRepo(waitingqueue.SeedQueue()), doctorSvc, patientSvc, logger)

	engine := assistant.NewEngine(&rosterAdapter{doctors: doctorSvc})
	typingDelay := time.Duration(cfg.ChatTypingDelayMS) * time.Millisecond
	chatSvc := chat.NewService(ctx, chatStore, engine, typingDelay, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()

	// Global middleware
	middleware.Register(e, logger)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register Domain Handlers --
	apiV1 := e.Group("/api/v1")

	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(apptSvc).RegisterRoutes(apiV1)
	waitingqueue.NewHandler(queueSvc).RegisterRoutes(apiV1)
	chat.NewHandler(chatSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
