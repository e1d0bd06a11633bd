package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rstne/scriptura/internal/config"
	"github.com/rstne/scriptura/internal/database"
	"github.com/rstne/scriptura/internal/database/books"
	"github.com/rstne/scriptura/internal/database/chapters"
	"github.com/rstne/scriptura/internal/database/crossrefs"
	"github.com/rstne/scriptura/internal/database/links"
	"github.com/rstne/scriptura/internal/database/notes"
	"github.com/rstne/scriptura/internal/database/tags"
	"github.com/rstne/scriptura/internal/database/verses"
	http_controllers "github.com/rstne/scriptura/internal/http"
	"github.com/rstne/scriptura/internal/scheduler"
	"github.com/rstne/scriptura/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until an interrupt or termination signal,
// then shuts down gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down server, waiting up to %v", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background workers before the listener so in-flight tasks
	// finish against a live database.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the store, repositories, background workers, and router,
// then serves until shutdown.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Scriptura v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	crossRefRepo := crossrefs.NewRepository(db.DB)

	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		taskClient.Register(tasks.NewImportCrossReferencesQueue(crossRefRepo))

		taskCtx, taskCancel := context.WithCancel(context.Background())
		defer taskCancel()
		go taskClient.Start(taskCtx)
	}

	var maintenance *scheduler.MaintenanceScheduler
	if cfg.Maintenance.Enabled {
		maintenance = scheduler.NewMaintenanceScheduler(db, cfg.Maintenance.Schedule)
		if err := maintenance.Start(); err != nil {
			log.Fatalf("Failed to start maintenance scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Books:      books.NewRepository(db.DB),
		Categories: db,
		Chapters:   chapters.NewRepository(db.DB),
		Verses:     verses.NewRepository(db.DB),
		Notes:      notes.NewRepository(db.DB),
		Tags:       tags.NewRepository(db.DB),
		Links:      links.NewRepository(db.DB),
		CrossRefs:  crossRefRepo,
		Stats:      db,
	}
	if taskClient != nil {
		routerCfg.Importer = taskClient
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		if maintenance != nil {
			maintenance.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
			taskClient.Close()
		}
	})
}
