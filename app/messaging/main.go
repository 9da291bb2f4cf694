package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-share/app/messaging/consumers/v1/uploads"
	"github.com/ribgsilva/note-share/platform/env"
	"github.com/ribgsilva/note-share/platform/events"
	"github.com/ribgsilva/note-share/platform/logger"
	"github.com/ribgsilva/note-share/platform/storage"
	"github.com/ribgsilva/note-share/platform/web"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"github.com/ribgsilva/note-share/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func main() {

	log, err := logger.New("Notes-Upload-Verifier")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	if err := godotenv.Load(); err != nil {
		log.Infow("startup", "status", "no .env file, using process env")
	}

	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8081")
	sys.Configs.Http.ReadHeaderTimeout = env.DurationDefault(log, "HTTP_READ_HEADER_TIMEOUT", "5s")
	sys.Configs.Storage.AccountID = env.OrDefault(log, "STORAGE_ACCOUNT_ID", "")
	sys.Configs.Storage.APIKey = env.OrDefault(log, "STORAGE_API_KEY", "")
	sys.Configs.Storage.APISecret = env.OrDefault(log, "STORAGE_API_SECRET", "")
	sys.Configs.Storage.Bucket = env.OrDefault(log, "STORAGE_BUCKET", "notes")
	sys.Configs.Storage.Region = env.OrDefault(log, "STORAGE_REGION", "auto")
	sys.Configs.Storage.Endpoint = env.OrDefault(log, "STORAGE_ENDPOINT", "")
	sys.Configs.Storage.BucketURL = env.OrDefault(log, "STORAGE_BUCKET_URL", "")
	sys.Configs.Storage.Folder = env.OrDefault(log, "STORAGE_FOLDER", "notes_pdfs")
	sys.Configs.Storage.PublicURL = env.OrDefault(log, "STORAGE_PUBLIC_URL", "http://localhost:8080/v1/files")
	sys.Configs.Storage.PingTimeout = env.DurationDefault(log, "STORAGE_PING_TIMEOUT", "2s")
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "60s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-upload-verifier")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.Messaging.SQSQueueURL = env.Must(log, "MESSAGING_SQS_QUEUE_URL")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// bucket
	bucket, err := storage.Open(context.Background(), storage.Config{
		AccountID: sys.Configs.Storage.AccountID,
		APIKey:    sys.Configs.Storage.APIKey,
		APISecret: sys.Configs.Storage.APISecret,
		Bucket:    sys.Configs.Storage.Bucket,
		Region:    sys.Configs.Storage.Region,
		Endpoint:  sys.Configs.Storage.Endpoint,
		BucketURL: sys.Configs.Storage.BucketURL,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := bucket.Close(); err != nil {
			log.Errorf("could not close bucket gracefully: %s", err)
		}
	}()
	sys.R.Bucket = bucket

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if sys.Configs.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	subscription, err := events.OpenSubscription(context.Background(), events.Config{
		SQSQueueURL: sys.Configs.Messaging.SQSQueueURL,
		WaitTime:    sys.Configs.Messaging.WaitTime,
	})
	if err != nil {
		return err
	}
	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	router.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))

	// =======================================================================================================
	// App start and shutdown

	svr := web.NewServer(fmt.Sprintf(":%s", sys.Configs.Http.Port), router, web.Timeouts{
		ReadHeader: sys.Configs.Http.ReadHeaderTimeout,
		Read:       sys.Configs.Http.ReadHeaderTimeout,
		Write:      sys.Configs.Http.ReadHeaderTimeout,
	})

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in server http server: %s", err)
		}
	}()
	defer func() {
		_ = svr.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		cancelFunc()
	}()

	if err := uploads.Consume(withCancel, subscription, sys.Configs.Messaging.MaxWorkers); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}

	return nil
}
