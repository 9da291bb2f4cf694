package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-share/app/api/docs"
	"github.com/ribgsilva/note-share/app/api/handlers"
	"github.com/ribgsilva/note-share/platform/env"
	"github.com/ribgsilva/note-share/platform/events"
	"github.com/ribgsilva/note-share/platform/logger"
	"github.com/ribgsilva/note-share/platform/storage"
	"github.com/ribgsilva/note-share/platform/web"
	"github.com/ribgsilva/note-share/sys"
	"github.com/rs/cors"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title Note Share API
// @version 1.0
// @description Service receiving note files and storing them with the object storage provider.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Notes-Upload-API")
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

	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	sys.Configs.Http.BasePath = env.OrDefault(log, "HTTP_BASE_PATH", "/api")
	sys.Configs.Http.CorsOrigins = env.ListDefault(log, "HTTP_CORS_ORIGINS", "*")
	sys.Configs.Http.MaxMultipartMemory = env.Int64Default(log, "HTTP_MAX_MULTIPART_MEMORY", "33554432")
	sys.Configs.Http.ReadHeaderTimeout = env.DurationDefault(log, "HTTP_READ_HEADER_TIMEOUT", "5s")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "0s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "0s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Storage.AccountID = env.OrDefault(log, "STORAGE_ACCOUNT_ID", "")
	sys.Configs.Storage.APIKey = env.OrDefault(log, "STORAGE_API_KEY", "")
	sys.Configs.Storage.APISecret = env.OrDefault(log, "STORAGE_API_SECRET", "")
	sys.Configs.Storage.Bucket = env.OrDefault(log, "STORAGE_BUCKET", "notes")
	sys.Configs.Storage.Region = env.OrDefault(log, "STORAGE_REGION", "auto")
	sys.Configs.Storage.Endpoint = env.OrDefault(log, "STORAGE_ENDPOINT", "")
	sys.Configs.Storage.BucketURL = env.OrDefault(log, "STORAGE_BUCKET_URL", "")
	sys.Configs.Storage.Folder = env.OrDefault(log, "STORAGE_FOLDER", "notes_pdfs")
	sys.Configs.Storage.PublicURL = env.OrDefault(log, "STORAGE_PUBLIC_URL", "http://localhost:"+sys.Configs.Http.Port+"/v1/files")
	sys.Configs.Storage.PingTimeout = env.DurationDefault(log, "STORAGE_PING_TIMEOUT", "2s")
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "60s")
	sys.Configs.Messaging.TopicURL = env.OrDefault(log, "MESSAGING_TOPIC_URL", "mem://uploads")
	sys.Configs.Messaging.SQSQueueURL = env.OrDefault(log, "MESSAGING_SQS_QUEUE_URL", "")
	sys.Configs.Messaging.SendTimeout = env.DurationDefault(log, "MESSAGING_SEND_TIMEOUT", "5s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-upload-api")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// bucket
	// doing in a func, so I can use defer to cancel the contexts
	if err := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Storage.PingTimeout)
		defer cancel()

		bucket, err := storage.Open(ctx, storage.Config{
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
		if ok, err := bucket.IsAccessible(ctx); err != nil || !ok {
			log.Warnw("startup", "storage", "bucket not accessible yet", "ERROR", err)
		}
		sys.R.Bucket = bucket
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := sys.R.Bucket.Close(); err != nil {
			log.Errorf("could not close bucket gracefully: %s", err)
		}
	}()

	// upload events
	topic, err := events.Open(context.Background(), events.Config{
		TopicURL:    sys.Configs.Messaging.TopicURL,
		SQSQueueURL: sys.Configs.Messaging.SQSQueueURL,
	})
	if err != nil {
		return err
	}
	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := topic.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop topic gracefully: %s", err)
		}
	}()
	sys.R.Events = topic

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
	// Router configuration

	router := gin.New()
	router.MaxMultipartMemory = sys.Configs.Http.MaxMultipartMemory
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)
	handlers.MapApi(router, sys.Configs.Http.BasePath)

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// the composer runs in a browser on another origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: sys.Configs.Http.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	// =======================================================================================================
	// App start and shutdown

	// uploads have no size limit, so bodies are not bounded by default
	svr := web.NewServer(fmt.Sprintf(":%s", sys.Configs.Http.Port), corsHandler, web.Timeouts{
		ReadHeader: sys.Configs.Http.ReadHeaderTimeout,
		Read:       sys.Configs.Http.ReadTimeout,
		Write:      sys.Configs.Http.WriteTimeout,
		Idle:       sys.Configs.Http.IdleTimeout,
		Operation:  sys.Configs.Storage.OperationTimeout,
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("started http server", "port", sys.Configs.Http.Port, "upload", sys.Configs.Http.BasePath+"/upload")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
