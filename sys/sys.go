package sys

import (
	"go.uber.org/zap"
	"gocloud.dev/blob"
	"gocloud.dev/pubsub"
	"time"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port               string
		BasePath           string
		CorsOrigins        []string
		MaxMultipartMemory int64
		ShutdownTimeout    time.Duration
		ReadHeaderTimeout  time.Duration
		ReadTimeout        time.Duration
		WriteTimeout       time.Duration
		IdleTimeout        time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Storage struct {
		AccountID        string
		APIKey           string
		APISecret        string
		Bucket           string
		Region           string
		Endpoint         string
		BucketURL        string
		Folder           string
		PublicURL        string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Messaging struct {
		TopicURL        string
		SQSQueueURL     string
		MaxWorkers      int
		WaitTime        time.Duration
		SendTimeout     time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log    *zap.SugaredLogger
	Bucket *blob.Bucket
	Events *pubsub.Topic
}
