package bucket

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-share/persistence/v1/object"
	"github.com/ribgsilva/note-share/platform/env"
	"github.com/ribgsilva/note-share/platform/storage"
	"github.com/ribgsilva/note-share/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Bucket Commands")
	println("\tcheck\t\t\t- Checks the bucket is reachable with the configured credentials")
	println("\tlist\t\t\t- Lists the uploaded note files")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log); err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := sys.R.Bucket.Close(); err != nil {
			log.Errorf("could not close bucket gracefully: %s", err)
		}
	}()
	switch options[0] {
	case "check":
		println("checking bucket")
		if err := Check(context.Background()); err != nil {
			println("bucket not reachable:", err.Error())
		} else {
			println("bucket reachable")
		}
	case "list":
		objects, err := object.List(context.Background())
		if err != nil {
			println("failed to list bucket:", err.Error())
			return
		}
		for _, o := range objects {
			fmt.Printf("%d\t%s\n", o.Size, o.URL)
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

// Check fails when the bucket in sys.R cannot be reached
func Check(ctx context.Context) error {
	pingCtx, pingCancel := context.WithTimeout(ctx, sys.Configs.Storage.PingTimeout)
	defer pingCancel()

	ok, err := sys.R.Bucket.IsAccessible(pingCtx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", sys.Configs.Storage.Bucket)
	}
	return nil
}

func initVars(log *zap.SugaredLogger) error {
	sys.Configs.Storage.AccountID = env.OrDefault(log, "STORAGE_ACCOUNT_ID", "")
	sys.Configs.Storage.APIKey = env.OrDefault(log, "STORAGE_API_KEY", "")
	sys.Configs.Storage.APISecret = env.OrDefault(log, "STORAGE_API_SECRET", "")
	sys.Configs.Storage.Bucket = env.OrDefault(log, "STORAGE_BUCKET", "notes")
	sys.Configs.Storage.Region = env.OrDefault(log, "STORAGE_REGION", "auto")
	sys.Configs.Storage.Endpoint = env.OrDefault(log, "STORAGE_ENDPOINT", "")
	sys.Configs.Storage.BucketURL = env.OrDefault(log, "STORAGE_BUCKET_URL", "")
	sys.Configs.Storage.Folder = env.OrDefault(log, "STORAGE_FOLDER", "notes_pdfs")
	sys.Configs.Storage.PublicURL = env.OrDefault(log, "STORAGE_PUBLIC_URL", "http://localhost:8080/v1/files")
	sys.Configs.Storage.PingTimeout = env.DurationDefault(log, "STORAGE_PING_TIMEOUT", "5s")

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
		return fmt.Errorf("could not open bucket: %w", err)
	}
	sys.R.Bucket = bucket
	return nil
}
