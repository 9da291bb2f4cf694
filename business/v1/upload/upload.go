package upload

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/note-share/persistence/v1/object"
	"github.com/ribgsilva/note-share/sys"
	"gocloud.dev/pubsub"
	"time"
)

var names = NewNamer(time.Now)

// Upload stores the file under a collision free name inside the notes folder.
// Failures are returned once as *ProviderError and are never retried here.
func Upload(ctx context.Context, nu NewUpload) (Uploaded, error) {
	key := object.Key(names.Name(nu.Filename))

	o, err := object.Put(ctx, key, nu.Body)
	if err != nil {
		return Uploaded{}, &ProviderError{Key: key, Err: err}
	}

	up := Uploaded{
		Key:         o.Key,
		FileURL:     o.URL,
		Size:        o.Size,
		ContentType: o.ContentType,
	}
	publish(ctx, up)

	return up, nil
}

// publish notifies listeners about a new object. The upload already succeeded, so failures are only logged.
func publish(ctx context.Context, up Uploaded) {
	logger := sys.R.Log
	topic := sys.R.Events
	if topic == nil {
		return
	}

	body, err := json.Marshal(Event{Type: EventCompleted, Data: up})
	if err != nil {
		logger.Errorw("publish", "object", up.Key, "ERROR", err)
		return
	}

	sendCtx, sendCancel := context.WithTimeout(ctx, sys.Configs.Messaging.SendTimeout)
	defer sendCancel()
	if err := topic.Send(sendCtx, &pubsub.Message{Body: body, Metadata: map[string]string{"type": EventCompleted}}); err != nil {
		logger.Errorw("publish", "object", up.Key, "ERROR", err)
	}
}
