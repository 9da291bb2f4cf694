// Package events opens the topic upload notifications are published to.
package events

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/awssnssqs"
	"time"

	_ "gocloud.dev/pubsub/mempubsub"
)

// Config selects the topic. SQSQueueURL wins over TopicURL.
type Config struct {
	TopicURL    string
	SQSQueueURL string
	// WaitTime is how long a receive waits on SQS for messages
	WaitTime time.Duration
}

var loadDefaultConfig = config.LoadDefaultConfig

func Open(ctx context.Context, cfg Config) (*pubsub.Topic, error) {
	if cfg.SQSQueueURL != "" {
		awsCfg, err := loadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return awssnssqs.OpenSQSTopicV2(ctx, sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL, nil), nil
	}

	t, err := pubsub.OpenTopic(ctx, cfg.TopicURL)
	if err != nil {
		return nil, fmt.Errorf("open topic %q: %w", cfg.TopicURL, err)
	}
	return t, nil
}

// OpenSubscription opens the receiving side. With SQSQueueURL the queue is read
// directly, otherwise TopicURL is used as a gocloud subscription url.
func OpenSubscription(ctx context.Context, cfg Config) (*pubsub.Subscription, error) {
	if cfg.SQSQueueURL != "" {
		awsCfg, err := loadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return awssnssqs.OpenSubscriptionV2(ctx, sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL, &awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: cfg.WaitTime,
		}), nil
	}

	s, err := pubsub.OpenSubscription(ctx, cfg.TopicURL)
	if err != nil {
		return nil, fmt.Errorf("open subscription %q: %w", cfg.TopicURL, err)
	}
	return s, nil
}
