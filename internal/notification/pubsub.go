package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// PubSubQueue carries events through a Cloud Pub/Sub topic so any instance
// can deliver notifications for writes made on another.
type PubSubQueue struct {
	client    *pubsub.Client
	topic     *pubsub.Topic
	topicName string
	subName   string
	handler   Handler
}

func NewPubSubQueue(ctx context.Context, projectID, topicName, credentialsFile string, handler Handler) (*PubSubQueue, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	return &PubSubQueue{
		client:    client,
		topic:     client.Topic(topicName),
		topicName: topicName,
		subName:   topicName + "-sub", // Convention: topic-sub
		handler:   handler,
	}, nil
}

// Enqueue publishes the event without waiting for the server ack; publish
// failures are logged.
func (q *PubSubQueue) Enqueue(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	result := q.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"type": event.Type},
	})
	go func() {
		ackCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := result.Get(ackCtx); err != nil {
			log.Printf("[PubSub] Failed to publish %s event %s: %v", event.Type, event.ResourceID, err)
		}
	}()
	return nil
}

// Start ensures the topic and subscription exist and consumes events until
// ctx is cancelled.
func (q *PubSubQueue) Start(ctx context.Context) error {
	log.Printf("[PubSub] Starting event consumer with topic: %s, subscription: %s", q.topicName, q.subName)

	topicExists, err := q.topic.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check topic: %w", err)
	}
	if !topicExists {
		if q.topic, err = q.client.CreateTopic(ctx, q.topicName); err != nil {
			return fmt.Errorf("failed to create topic: %w", err)
		}
		log.Printf("[PubSub] Created topic: %s", q.topicName)
	}

	sub := q.client.Subscription(q.subName)
	exists, err := sub.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if !exists {
		sub, err = q.client.CreateSubscription(ctx, q.subName, pubsub.SubscriptionConfig{
			Topic:       q.topic,
			AckDeadline: 60 * time.Second,
		})
		if err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		log.Printf("[PubSub] Created subscription: %s", q.subName)
	}

	return sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// Malformed payloads would be redelivered forever
			log.Printf("[PubSub] Dropping undecodable message %s: %v", msg.ID, err)
			msg.Ack()
			return
		}
		q.handler(ctx, event)
		msg.Ack()
	})
}

func (q *PubSubQueue) Stop() {
	q.topic.Stop()
	if err := q.client.Close(); err != nil {
		log.Printf("[PubSub] Error closing client: %v", err)
	}
}
