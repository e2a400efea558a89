package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the most tokens FCM accepts in one multicast call.
const MaxMulticastTokens = 500

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// NotificationData contains the data to send in a push notification
type NotificationData struct {
	Title string
	Body  string
	Data  map[string]string // Custom data payload
}

// BatchResult summarises one multicast call.
type BatchResult struct {
	SuccessCount int
	FailedTokens []string
}

// SendMulticast sends one notification to up to MaxMulticastTokens devices.
// A non-nil error means the whole call failed; per-device failures are
// reported in FailedTokens.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, notification NotificationData) (*BatchResult, error) {
	if len(tokens) == 0 {
		return &BatchResult{}, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return nil, fmt.Errorf("multicast accepts at most %d tokens, got %d", MaxMulticastTokens, len(tokens))
	}

	response, err := c.messagingClient.SendEachForMulticast(ctx, buildMulticastMessage(tokens, notification))
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM multicast message: %w", err)
	}

	log.Printf("[FCM] Multicast sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	result := &BatchResult{SuccessCount: response.SuccessCount}
	for i, resp := range response.Responses {
		if !resp.Success {
			result.FailedTokens = append(result.FailedTokens, tokens[i])
			log.Printf("[FCM] Failed to send to token %s: %v", redact(tokens[i]), resp.Error)
		}
	}

	return result, nil
}

func buildMulticastMessage(tokens []string, notification NotificationData) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}

// redact keeps only a token prefix for logs.
func redact(token string) string {
	if len(token) <= 20 {
		return token
	}
	return token[:20] + "..."
}
