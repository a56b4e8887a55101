package chatbot

import (
	"context"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// FallbackReply is returned whenever the classifier cannot produce an answer.
const FallbackReply = "I am not sure how to answer that."

// Client talks to the external intent-classifier service. The classifier
// holds the trained model; no state is shared with the rest of the system.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient builds a chatbot client for the given classifier endpoint. An
// empty URL yields a client that always falls back.
func NewClient(apiURL string) *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
		url:  apiURL,
	}
}

// Reply forwards the learner's free-form message to the classifier and
// returns its response string. Transport errors, non-200 statuses and empty
// responses all degrade to the fixed fallback sentence.
func (c *Client) Reply(ctx context.Context, message string) string {
	if c.url == "" {
		return FallbackReply
	}

	var out struct {
		Response string `json:"response"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"message": message}).
		SetResult(&out).
		Post(c.url)
	if err != nil {
		log.Printf("chatbot classifier call failed: %v", err)
		return FallbackReply
	}
	if resp.StatusCode() != 200 {
		log.Printf("chatbot classifier returned status %d", resp.StatusCode())
		return FallbackReply
	}
	if out.Response == "" {
		return FallbackReply
	}
	return out.Response
}
