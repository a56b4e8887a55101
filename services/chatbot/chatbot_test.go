package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplyForwardsClassifierResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "when do courses unlock?", in.Message)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"response": "Pass all Aptitude courses first."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	reply := client.Reply(context.Background(), "when do courses unlock?")
	require.Equal(t, "Pass all Aptitude courses first.", reply)
}

func TestReplyFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.Equal(t, FallbackReply, client.Reply(context.Background(), "hello"))
}

func TestReplyFallsBackOnEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.Equal(t, FallbackReply, client.Reply(context.Background(), "hello"))
}

func TestReplyFallsBackWithoutEndpoint(t *testing.T) {
	client := NewClient("")
	require.Equal(t, FallbackReply, client.Reply(context.Background(), "hello"))
}
