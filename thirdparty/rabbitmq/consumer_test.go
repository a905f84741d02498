package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/buyer-leads/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_handle(t *testing.T) {
	event, err := json.Marshal(model.BuyerEventMessage{
		BuyerIDs: []string{"b-1"},
		Action:   "updated",
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		body      []byte
		status    int
		wantCalls int
		wantErr   bool
	}{
		{name: "success: refresh called", body: event, status: http.StatusNoContent, wantCalls: 1},
		{name: "error: api failure is retried", body: event, status: http.StatusInternalServerError, wantCalls: 1, wantErr: true},
		{name: "error: api rejects key", body: event, status: http.StatusForbidden, wantCalls: 1, wantErr: true},
		{name: "success: malformed message dropped", body: []byte("{"), status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/tags/refresh", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "secret", httpClient: srv.Client()}
			err := c.handle(context.Background(), tt.body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
