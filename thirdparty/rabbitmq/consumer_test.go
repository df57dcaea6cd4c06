package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_CallExpireCartAPI(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "expired", status: http.StatusOK},
		{name: "cart gone is final", status: http.StatusNotFound},
		{name: "server error is retried", status: http.StatusInternalServerError, wantErr: true},
		{name: "stock busy is retried", status: http.StatusServiceUnavailable, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "k", httpClient: srv.Client()}
			err := c.callExpireCartAPI(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "/internal/v1/cart/7/expire", gotPath)
			assert.Equal(t, "Bearer k", gotAuth)
		})
	}
}

func TestDelayMillis(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(3_600_000), delayMillis(now.Add(time.Hour), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Minute), now))
}
