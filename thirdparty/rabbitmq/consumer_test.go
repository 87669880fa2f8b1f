package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSink_Forward(t *testing.T) {
	event := &model.AdminAuditEvent{
		EventID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		Action:     constant.AuditActionApprove,
		ActorID:    2,
		TargetID:   5,
		AdminType:  constant.AdminTypeLocal,
		FromStatus: constant.AdminStatusPending,
		ToStatus:   constant.AdminStatusApproved,
		OccurredAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "stored", status: http.StatusCreated},
		{name: "bad event is dropped", status: http.StatusBadRequest},
		{name: "server error requeues", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/internal/v1/admin-events", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

				var got model.AdminAuditEvent
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, event.EventID, got.EventID)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			sink := NewEventSink(srv.URL, "secret", srv.Client())
			err := sink.Forward(context.Background(), event)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
