package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/stretchr/testify/require"
)

// seedUser inserts a user row directly, bypassing service validation.
// Sessions carry a required initiator edge, so most tests need one.
func seedUser(t *testing.T, client *ent.Client, id, name string) *ent.User {
	t.Helper()

	u, err := client.User.Create().
		SetID(id).
		SetName(name).
		SetEmail(fmt.Sprintf("%s@example.com", id)).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// newSessionRequest builds a minimal valid CreateSessionRequest. The
// initiator is always included in participant_ids.
func newSessionRequest(initiatorID string, participantIDs ...string) models.CreateSessionRequest {
	return models.CreateSessionRequest{
		SessionID:      uuid.New().String(),
		InitiatorID:    initiatorID,
		ParticipantIDs: append([]string{initiatorID}, participantIDs...),
		Intent:         "친구와 저녁 약속",
	}
}
