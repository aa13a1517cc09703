//go:build unit

package checkout_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Antonio1491/parksys-sub007/internal/checkout"
	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	paths    []string
	bodies   []map[string]any
	response map[string]any
	err      error
}

func (b *fakeBackend) PostJSON(_ context.Context, path string, body any, out any) error {
	b.paths = append(b.paths, path)

	raw, _ := json.Marshal(body)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	b.bodies = append(b.bodies, m)

	if b.err != nil {
		return b.err
	}
	if out != nil && b.response != nil {
		raw, _ := json.Marshal(b.response)
		return json.Unmarshal(raw, out)
	}
	return nil
}

func TestAdapterRouting(t *testing.T) {
	itemID := uuid.New()
	backendID := uuid.New()
	recordID := uuid.New()
	participant := testParticipant(t)

	intentReq := checkout.IntentRequest{
		ItemID:       itemID,
		Participant:  participant,
		BaseAmount:   pricing.NewMoney(50000),
		Selection:    pricing.Selection("seniors"),
		QuotedAmount: pricing.NewMoney(25000),
	}
	finalizeReq := checkout.FinalizeRequest{
		ItemID:      itemID,
		BackendID:   &backendID,
		ChargeRef:   "ch_123",
		Participant: participant,
		BaseAmount:  pricing.NewMoney(50000),
		Selection:   pricing.Selection("seniors"),
		FinalAmount: pricing.NewMoney(25000),
	}

	cases := []struct {
		name        string
		kind        catalog.Kind
		pathSegment string
		recordField string
	}{
		{name: "activity", kind: catalog.KindActivity, pathSegment: "activities", recordField: "registrationId"},
		{name: "event", kind: catalog.KindEvent, pathSegment: "events", recordField: "registrationId"},
		{name: "space reservation", kind: catalog.KindSpaceReservation, pathSegment: "spaces", recordField: "reservationId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{response: map[string]any{
				"transactionId": backendID.String(),
				"clientSecret":  "secret_abc",
				"amountCents":   25000,
			}}
			adapter, err := checkout.AdapterFor(backend, tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, adapter.Kind())

			res, err := adapter.CreateIntent(context.Background(), intentReq)
			require.NoError(t, err)
			assert.Equal(t, backendID, res.BackendID)
			assert.Equal(t, "secret_abc", res.ClientSecret)
			assert.Equal(t, int64(25000), res.Amount.Cents())

			require.Len(t, backend.paths, 1)
			assert.Equal(t, "/api/payments/"+tc.pathSegment+"/"+itemID.String()+"/intent", backend.paths[0])
			assert.Equal(t, "seniors", backend.bodies[0]["discountId"])
			assert.Equal(t, float64(50000), backend.bodies[0]["baseAmountCents"])

			backend.response = map[string]any{
				tc.recordField: recordID.String(),
				"amountCents":  25000,
				"replayed":     true,
			}
			fin, err := adapter.Finalize(context.Background(), finalizeReq)
			require.NoError(t, err)
			assert.Equal(t, recordID, fin.RecordID)
			assert.True(t, fin.Replayed)

			require.Len(t, backend.paths, 2)
			assert.Equal(t, "/api/payments/"+tc.pathSegment+"/"+itemID.String()+"/finalize", backend.paths[1])
			assert.Equal(t, "ch_123", backend.bodies[1]["chargeRef"])
			assert.Equal(t, float64(25000), backend.bodies[1]["finalAmountCents"])
		})
	}
}

func TestAdapterForUnknownKind(t *testing.T) {
	_, err := checkout.AdapterFor(&fakeBackend{}, catalog.Kind("concert"))
	assert.ErrorIs(t, err, catalog.ErrUnknownKind)
}

func TestAdapterPropagatesBackendError(t *testing.T) {
	backend := &fakeBackend{err: &checkout.BackendError{StatusCode: 404, Message: "not found"}}
	adapter := checkout.NewActivityAdapter(backend)

	_, err := adapter.CreateIntent(context.Background(), checkout.IntentRequest{ItemID: uuid.New()})
	var be *checkout.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.StatusCode)
}
