package gdex_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/adapters/out/gdex"
	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSettings(t *testing.T) consignment.Settings {
	t.Helper()
	settings, err := consignment.NewSettings(consignment.SettingsParams{
		APIToken:        "token-1",
		AccountNo:       "ACC 42",
		SubscriptionKey: "sub-1",
	})
	require.NoError(t, err)
	return settings
}

func testParcel(t *testing.T) consignment.Parcel {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		"WH/OUT/00001",
		shipment.Outgoing,
		kernel.NewContact(kernel.ContactParams{
			Name:     "Tan Ah Kow",
			Mobile:   "0123456789",
			Street:   "8 Jalan Tun Razak",
			City:     "Kuala Lumpur",
			Postcode: "50400",
			State:    "Selangor",
		}),
		kernel.NewWeight("2.5"),
		"",
	)
	require.NoError(t, err)
	parcel, err := consignment.NewParcel(s)
	require.NoError(t, err)
	return parcel
}

func newClient(t *testing.T, handler http.HandlerFunc) *gdex.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gdex.NewClient(zap.NewNop(), gdex.WithBaseURL(server.URL+"/"))
}

func TestCreateConsignment_SendsRequest(t *testing.T) {
	var got struct {
		method, path, accountNo string
		header                  http.Header
		body                    map[string][]map[string]any
	}

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.accountNo = r.URL.Query().Get("accountNo")
		got.header = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got.body)
		_, _ = w.Write([]byte(`{"data":[{"cnNo":"GDX123"}]}`))
	})

	cn, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{testParcel(t)})

	require.NoError(t, err)
	assert.Equal(t, "GDX123", cn)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/CreateConsignment", got.path)
	assert.Equal(t, "ACC 42", got.accountNo)
	assert.Equal(t, "token-1", got.header.Get("ApiToken"))
	assert.Equal(t, "sub-1", got.header.Get("Ocp-Apim-Subscription-Key"))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))

	require.Len(t, got.body["ShipmentReceiversArray"], 1)
	receiver := got.body["ShipmentReceiversArray"][0]
	assert.Equal(t, "Parcel", receiver["shipmentType"])
	assert.EqualValues(t, 1, receiver["totalPiece"])
	assert.Equal(t, "Goods", receiver["shipmentContent"])
	assert.EqualValues(t, 0, receiver["shipmentValue"])
	assert.EqualValues(t, 3, receiver["shipmentWeight"])
	assert.EqualValues(t, 20, receiver["shipmentLength"])
	assert.EqualValues(t, 15, receiver["shipmentWidth"])
	assert.EqualValues(t, 10, receiver["shipmentHeight"])
	assert.Equal(t, false, receiver["isDangerousGoods"])
	assert.Equal(t, "Company", receiver["companyName"])
	assert.Equal(t, "Tan Ah Kow", receiver["receiverName"])
	assert.Equal(t, "0123456789", receiver["receiverMobile"])
	assert.Equal(t, "no-reply@example.com", receiver["receiverEmail"])
	assert.Equal(t, "8 Jalan Tun Razak", receiver["receiverAddress1"])
	assert.Equal(t, "", receiver["receiverAddress2"])
	assert.Equal(t, "Kuala Lumpur", receiver["receiverAddress3"])
	assert.Equal(t, "50400", receiver["receiverPostcode"])
	assert.Equal(t, "Kuala Lumpur", receiver["receiverCity"])
	assert.Equal(t, "Selangor", receiver["receiverState"])
	assert.Equal(t, "MY", receiver["receiverCountry"])
}

func TestCreateConsignment_Responses(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantCN  string
		wantErr error
	}{
		{name: "first data record", status: http.StatusOK, body: `{"data":[{"cnNo":"GDX123"}]}`, wantCN: "GDX123"},
		{name: "top level", status: http.StatusOK, body: `{"CN":"GDX456"}`, wantCN: "GDX456"},
		{name: "no known key", status: http.StatusOK, body: `{}`, wantErr: consignment.ErrTrackingNumberNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, wantErr: consignment.ErrRemote},
		{name: "created is not ok", status: http.StatusCreated, body: `{"cn":"X"}`, wantErr: consignment.ErrRemote},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: consignment.ErrMalformedResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			cn, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{testParcel(t)})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, cn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCN, cn)
		})
	}
}

func TestCreateConsignment_RemoteErrorKeepsBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	})

	_, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{testParcel(t)})

	var remote *consignment.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)
	assert.Equal(t, `{"message":"invalid token"}`, remote.Body)
}

func TestCreateConsignment_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	client := gdex.NewClient(zap.NewNop(), gdex.WithBaseURL(base))

	_, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{testParcel(t)})

	require.ErrorIs(t, err, consignment.ErrServiceUnreachable)
}

func TestCreateConsignment_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	defer close(release)

	client := gdex.NewClient(zap.NewNop(), gdex.WithBaseURL(server.URL), gdex.WithTimeout(50*time.Millisecond))

	_, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{testParcel(t)})

	require.ErrorIs(t, err, consignment.ErrServiceUnreachable)
}

func TestCreateConsignment_CancelledContext(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cn":"never"}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateConsignment(ctx, testSettings(t), []consignment.Parcel{testParcel(t)})

	require.ErrorIs(t, err, consignment.ErrServiceUnreachable)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCreateConsignment_RejectsUnbuiltParcel(t *testing.T) {
	called := false
	client := newClient(t, func(http.ResponseWriter, *http.Request) {
		called = true
	})

	_, err := client.CreateConsignment(context.Background(), testSettings(t), []consignment.Parcel{{}})

	require.ErrorIs(t, err, consignment.ErrParcelIsNotConstructed)
	assert.False(t, called)
}
