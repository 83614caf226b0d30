package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/domain/entity"
)

func newDonationTestRouter(t *testing.T) (*gin.Engine, *fakeRequestRepo, *fakeUserRepo) {
	t.Helper()
	requests := newFakeRequestRepo()
	users := newFakeUserRepo()
	logger := logrus.New()
	svc := application.NewDonationService(requests, users, nil, logger)
	h := NewDonationHandler(svc, logger)

	engine := gin.New()
	engine.GET("/donation-requests", h.ListAll)
	engine.GET("/blood-donation-requests", h.ListPending)
	engine.GET("/donation-requests/:email", h.ListByRequester)
	engine.POST("/donation-request", h.Create)
	engine.GET("/donation-request/:id", h.Get)
	engine.PUT("/donation-request/:id", h.Replace)
	engine.PATCH("/donation-request/:id", h.Patch)
	engine.DELETE("/donation-request/:id", h.Delete)
	return engine, requests, users
}

func seedUser(t *testing.T, users *fakeUserRepo, email, status string) {
	t.Helper()
	u := entity.User{Name: "Requester", Email: email, Role: entity.RoleDonor, Status: status}
	_, err := users.Insert(context.Background(), &u)
	require.NoError(t, err)
}

func requestPayload() gin.H {
	return gin.H{
		"requesterName":  "Requester",
		"requesterEmail": "req@example.com",
		"recipientName":  "Patient",
		"bloodGroup":     "B+",
		"district":       "Dhaka",
		"upazila":        "Savar",
		"hospital":       "City Hospital",
		"donationDate":   "2026-09-15",
		"donationTime":   "10:00",
	}
}

func TestDonationHandler_Create(t *testing.T) {
	t.Run("ActiveUser", func(t *testing.T) {
		engine, requests, users := newDonationTestRouter(t)
		seedUser(t, users, "req@example.com", entity.StatusActive)

		w := doJSON(t, engine, http.MethodPost, "/donation-request?email=req@example.com", requestPayload(), nil)
		body := mustJSONStatus(t, w, http.StatusOK)
		id, _ := body["insertedId"].(string)
		require.NotEmpty(t, id)

		stored, err := requests.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, entity.RequestPending, stored.Status)
	})

	t.Run("BlockedUser", func(t *testing.T) {
		engine, _, users := newDonationTestRouter(t)
		seedUser(t, users, "req@example.com", entity.StatusBlocked)

		w := doJSON(t, engine, http.MethodPost, "/donation-request?email=req@example.com", requestPayload(), nil)
		body := mustJSONStatus(t, w, http.StatusForbidden)
		assert.Equal(t, "Sorry, you are blocked. You can't make a request.", body["message"])
	})

	t.Run("UnknownUser", func(t *testing.T) {
		engine, _, _ := newDonationTestRouter(t)

		w := doJSON(t, engine, http.MethodPost, "/donation-request?email=req@example.com", requestPayload(), nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("MissingEmailParam", func(t *testing.T) {
		engine, _, users := newDonationTestRouter(t)
		seedUser(t, users, "req@example.com", entity.StatusActive)

		w := doJSON(t, engine, http.MethodPost, "/donation-request", requestPayload(), nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		engine, _, users := newDonationTestRouter(t)
		seedUser(t, users, "req@example.com", entity.StatusActive)

		payload := requestPayload()
		payload["status"] = "finished"
		w := doJSON(t, engine, http.MethodPost, "/donation-request?email=req@example.com", payload, nil)
		body := mustJSONStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "invalid payload", body["message"])
	})
}

func TestDonationHandler_Feeds(t *testing.T) {
	engine, requests, _ := newDonationTestRouter(t)
	ctx := context.Background()
	seed := []entity.DonationRequest{
		{RequesterName: "A", RequesterEmail: "a@example.com", RecipientName: "P1", Status: entity.RequestPending},
		{RequesterName: "A", RequesterEmail: "a@example.com", RecipientName: "P2", Status: entity.RequestDone},
		{RequesterName: "B", RequesterEmail: "b@example.com", RecipientName: "P3", Status: entity.RequestPending},
	}
	for i := range seed {
		_, err := requests.Insert(ctx, &seed[i])
		require.NoError(t, err)
	}

	t.Run("ListAll", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/donation-requests", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 3)
	})

	t.Run("PendingFeed", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/blood-donation-requests?status=pending", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 2)
		for _, r := range list {
			assert.Equal(t, entity.RequestPending, r["status"])
		}
	})

	t.Run("ByRequesterWithFilter", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/donation-requests/a@example.com?filter=done", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "P2", list[0]["recipientName"])
	})
}

func TestDonationHandler_Replace(t *testing.T) {
	engine, requests, _ := newDonationTestRouter(t)
	ctx := context.Background()
	dr := entity.DonationRequest{RequesterName: "A", RequesterEmail: "a@example.com", RecipientName: "P", Status: entity.RequestPending}
	res, err := requests.Insert(ctx, &dr)
	require.NoError(t, err)
	id := res.InsertedID

	w := doJSON(t, engine, http.MethodPut, "/donation-request/"+id, gin.H{"hospital": "New Hospital"}, nil)
	mustJSONStatus(t, w, http.StatusOK)

	stored, err := requests.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Hospital", stored.Hospital)
	// replace never touches ownership or lifecycle
	assert.Equal(t, "a@example.com", stored.RequesterEmail)
	assert.Equal(t, entity.RequestPending, stored.Status)
}

func TestDonationHandler_Patch(t *testing.T) {
	t.Run("StatusOnly", func(t *testing.T) {
		engine, requests, _ := newDonationTestRouter(t)
		ctx := context.Background()
		dr := entity.DonationRequest{RequesterEmail: "a@example.com", Status: entity.RequestInProgress}
		res, err := requests.Insert(ctx, &dr)
		require.NoError(t, err)

		w := doJSON(t, engine, http.MethodPatch, "/donation-request/"+res.InsertedID, gin.H{"status": "done"}, nil)
		mustJSONStatus(t, w, http.StatusOK)

		stored, err := requests.FindByID(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, entity.RequestDone, stored.Status)
	})

	t.Run("FulfillmentBindsDonor", func(t *testing.T) {
		engine, requests, _ := newDonationTestRouter(t)
		ctx := context.Background()
		dr := entity.DonationRequest{RequesterEmail: "a@example.com", Status: entity.RequestPending}
		res, err := requests.Insert(ctx, &dr)
		require.NoError(t, err)

		w := doJSON(t, engine, http.MethodPatch, "/donation-request/"+res.InsertedID, gin.H{
			"status":     "inprogress",
			"donorName":  "Donor",
			"donorEmail": "donor@example.com",
		}, nil)
		mustJSONStatus(t, w, http.StatusOK)

		stored, err := requests.FindByID(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, entity.RequestInProgress, stored.Status)
		assert.Equal(t, "Donor", stored.DonorName)
		assert.Equal(t, "donor@example.com", stored.DonorEmail)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		engine, requests, _ := newDonationTestRouter(t)
		res, err := requests.Insert(context.Background(), &entity.DonationRequest{Status: entity.RequestPending})
		require.NoError(t, err)

		w := doJSON(t, engine, http.MethodPatch, "/donation-request/"+res.InsertedID, gin.H{"status": "archived"}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonationHandler_Delete(t *testing.T) {
	engine, requests, _ := newDonationTestRouter(t)
	ctx := context.Background()
	res, err := requests.Insert(ctx, &entity.DonationRequest{RequesterEmail: "a@example.com"})
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodDelete, "/donation-request/"+res.InsertedID, nil, nil)
	body := mustJSONStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 1, body["deletedCount"])

	w = doJSON(t, engine, http.MethodDelete, "/donation-request/"+res.InsertedID, nil, nil)
	body = mustJSONStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 0, body["deletedCount"])
}

func TestDonationHandler_InvalidID(t *testing.T) {
	engine, _, _ := newDonationTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/donation-request/not-an-id", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
