package create_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PoolService/internal/api/middleware"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	createReservation "github.com/m04kA/SMC-PoolService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
)

type stubUseCase struct {
	err  error
	got  *createReservation.Request
	resp *createReservation.Response
}

func (s *stubUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func serve(h *Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "class not found", err: createReservation.ErrClassNotFound, wantStatus: http.StatusNotFound},
		{name: "lane not found", err: createReservation.ErrLaneNotFound, wantStatus: http.StatusNotFound},
		{name: "class full", err: createReservation.ErrClassFull, wantStatus: http.StatusConflict},
		{name: "lane unavailable", err: createReservation.ErrLaneUnavailable, wantStatus: http.StatusConflict},
		{name: "no lane", err: createReservation.ErrNoLaneAvailable, wantStatus: http.StatusConflict},
		{name: "too late", err: createReservation.ErrTooLateToBook, wantStatus: http.StatusUnprocessableEntity},
		{name: "invalid input", err: createReservation.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: boom", createReservation.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, validator.New(), logger.NewNop())
			rec := serve(h, "user-1", `{"classId":"cls-1"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{
		ID:            "r-1",
		UserID:        "user-1",
		ClassID:       "cls-1",
		LaneNumber:    3,
		Status:        "confirmed",
		ReservedAt:    time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		ClassStartsAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, validator.New(), logger.NewNop())

	rec := serve(h, "user-1", `{"classId":"cls-1","preferredLane":3,"notes":"первое занятие"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "user-1", uc.got.UserID)
	require.NotNil(t, uc.got.PreferredLane)
	assert.Equal(t, 3, *uc.got.PreferredLane)
	assert.Contains(t, rec.Body.String(), `"classStartsAt":"2026-10-17T09:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"statusLabel":"Подтверждено"`)
}

func TestHandle_RequestProblems(t *testing.T) {
	h := NewHandler(&stubUseCase{}, validator.New(), logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "", `{"classId":"cls-1"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "user-1", `{"classId":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "user-1", `{"classId":"cls-1","extra":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "user-1", `{"classId":"cls-1","preferredLane":0}`).Code)
}
