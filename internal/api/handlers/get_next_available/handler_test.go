package get_next_available

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getNextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_next_available"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type stubUseCase struct {
	resp *getNextAvailable.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *getNextAvailable.Request) (*getNextAvailable.Response, error) {
	return s.resp, s.err
}

func serve(h *Handler, cleanerID, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cleaners/"+cleanerID+"/next-available?"+rawQuery, nil)
	req = mux.SetURLVars(req, map[string]string{"cleanerId": cleanerID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	at := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	h := NewHandler(&stubUseCase{resp: &getNextAvailable.Response{
		CleanerID: 2, DurationMinutes: 120, NextAvailable: &at,
	}}, logger.NewNop())

	rec := serve(h, "2", "duration=120")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cleanerId":2,"durationMinutes":120,"nextAvailable":"2025-03-10T13:00:00Z"}`, rec.Body.String())
}

func TestHandle_None(t *testing.T) {
	h := NewHandler(&stubUseCase{resp: &getNextAvailable.Response{CleanerID: 2, DurationMinutes: 360}}, logger.NewNop())

	rec := serve(h, "2", "duration=360")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cleanerId":2,"durationMinutes":360,"nextAvailable":null}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&stubUseCase{}, logger.NewNop()), "0", "duration=60").Code)
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&stubUseCase{}, logger.NewNop()), "2", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(NewHandler(&stubUseCase{err: getNextAvailable.ErrInvalidDuration}, logger.NewNop()), "2", "duration=5").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(NewHandler(&stubUseCase{err: getNextAvailable.ErrCleanerNotFound}, logger.NewNop()), "2", "duration=60").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&stubUseCase{err: errors.New("boom")}, logger.NewNop()), "2", "duration=60").Code)
}
