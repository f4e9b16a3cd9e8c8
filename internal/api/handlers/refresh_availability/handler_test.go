package refresh_availability

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

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type stubUseCase struct {
	got  *refresh.Request
	resp *refresh.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *refresh.Request) (*refresh.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, cleanerID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cleaners/"+cleanerID+"/availability/refresh", nil)
	req = mux.SetURLVars(req, map[string]string{"cleanerId": cleanerID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	standard := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &refresh.Response{
		CleanerID: 7,
		NextAvailability: domain.NextAvailability{
			Standard:  &standard,
			UpdatedAt: &updated,
		},
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"cleanerId": 7,
		"nextAvailable2h": "2025-03-10T10:00:00Z",
		"nextAvailable6h": null,
		"updatedAt": "2025-03-10T08:30:00Z"
	}`, rec.Body.String())
	assert.Equal(t, &refresh.Request{CleanerID: 7, Source: refresh.SourceHTTP}, uc.got)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&stubUseCase{}, logger.NewNop()), "x").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(NewHandler(&stubUseCase{err: refresh.ErrCleanerNotFound}, logger.NewNop()), "7").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&stubUseCase{err: errors.New("db")}, logger.NewNop()), "7").Code)
}
