package rank_cleaners

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	rankCleaners "github.com/m04kA/SMC-AvailabilityService/internal/usecase/rank_cleaners"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type stubUseCase struct {
	got  *rankCleaners.Request
	resp *rankCleaners.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *rankCleaners.Request) (*rankCleaners.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cleaners/ranking?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &rankCleaners.Response{
		Tier: domain.TierDeep,
		Cleaners: []domain.RankedCleaner{
			{CleanerID: 8, NextAvailable: time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)},
		},
		Source: rankCleaners.SourceIndex,
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), "tier=deep&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tier":"deep","cleaners":[{"cleanerId":8,"nextAvailable":"2025-03-11T08:00:00Z"}]}`, rec.Body.String())
	assert.Equal(t, &rankCleaners.Request{Tier: domain.TierDeep, Limit: 5}, uc.got)
}

func TestHandle_DefaultsToStandard(t *testing.T) {
	uc := &stubUseCase{resp: &rankCleaners.Response{Tier: domain.TierStandard}}

	rec := serve(NewHandler(uc, logger.NewNop()), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &rankCleaners.Request{Tier: domain.TierStandard}, uc.got)
	assert.JSONEq(t, `{"tier":"standard","cleaners":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&stubUseCase{}, logger.NewNop()), "limit=-3").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(NewHandler(&stubUseCase{err: rankCleaners.ErrInvalidTier}, logger.NewNop()), "tier=express").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&stubUseCase{err: errors.New("down")}, logger.NewNop()), "tier=deep").Code)
}
