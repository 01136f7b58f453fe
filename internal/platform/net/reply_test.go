package net_test

import (
	"net/http"
	"testing"

	perr "hidegrade/internal/platform/errors"
	pnet "hidegrade/internal/platform/net"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	w := pnet.Reply(http.StatusCreated, map[string]int{"x": 1}, "req-1")
	assert.Equal(t, http.StatusCreated, w.StatusCode)
	assert.Equal(t, "Created", w.Status)
	assert.Equal(t, "req-1", w.RequestID)
	assert.Equal(t, map[string]int{"x": 1}, w.Data)
	assert.Zero(t, w.Code)
}

func TestError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{perr.NotFoundf("record %s not found", "r1"), http.StatusNotFound},
		{perr.Unauthorizedf("missing bearer token"), http.StatusUnauthorized},
		{perr.New(perr.ErrorCodeConflict, "record is not pending"), http.StatusConflict},
		{perr.New(perr.ErrorCodeValidation, "lot_id is required"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		status, w := pnet.Error(tc.err, "req-2")
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.status, w.StatusCode)
		assert.NotEmpty(t, w.Error)
		assert.Nil(t, w.Data)
	}

	status, w := pnet.Error(nil, "req-3")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, w.Error)
}

func TestError_CarriesField(t *testing.T) {
	_, w := pnet.Error(perr.WithField(perr.New(perr.ErrorCodeValidation, "lot_id is a required field"), "lot_id"), "")
	assert.Equal(t, "lot_id", w.Field)
	assert.Equal(t, perr.ErrorCodeValidation, w.Code)
}
