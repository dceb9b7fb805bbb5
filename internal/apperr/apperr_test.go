package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		Name           string
		Err            error
		ExpectedStatus int
	}{
		{Name: "Validation #1", Err: Validation("bad input"), ExpectedStatus: http.StatusBadRequest},
		{Name: "Not found #2", Err: NotFound("no such request"), ExpectedStatus: http.StatusNotFound},
		{Name: "Conflict wrapped #3", Err: fmt.Errorf("claim: %w", Conflict("already claimed")), ExpectedStatus: http.StatusConflict},
		{Name: "Payment required #4", Err: New(KindPaymentRequired, "payment required"), ExpectedStatus: http.StatusPaymentRequired},
		{Name: "Forbidden #5", Err: Forbidden("not owner"), ExpectedStatus: http.StatusForbidden},
		{Name: "Signature #6", Err: New(KindSignatureInvalid, "bad signature"), ExpectedStatus: http.StatusBadRequest},
		{Name: "Upstream #7", Err: Upstream(errors.New("gateway down")), ExpectedStatus: http.StatusBadGateway},
		{Name: "Plain error #8", Err: errors.New("boom"), ExpectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if status := HTTPStatus(tc.Err); status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%d', got: '%d'", tc.ExpectedStatus, status)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if msg := Message(errors.New("db password leaked")); msg != "Internal Server Error" {
		t.Errorf("Expected internal errors to be hidden, got: '%s'", msg)
	}
	var err error = Upstream(errors.New("BAD_REQUEST_ERROR: invalid account"))
	if msg := Message(err); msg != "upstream failure: BAD_REQUEST_ERROR: invalid account" {
		t.Errorf("Expected upstream message to be kept, got: '%s'", msg)
	}
	err = fmt.Errorf("%w: expired", Validation("coupon is not valid"))
	if msg := Message(err); msg != "coupon is not valid: expired" {
		t.Errorf("Expected reason to be kept, got: '%s'", msg)
	}
}
