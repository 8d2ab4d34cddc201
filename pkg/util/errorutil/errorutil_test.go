package errorutil

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("ticket", 123)

	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound to hold")
	}
	if !strings.Contains(err.Error(), "ticket") || !strings.Contains(err.Error(), "123") {
		t.Errorf("message must carry entity kind and id, got %q", err.Error())
	}
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404 status, got %+v", domainErr)
	}
}

func TestNewOperationFailedPreservesCause(t *testing.T) {
	cause := errors.New("constraint violation")
	err := NewOperationFailed("update ticket", cause)

	if !errors.Is(err, cause) {
		t.Errorf("cause must be reachable via Unwrap")
	}
	if !strings.Contains(err.Error(), "constraint violation") {
		t.Errorf("cause message must be preserved, got %q", err.Error())
	}
	if IsNotFound(err) {
		t.Errorf("operation failed must not classify as not found")
	}
}

func TestToDomainError(t *testing.T) {
	testCases := []struct {
		name       string
		in         error
		wantCode   string
		wantStatus int
	}{
		{name: "nil", in: nil},
		{name: "passthrough", in: NewNotFound("user", 7), wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "no rows", in: pgx.ErrNoRows, wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown", in: errors.New("boom"), wantCode: CodeInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.in)
			if tc.in == nil {
				if got != nil {
					t.Errorf("nil must map to nil")
				}
				return
			}
			if got.Code != tc.wantCode || got.HTTPStatus != tc.wantStatus {
				t.Errorf("got %+v, want code %s status %d", got, tc.wantCode, tc.wantStatus)
			}
		})
	}
}
