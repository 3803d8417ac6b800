package exc

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	sqlite3 "github.com/mattn/go-sqlite3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorRendersCodeAndName(t *testing.T) {
	got := renderInfo(GRPCError(codes.Unavailable))
	if !strings.Contains(got, "status code 14 (Unavailable)") {
		t.Errorf("rendered %q", got)
	}

	// Codes the codes package does not know still render numerically.
	got = renderInfo(GRPCError(codes.Code(999)))
	if !strings.Contains(got, "status code 999 (Code(999))") {
		t.Errorf("rendered %q", got)
	}
}

func TestSQLiteErrorRendersResultCode(t *testing.T) {
	got := renderInfo(SQLiteError(int(sqlite3.ErrCantOpen)))
	if !strings.Contains(got, "result code 14") {
		t.Errorf("rendered %q", got)
	}
}

func TestAssertThrowRPC(t *testing.T) {
	if err := Do(func() { AssertThrowRPC(nil) }); err != nil {
		t.Fatalf("nil error should pass: %v", err)
	}

	err := Do(func() {
		AssertThrowRPC(status.Error(codes.Unavailable, "node down"))
	})
	if err == nil {
		t.Fatal("expected a thrown error")
	}
	e := err.(*Error)
	if e.Name() != "GRPCError" {
		t.Errorf("Name() = %s", e.Name())
	}
	if !strings.Contains(e.Error(), "Unavailable") {
		t.Errorf("message should name the status code:\n%s", e.Error())
	}

	// Errors that never went through the status package map to Unknown.
	err = Do(func() { AssertThrowRPC(errors.New("plain failure")) })
	if !strings.Contains(err.Error(), "status code 2 (Unknown)") {
		t.Errorf("message for a plain error:\n%s", err.Error())
	}
}

func TestAssertThrowSQLite(t *testing.T) {
	if err := Do(func() { AssertThrowSQLite(nil) }); err != nil {
		t.Fatalf("nil error should pass: %v", err)
	}

	err := Do(func() {
		AssertThrowSQLite(sqlite3.Error{Code: sqlite3.ErrCantOpen})
	})
	e := err.(*Error)
	if e.Name() != "SQLiteError" {
		t.Errorf("Name() = %s", e.Name())
	}
	if !strings.Contains(e.Error(), "result code 14") {
		t.Errorf("message should carry the result code:\n%s", e.Error())
	}

	// Wrapped driver errors are unwrapped before classification.
	err = Do(func() {
		AssertThrowSQLite(fmt.Errorf("open store: %w", sqlite3.Error{Code: sqlite3.ErrBusy}))
	})
	if !strings.Contains(err.Error(), "result code 5") {
		t.Errorf("wrapped driver error lost its code:\n%s", err.Error())
	}

	// Anything else degrades to a free-form message.
	err = Do(func() { AssertThrowSQLite(errors.New("disk on fire")) })
	e = err.(*Error)
	if e.Name() != "Message" {
		t.Errorf("Name() = %s", e.Name())
	}
	if !strings.Contains(e.Error(), "disk on fire") {
		t.Errorf("message should carry the original text:\n%s", e.Error())
	}
}
