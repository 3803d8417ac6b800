package exc

import (
	"errors"
	"fmt"
	"io"

	sqlite3 "github.com/mattn/go-sqlite3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCError carries a status code returned by the RPC layer. The rendered
// message includes both the raw numeric code and the name the codes package
// knows it by; unknown codes fall back to their numeric form.
var GRPCError = Declare1("GRPCError", func(w io.Writer, c codes.Code) {
	fmt.Fprintf(w, "A call into the RPC layer failed with status code %d (%s).", uint32(c), c.String())
})

// SQLiteError carries a result code returned by the SQLite layer. The
// rendered message includes the raw code and the driver's own description
// of it.
var SQLiteError = Declare1("SQLiteError", func(w io.Writer, code int) {
	fmt.Fprintf(w, "A call into the SQLite layer failed with result code %d (%s).", code, sqlite3.ErrNo(code).Error())
})

// AssertThrowRPC throws a GRPCError for any RPC error, extracting the
// status code from err. A nil err passes.
func AssertThrowRPC(err error) {
	if err == nil {
		return
	}
	issue(throwAlways, 1, "status.Code(err) == codes.OK", GRPCError(status.Code(err)))
}

// AssertThrowSQLite throws a SQLiteError for any database error that
// carries a SQLite result code, and a free-form Message otherwise. A nil
// err passes.
func AssertThrowSQLite(err error) {
	if err == nil {
		return
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		issue(throwAlways, 1, "err == nil", SQLiteError(int(serr.Code)))
	} else {
		issue(throwAlways, 1, "err == nil", Message(err.Error()))
	}
}
