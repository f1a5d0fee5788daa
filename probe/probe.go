package probe

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Func represents a health check that returns an *Error when the resource is
// unavailable and nil otherwise.
type Func func(ctx context.Context) *Error

// PingFunc is a plain health check returning an error when the resource is
// unavailable.
type PingFunc func(ctx context.Context) error

// DBPinger captures the subset of *sql.DB used for readiness checks.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// NewPingProbe wraps a PingFunc so its failures are reported as *Error.
func NewPingProbe(name string, fn PingFunc) Func {
	return func(ctx context.Context) *Error {
		if fn == nil {
			return nilComponentError(name, "ping function")
		}
		ctx = contextOrBackground(ctx)

		if err := fn(ctx); err != nil {
			return Fail(name, err)
		}
		return nil
	}
}

// MongoPinger captures the subset of the MongoDB client used for readiness checks.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// NewMongoPingProbe creates a Func named "mongo" that pings MongoDB using the
// provided client. If readPref is nil it defaults to readpref.Primary.
func NewMongoPingProbe(client MongoPinger, readPref *readpref.ReadPref) Func {
	return func(ctx context.Context) *Error {
		if client == nil {
			return nilComponentError("mongo", "client")
		}

		ctx = contextOrBackground(ctx)

		rp := readPref
		if rp == nil {
			rp = readpref.Primary()
		}

		if err := client.Ping(ctx, rp); err != nil {
			return Fail("mongo", err)
		}
		return nil
	}
}

// NewDBPingProbe creates a Func that pings databases such as PostgreSQL using the provided client.
func NewDBPingProbe(name string, db DBPinger) Func {
	return func(ctx context.Context) *Error {
		if db == nil {
			return nilComponentError(name, "db client")
		}
		ctx = contextOrBackground(ctx)

		if err := db.PingContext(ctx); err != nil {
			return Fail(name, err)
		}
		return nil
	}
}
