// Package audit records security-relevant events (registrations, logins,
// logouts, password changes, session expiries) as a fire-and-forget sink.
//
// The cardinal rule: auditing must never fail or slow down the operation
// that emits the event. Recorder.Record swallows storage errors (logging
// them locally through slog) and, with WithAsyncBuffer, hands events to a
// background writer and drops them when the buffer is full.
//
//	recorder := audit.NewRecorder(storage,
//	    audit.WithAsyncBuffer(1024),
//	    audit.WithLogger(log),
//	)
//	defer recorder.Close()
//
//	recorder.Record(ctx, &identityID, audit.KindLoggedIn, "login successful")
//
// Storage is an interface; the backend wires its audit-log table behind it.
// MemoryStorage ships for tests. A nil *Recorder is valid and records
// nothing, so services treat auditing as strictly optional.
package audit
