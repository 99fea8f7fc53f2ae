package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records an audit event kind under the key "event".
func Event(kind any) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.Any("event", kind)
}

// SessionToken records a redacted session token under the key "session_token".
// Only a short prefix is logged; tokens are bearer credentials and must never
// appear in full in log output.
func SessionToken(token string) slog.Attr {
	const visible = 6
	if len(token) > visible {
		token = token[:visible] + "..."
	}
	return slog.String("session_token", token)
}
