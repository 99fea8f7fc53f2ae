// Package logger provides a small slog factory and typed attribute helpers
// shared by the kit's services.
//
// The factory builds a *slog.Logger with either a text or JSON handler:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("auth")),
//	)
//
// The attribute helpers keep log keys consistent across packages (error,
// user_id, component, event, session_token). SessionToken redacts all but a
// short prefix so bearer credentials never end up in log storage.
//
// Services default to NewDiscard so logging is opt-in per instance.
package logger
