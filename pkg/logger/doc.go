// Package logger builds *slog.Logger values from functional options and adds
// attributes pulled from context.Context to every record.
//
// New picks slog's text or JSON handler, applies the level and static
// attributes, then wraps the handler in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks for each record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldcheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	log.DebugContext(ctx, "field failed validation",
//	    logger.Field("email"),
//	    logger.Rule("required"),
//	)
//
// Attribute helpers (Error, Component, Field, Rule, Path, Count) keep key
// names consistent. Error returns an empty attribute for a nil error, so it can
// be passed without a nil check.
package logger
