// Package ctxutil provides request-scoped context helpers shared by the
// response writers, the logger and the demo host.
//
// Values are stored on the gin.Context when one is embedded in the
// context.Context, and on the context.Context itself otherwise, so handlers
// and middleware see the same values regardless of which they hold.
//
// # Trace IDs
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	// traceID is a random UUID unless one was already present
//
// # Languages
//
//	lang := ctxutil.GetLanguage(ctx, "en", "zh")
//	// "zh" for "Accept-Language: zh-CN,zh;q=0.9", "en" when nothing matches
package ctxutil
