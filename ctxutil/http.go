package ctxutil

import (
	"context"
	"net/http"
	"strings"
)

const httpRequestKey = "http_request"

// SetHTTPRequest sets HTTP request to context.Context
func SetHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return SetValue(ctx, httpRequestKey, req)
}

// GetHTTPRequest gets HTTP request from context.Context
func GetHTTPRequest(ctx context.Context) *http.Request {
	if req, ok := GetValue(ctx, httpRequestKey).(*http.Request); ok {
		return req
	}
	if ginCtx, ok := GetGinContext(ctx); ok && ginCtx.Request != nil {
		return ginCtx.Request
	}
	return nil
}

// GetAcceptLanguage gets Accept-Language header from context
func GetAcceptLanguage(ctx context.Context) string {
	if ginCtx, ok := GetGinContext(ctx); ok {
		if lang := ginCtx.GetHeader("Accept-Language"); lang != "" {
			return lang
		}
	}
	if req := GetHTTPRequest(ctx); req != nil {
		return req.Header.Get("Accept-Language")
	}
	return ""
}

// GetLanguage returns the first Accept-Language entry whose primary subtag
// is in supported. The first supported language is the default.
func GetLanguage(ctx context.Context, supported ...string) string {
	if len(supported) == 0 {
		return ""
	}
	return MatchLanguage(GetAcceptLanguage(ctx), supported...)
}

// MatchLanguage matches an Accept-Language header value against supported
// primary subtags in header order. Quality values are not weighed.
func MatchLanguage(header string, supported ...string) string {
	if len(supported) == 0 {
		return ""
	}
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		for _, s := range supported {
			if primary == s {
				return s
			}
		}
	}
	return supported[0]
}
