package response

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mlaily/falco/core/handler"
)

// DebugRequest echoes the full request (method, target, headers, body) back
// as plain text. Strictly a diagnostic tool: it reflects arbitrary request
// content, so it must never be mounted in production or enabled by default.
func DebugRequest() handler.Handler {
	return func(ctx handler.Context) error {
		req := ctx.Request()

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s %s\n", req.Method, req.URL.RequestURI(), req.Proto)

		// Sorted for deterministic output.
		names := make([]string, 0, len(req.Header))
		for name := range req.Header {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, v := range req.Header[name] {
				fmt.Fprintf(&sb, "%s: %s\n", name, v)
			}
		}

		if req.Body != nil {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return fmt.Errorf("response: read request body: %w", err)
			}
			if len(body) > 0 {
				sb.WriteString("\n")
				sb.Write(body)
			}
		}

		return PlainText(sb.String())(ctx)
	}
}
