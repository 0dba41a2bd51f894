package response

import (
	"encoding/json"
	"strconv"

	"github.com/mlaily/falco/core/handler"
)

// JSON serializes the value as the response body with
// Content-Type application/json; charset=utf-8. The payload is serialized
// in full before any byte reaches the wire so that Content-Length can be
// set from the actual serialized size. Serialization errors propagate
// unchanged and leave the response incomplete.
func JSON(v any) handler.Handler {
	return jsonHandler(v, func(v any) ([]byte, error) {
		return json.Marshal(v)
	})
}

// JSONIndent is JSON with indented output.
func JSONIndent(v any, prefix, indent string) handler.Handler {
	return jsonHandler(v, func(v any) ([]byte, error) {
		return json.MarshalIndent(v, prefix, indent)
	})
}

func jsonHandler(v any, marshal func(any) ([]byte, error)) handler.Handler {
	return func(ctx handler.Context) error {
		b, err := marshal(v)
		if err != nil {
			return err
		}

		h := ctx.ResponseWriter().Header()
		h.Set("Content-Type", "application/json; charset=utf-8")
		h.Set("Content-Length", strconv.Itoa(len(b)))
		return ctx.Complete(b)
	}
}
