// Package request decodes incoming request data (JSON bodies, form fields,
// query strings, path parameters) into typed values, so handlers read their
// input the same declarative way they write their output.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/go-viper/mapstructure/v2"

	"github.com/mlaily/falco/core/handler"
)

// DefaultMaxJSONBody caps JSON request bodies at 1 MB.
const DefaultMaxJSONBody = 1 << 20

var (
	// ErrUnsupportedMediaType is returned when the Content-Type does not
	// match the decoder.
	ErrUnsupportedMediaType = errors.New("request: unsupported media type")

	// ErrEmptyBody is returned for decoders that require a body.
	ErrEmptyBody = errors.New("request: empty body")

	// ErrMissingParam is returned by typed param accessors for absent
	// route parameters.
	ErrMissingParam = errors.New("request: missing path parameter")
)

// JSON decodes the request body as JSON into v. The Content-Type must be
// application/json (parameters allowed); the body is capped at
// DefaultMaxJSONBody.
func JSON(ctx handler.Context, v any) error {
	req := ctx.Request()

	ct := req.Header.Get("Content-Type")
	if ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != "application/json" {
			return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ct)
		}
	}
	if req.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(req.Body, DefaultMaxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("request: decode json body: %w", err)
	}
	return nil
}

// Form parses the request body as URL-encoded or multipart form data and
// decodes the fields into v using `form` struct tags. Multi-value fields
// decode into slices; single values decode weakly into the target type.
func Form(ctx handler.Context, v any) error {
	req := ctx.Request()

	if err := req.ParseForm(); err != nil {
		return fmt.Errorf("request: parse form: %w", err)
	}
	if ct := req.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); mt == "multipart/form-data" {
			if err := req.ParseMultipartForm(32 << 20); err != nil {
				return fmt.Errorf("request: parse multipart form: %w", err)
			}
		}
	}
	return decodeValues(req.PostForm, "form", v)
}

// Query decodes the URL query string into v using `query` struct tags.
func Query(ctx handler.Context, v any) error {
	return decodeValues(ctx.Request().URL.Query(), "query", v)
}

// decodeValues flattens url.Values into a map (single values unwrapped)
// and weakly decodes it into the tagged struct.
func decodeValues(values url.Values, tag string, v any) error {
	input := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			input[key] = vals[0]
		} else {
			input[key] = vals
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tag,
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("request: build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("request: decode %s values: %w", tag, err)
	}
	return nil
}

// ParamInt returns the named route parameter as an int.
func ParamInt(ctx handler.Context, name string) (int, error) {
	s := ctx.Param(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("request: parameter %s: %w", name, err)
	}
	return n, nil
}

// ParamInt64 returns the named route parameter as an int64.
func ParamInt64(ctx handler.Context, name string) (int64, error) {
	s := ctx.Param(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("request: parameter %s: %w", name, err)
	}
	return n, nil
}

// ParamBool returns the named route parameter as a bool.
func ParamBool(ctx handler.Context, name string) (bool, error) {
	s := ctx.Param(name)
	if s == "" {
		return false, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("request: parameter %s: %w", name, err)
	}
	return b, nil
}

// FormFile returns the first uploaded file for the field, parsing the
// multipart body on demand.
func FormFile(ctx handler.Context, field string) (*multipart.FileHeader, error) {
	req := ctx.Request()
	if req.MultipartForm == nil {
		if err := req.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("request: parse multipart form: %w", err)
		}
	}
	files := req.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, fmt.Errorf("request: no file in field %q", field)
	}
	return files[0], nil
}
