package host

// Keys of the framework services registered before any user stage runs.
const (
	ServiceLogger = "falco.logger"
	ServiceConfig = "falco.config"
)

// Services is the keyed registry standing in for the process's service
// collection. It is populated during the service-registration phase of Run
// and is read-only afterwards, so no locking is needed on the request path.
type Services struct {
	values map[string]any
}

// NewServices creates an empty registry.
func NewServices() *Services {
	return &Services{values: make(map[string]any)}
}

// Set registers a value under key, replacing any previous registration.
func (s *Services) Set(key string, value any) *Services {
	s.values[key] = value
	return s
}

// Get returns the raw registration for key.
func (s *Services) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Service returns the registration for key as T. The second result is false
// when the key is absent or holds a different type.
func Service[T any](s *Services, key string) (T, bool) {
	v, ok := s.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
