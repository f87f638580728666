package props

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmwire/nmwire-go/pkg/log"
	"github.com/nmwire/nmwire-go/pkg/registry"
)

// Decoder turns property values into status records.
// It is safe for concurrent use when its logger is.
type Decoder struct {
	logger    log.Logger
	sessionID string
	now       func() time.Time
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger translation events are sent to.
func WithLogger(l log.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSessionID sets the session ID stamped on every event.
func WithSessionID(id string) Option {
	return func(d *Decoder) {
		d.sessionID = id
	}
}

// NewDecoder creates a Decoder. Without options it discards events and uses
// a random session ID.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger:    log.NoopLogger{},
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SessionID returns the session ID stamped on events.
func (d *Decoder) SessionID() string {
	return d.sessionID
}

// reader reads the properties of one object.
type reader struct {
	d      *Decoder
	src    PropertySource
	object string
}

func (d *Decoder) reader(src PropertySource) *reader {
	return &reader{d: d, src: src, object: objectPath(src)}
}

func key(iface, name string) string {
	return iface + "." + name
}

// fail reports err as an error event and returns it.
func (r *reader) fail(iface, name string, err error) error {
	r.d.logger.Log(log.Event{
		Timestamp: r.d.now(),
		SessionID: r.d.sessionID,
		Category:  log.CategoryError,
		Object:    r.object,
		Property:  key(iface, name),
		Message:   err.Error(),
	})
	return err
}

// translated reports the translation of a code read from iface.name.
func (r *reader) translated(iface, name string, wire uint32) {
	entry, ok := registry.ForProperty(iface, name)
	if !ok {
		return
	}
	e := log.Translation(entry.Name, entry.Table, wire)
	e.Timestamp = r.d.now()
	e.SessionID = r.d.sessionID
	e.Object = r.object
	e.Property = key(iface, name)
	r.d.logger.Log(e)
}

func (r *reader) value(iface, name string) (any, error) {
	v, ok := r.src.Get(iface, name)
	if !ok || v == nil {
		return nil, r.fail(iface, name, fmt.Errorf("%w: %s", ErrMissingProperty, key(iface, name)))
	}
	return v, nil
}

func (r *reader) uint32(iface, name string) (uint32, error) {
	v, err := r.value(iface, name)
	if err != nil {
		return 0, err
	}
	n, ok := asUint32(v)
	if !ok {
		return 0, r.fail(iface, name, typeError(key(iface, name), v, "uint32"))
	}
	return n, nil
}

// code reads a required code and reports its translation.
func (r *reader) code(iface, name string) (uint32, error) {
	n, err := r.uint32(iface, name)
	if err != nil {
		return 0, err
	}
	r.translated(iface, name, n)
	return n, nil
}

// optCode is code for a property that may be absent.
func (r *reader) optCode(iface, name string) (uint32, bool, error) {
	if !r.has(iface, name) {
		return 0, false, nil
	}
	n, err := r.code(iface, name)
	return n, err == nil, err
}

func (r *reader) has(iface, name string) bool {
	v, ok := r.src.Get(iface, name)
	return ok && v != nil
}

func (r *reader) optUint32(iface, name string) (uint32, error) {
	if !r.has(iface, name) {
		return 0, nil
	}
	return r.uint32(iface, name)
}

func (r *reader) string(iface, name string) (string, error) {
	v, err := r.value(iface, name)
	if err != nil {
		return "", err
	}
	s, ok := asString(v)
	if !ok {
		return "", r.fail(iface, name, typeError(key(iface, name), v, "string"))
	}
	return s, nil
}

func (r *reader) optString(iface, name string) (string, error) {
	if !r.has(iface, name) {
		return "", nil
	}
	return r.string(iface, name)
}

func (r *reader) optBool(iface, name string) (bool, error) {
	if !r.has(iface, name) {
		return false, nil
	}
	v, _ := r.src.Get(iface, name)
	b, ok := v.(bool)
	if !ok {
		return false, r.fail(iface, name, typeError(key(iface, name), v, "bool"))
	}
	return b, nil
}

func (r *reader) bytes(iface, name string) ([]byte, error) {
	v, err := r.value(iface, name)
	if err != nil {
		return nil, err
	}
	b, ok := asBytes(v)
	if !ok {
		return nil, r.fail(iface, name, typeError(key(iface, name), v, "[]byte"))
	}
	return b, nil
}

// optCodes reads an array of codes and reports each translation.
func (r *reader) optCodes(iface, name string) ([]uint32, error) {
	if !r.has(iface, name) {
		return nil, nil
	}
	v, _ := r.src.Get(iface, name)
	s, ok := asUint32s(v)
	if !ok {
		return nil, r.fail(iface, name, typeError(key(iface, name), v, "[]uint32"))
	}
	for _, n := range s {
		r.translated(iface, name, n)
	}
	return s, nil
}

func (r *reader) optList(iface, name string) ([]any, error) {
	if !r.has(iface, name) {
		return nil, nil
	}
	v, _ := r.src.Get(iface, name)
	l, ok := asList(v)
	if !ok {
		return nil, r.fail(iface, name, typeError(key(iface, name), v, "[]any"))
	}
	return l, nil
}
