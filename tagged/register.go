package tagged

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	edn "github.com/signadot/go-edn"
	"github.com/signadot/go-edn/debug"
)

var (
	ErrTagExists   = errors.New("tag exists")
	ErrReservedTag = errors.New("tags without prefix are reserved")
)

// Handler converts the value read for tag into a native value.
type Handler func(tag edn.Tag, value any) (any, error)

// Registry maps tags to handlers. It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	d  map[edn.Tag]Handler
}

func NewRegistry() *Registry {
	return &Registry{d: map[edn.Tag]Handler{}}
}

// Register adds a handler for tag. Tags without a prefix are reserved for
// the edn format itself and cannot be registered.
func (r *Registry) Register(tag edn.Tag, h Handler) error {
	if tag.IsZero() {
		return fmt.Errorf("%w: tag is required", edn.ErrArgument)
	}
	if tag.Prefix() == "" {
		return fmt.Errorf("%s: %w", tag, ErrReservedTag)
	}
	return r.register(tag, h)
}

func (r *Registry) register(tag edn.Tag, h Handler) error {
	if tag.IsZero() || h == nil {
		return fmt.Errorf("%w: tag and handler are required", edn.ErrArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.d == nil {
		r.d = map[edn.Tag]Handler{}
	}
	_, present := r.d[tag]
	if present {
		return fmt.Errorf("%s: %w", tag, ErrTagExists)
	}
	r.d[tag] = h
	return nil
}

func (r *Registry) Lookup(tag edn.Tag) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[tag]
}

// Tags returns the registered tags in order.
func (r *Registry) Tags() []edn.Tag {
	r.mu.RLock()
	res := make([]edn.Tag, 0, len(r.d))
	for t := range r.d {
		res = append(res, t)
	}
	r.mu.RUnlock()
	slices.SortFunc(res, edn.Tag.Compare)
	return res
}

// Resolve applies the handler registered for tag to value. If there is no
// handler, the result is an edn.TaggedValue.
func (r *Registry) Resolve(tag edn.Tag, value any) (any, error) {
	h := r.Lookup(tag)
	if h == nil {
		if debug.Tagged() {
			debug.Logf("tagged: no handler for %s\n", tag)
		}
		tv, err := edn.NewTaggedValue(tag, value)
		if err != nil {
			return nil, err
		}
		return tv, nil
	}
	res, err := h(tag, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if debug.Tagged() {
		debug.Logf("tagged: %s resolved to %T\n", tag, res)
	}
	return res, nil
}

// Default holds the handlers for the tags built into edn.
var Default = NewRegistry()

func init() {
	mustRegister(Inst, instHandler)
	mustRegister(UUID, uuidHandler)
}

func mustRegister(tag edn.Tag, h Handler) {
	if err := Default.register(tag, h); err != nil {
		panic(err)
	}
}

func Register(tag edn.Tag, h Handler) error {
	return Default.Register(tag, h)
}

func Lookup(tag edn.Tag) Handler {
	return Default.Lookup(tag)
}

func Tags() []edn.Tag {
	return Default.Tags()
}

func Resolve(tag edn.Tag, value any) (any, error) {
	return Default.Resolve(tag, value)
}
