package tagged

import (
	"errors"
	"fmt"
	"time"

	edn "github.com/signadot/go-edn"

	"github.com/google/uuid"
)

var (
	Inst = edn.MustTag("", "inst")
	UUID = edn.MustTag("", "uuid")
)

var ErrValue = errors.New("bad tagged value")

// instHandler reads an RFC 3339 timestamp.
func instHandler(_ edn.Tag, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrValue, value)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return t, nil
}

// uuidHandler reads a UUID in canonical 8-4-4-4-12 form.
func uuidHandler(_ edn.Tag, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrValue, value)
	}
	if len(s) != 36 {
		return nil, fmt.Errorf("%w: %q is not a canonical uuid", ErrValue, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return u, nil
}
