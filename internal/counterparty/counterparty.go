package counterparty

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAmbiguousMatch is matched by every AmbiguousMatchError via errors.Is.
	ErrAmbiguousMatch = errors.New("ambiguous counterparty match")
	// ErrPatternConflict means a new pattern would take aliases away from a
	// counterparty that owns other aliases too.
	ErrPatternConflict = errors.New("pattern matches aliases that already belong to a counterparty")
	ErrNotFound        = errors.New("not found")
)

// Counterparty is the real-world party behind one or more aliases.
type Counterparty struct {
	Name string
	// AutoCategory is the category given to this counterparty's transactions
	// when none is set explicitly. Empty means none.
	AutoCategory string
}

// Alias is a name as it appears in statement descriptions, bound to exactly
// one counterparty. Name is stored as first seen and compared case-insensitively.
type Alias struct {
	Name         string
	Counterparty *Counterparty
}

func (a *Alias) String() string {
	if a == nil {
		return ""
	}

	return a.Name
}

// Pattern classifies previously unseen aliases into its counterparty.
type Pattern struct {
	ID           int64
	Counterparty *Counterparty
	Regex        string
}

// AmbiguousMatchError reports an alias claimed by more than one counterparty.
type AmbiguousMatchError struct {
	Alias          string
	Counterparties []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("alias %q matched by multiple counterparties: %s",
		e.Alias, strings.Join(e.Counterparties, ", "))
}

func (e *AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }
