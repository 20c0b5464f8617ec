package lineproc

import (
	"context"
)

// Set is an ordered list of processors. More specific processors should be
// registered first.
type Set struct {
	processors []*Processor
}

func (s *Set) Register(p ...*Processor) {
	s.processors = append(s.processors, p...)
}

func (s *Set) Processors() []*Processor {
	return s.processors
}

// Match runs line through the processors in registration order and returns
// the result of the first one whose pattern matches the whole line. ok is
// false when no processor recognises the line.
func (s *Set) Match(ctx context.Context, line string, extra Fields, parties Resolver) (Extracted, *Processor, bool, error) {
	for _, p := range s.processors {
		out, ok, err := p.Match(ctx, line, extra, parties)
		if !ok {
			continue
		}

		return out, p, true, err
	}

	return Extracted{}, nil, false, nil
}
