package section

import (
	"errors"
	"fmt"
)

var (
	// ErrPolicyUnderflow is returned by Assign in RejectRemainder mode when
	// the configured lengths cover fewer items than the store holds.
	ErrPolicyUnderflow = errors.New("section: policy lengths do not cover all items")

	// ErrInvalidPolicy is returned for policies with negative lengths.
	ErrInvalidPolicy = errors.New("section: invalid policy")
)

// RemainderMode decides what happens to items left over once every
// configured section length has been used.
type RemainderMode int

const (
	// AbsorbRemainder extends the last section to cover the remainder.
	AbsorbRemainder RemainderMode = iota
	// AppendRemainder adds one trailing section holding the remainder.
	AppendRemainder
	// RejectRemainder fails the assignment with ErrPolicyUnderflow.
	RejectRemainder
)

func (m RemainderMode) String() string {
	switch m {
	case AbsorbRemainder:
		return "absorb"
	case AppendRemainder:
		return "append"
	case RejectRemainder:
		return "reject"
	default:
		return fmt.Sprintf("RemainderMode(%d)", int(m))
	}
}

// ParseRemainderMode parses the names returned by RemainderMode.String.
func ParseRemainderMode(s string) (RemainderMode, error) {
	switch s {
	case "", "absorb":
		return AbsorbRemainder, nil
	case "append":
		return AppendRemainder, nil
	case "reject":
		return RejectRemainder, nil
	default:
		return 0, fmt.Errorf("%w: unknown remainder mode %q", ErrInvalidPolicy, s)
	}
}

// Policy describes how items are distributed over sections.
type Policy struct {
	// Lengths is the desired length of each section, in order.
	// Only used when SingleSection is false.
	Lengths []int

	// SingleSection puts every item into one section.
	SingleSection bool

	// Remainder handles items not covered by Lengths.
	Remainder RemainderMode
}

// Validate reports whether the policy can be used by Assign.
func (p Policy) Validate() error {
	for i, l := range p.Lengths {
		if l < 0 {
			return fmt.Errorf("%w: length %d at index %d", ErrInvalidPolicy, l, i)
		}
	}
	switch p.Remainder {
	case AbsorbRemainder, AppendRemainder, RejectRemainder:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, p.Remainder)
	}
	return nil
}

// Assign builds the section table for n items under policy p.
//
// In single-section mode, or when the policy has fewer than two lengths, or
// when n fits into the first section, the result is one section (0, n).
// Otherwise section i gets Lengths[i] items until the section that reaches n,
// which is clamped to the items left and ends the table.
func Assign(n int, p Policy) (Table, error) {
	if n < 0 {
		return Table{}, fmt.Errorf("%w: negative item count %d", ErrInvalidPolicy, n)
	}
	if err := p.Validate(); err != nil {
		return Table{}, err
	}

	lengths := p.Lengths
	if p.SingleSection || len(lengths) < 2 || n <= lengths[0] {
		return Table{sections: []Descriptor{{Offset: 0, Length: n}}}, nil
	}

	sections := make([]Descriptor, 0, len(lengths))
	sections = append(sections, Descriptor{Offset: 0, Length: lengths[0]})

	for i := 1; i < len(lengths); i++ {
		offset := sections[i-1].End()
		if offset+lengths[i] >= n {
			sections = append(sections, Descriptor{Offset: offset, Length: n - offset})
			return Table{sections: sections}, nil
		}
		sections = append(sections, Descriptor{Offset: offset, Length: lengths[i]})
	}

	// Every configured length was used and items are left over.
	covered := sections[len(sections)-1].End()
	switch p.Remainder {
	case AppendRemainder:
		sections = append(sections, Descriptor{Offset: covered, Length: n - covered})
	case RejectRemainder:
		return Table{}, fmt.Errorf("%w: %d of %d items covered", ErrPolicyUnderflow, covered, n)
	default:
		sections[len(sections)-1].Length += n - covered
	}
	return Table{sections: sections}, nil
}
