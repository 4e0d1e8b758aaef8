package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phylograph/phylograph/pkg/errors"
)

// parser holds all mutable state of one Parse invocation: the scan cursor
// and the sequential id counter. Keeping it call-scoped makes concurrent
// parses trivially safe.
type parser struct {
	input string
	pos   int
	seq   int
}

// Parse converts a Newick-formatted string into a node tree.
//
// A trailing ';' is stripped and the whole input trimmed before parsing;
// whitespace embedded in labels is preserved. Parse never panics out to the
// caller: malformed input (unbalanced parentheses, truncated descendant
// lists) is surfaced as an ErrCodeInvalidNewick error, and callers are
// expected to substitute a fallback tree.
func Parse(input string) (root *Node, err error) {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimSuffix(trimmed, ";")
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeInvalidNewick, "empty input")
	}

	// The scanner indexes the input directly and relies on bounds checks to
	// bail out of truncated descendant lists.
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = errors.New(errors.ErrCodeInvalidNewick, "malformed input: %v", r)
		}
	}()

	p := &parser{input: trimmed}
	return p.parseNode(), nil
}

// parseNode parses one node starting at the cursor and leaves the cursor on
// the first character after the node's label/length segment.
func (p *parser) parseNode() *Node {
	n := &Node{ID: fmt.Sprintf("node_%d", p.seq)}
	p.seq++

	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		p.pos++ // consume '('
		for {
			child := p.parseNode()
			n.Children = append(n.Children, child)

			sep := p.input[p.pos]
			p.pos++
			if sep == ',' {
				continue
			}
			if sep == ')' {
				break
			}
			panic(fmt.Sprintf("unexpected %q at offset %d", sep, p.pos-1))
		}
	}

	p.parseLabelLength(n)
	return n
}

// parseLabelLength scans the label and optional ":length" segment following
// a node, stopping at any of the delimiters ',', ')', '('. A ':' switches
// accumulation from label to branch length for the remainder of the segment.
func (p *parser) parseLabelLength(n *Node) {
	start := p.pos
	colon := -1
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ',' || c == ')' || c == '(' {
			break
		}
		if c == ':' && colon < 0 {
			colon = p.pos
		}
		p.pos++
	}

	if colon < 0 {
		n.Label = p.input[start:p.pos]
		return
	}

	n.Label = p.input[start:colon]
	// A non-numeric or empty length substring yields no length rather
	// than zero.
	if v, err := strconv.ParseFloat(p.input[colon+1:p.pos], 64); err == nil {
		n.Length = &v
	}
}
