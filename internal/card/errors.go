package card

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// SyntaxError reports a card literal that failed to parse. The orchestrator
// converts it into an Error diagnostic; it never escapes the compiler
// boundary.
type SyntaxError struct {
	Pos    hcl.Pos
	Detail string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("card literal syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Detail)
}
