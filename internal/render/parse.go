package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/model"
)

// OrderedList prints endpoints in document order, the simple parser's format.
// With a method filter each matching endpoint collapses to a single line.
func OrderedList(w io.Writer, ix *index.Index, methodFilter string) {
	fmt.Fprintln(w, "Available Endpoints:")
	filter := model.Method(strings.ToUpper(methodFilter))

	for _, p := range ix.Paths {
		if methodFilter != "" {
			for _, op := range p.Operations {
				if op.Method == filter {
					fmt.Fprintf(w, "%s [%s]: %s\n", p.Path, op.Method, op.Summary)
				}
			}
			continue
		}

		fmt.Fprintf(w, "\n%s\n", p.Path)
		for _, op := range p.Operations {
			fmt.Fprintf(w, "  %s: %s\n", op.Method, op.Summary)
		}
	}
}
