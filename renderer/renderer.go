// Package renderer turns fliplog reports into markdown documents, ready to be
// displayed by the CLI or pasted into any markdown consumer.
package renderer

import (
	"bytes"
	"fmt"
	"io"
)

// ConditionalBlock lets you fully write a block and decide at the end to print
// it or not. If the block function returns true, the content is printed to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// plural is a tiny helper for "1 item" vs "2 items".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
