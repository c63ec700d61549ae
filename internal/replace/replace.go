// Package replace implements a single capture-group substitution helper,
// grounded on slre_replace from the reference implementation: it repeatedly
// finds the pattern's first capture group in buf and splices sub in place
// of it, advancing past each match until buf is exhausted.
package replace

import (
	"bytes"

	"github.com/nmeillaya/mygrep/internal/matcher"
)

// All replaces every occurrence of re's first capture group within buf
// with sub, copying through everything outside the captured span
// unchanged. re must have at least one capturing group; All reports an
// error if it does not.
//
// Unlike matcher.Regexp.FindSubmatchIndex, which stops at the first
// match, All keeps scanning forward from the end of each match (or one
// byte past a zero-length match at the front) until the whole buffer has
// been consumed. Once the pattern no longer matches the remainder, the
// remainder is copied through unchanged.
func All(re *matcher.Regexp, buf []byte, sub string) ([]byte, error) {
	if re.NumCaptures() < 1 {
		return nil, errNoCaptureGroup
	}

	var out bytes.Buffer
	remaining := buf

	for len(remaining) > 0 {
		res, ok := re.FindSubmatchIndex(remaining)
		if !ok {
			out.Write(remaining)
			break
		}

		group := res.Captures[0]
		if group.Length == 0 && group.Start == 0 {
			// No capture recorded for this match; treat the whole match as
			// unreplaceable and copy it through verbatim.
			out.Write(remaining[:res.End])
			remaining = remaining[res.End:]
			continue
		}

		out.Write(remaining[:group.Start])
		out.WriteString(sub)
		out.Write(remaining[group.Start+group.Length : res.End])

		if res.End == 0 {
			// Zero-length match at the front: advance one byte to guarantee
			// forward progress.
			if len(remaining) > 0 {
				out.WriteByte(remaining[0])
				remaining = remaining[1:]
			}
			continue
		}
		remaining = remaining[res.End:]
	}

	return out.Bytes(), nil
}

var errNoCaptureGroup = replaceError("pattern has no capture group to replace")

type replaceError string

func (e replaceError) Error() string { return string(e) }
