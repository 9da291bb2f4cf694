package upload

import (
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var pdfSuffix = regexp.MustCompile(`(?i)\.pdf$`)

// Namer builds object names of the form <unix millis>-<filename without .pdf>.
// Stamps are strictly increasing per Namer, so two uploads landing in the
// same millisecond still get different names.
type Namer struct {
	now  func() time.Time
	last atomic.Int64
}

func NewNamer(now func() time.Time) *Namer {
	return &Namer{now: now}
}

func (n *Namer) Name(filename string) string {
	base := pdfSuffix.ReplaceAllString(baseName(filename), "")
	if base == "" {
		base = "file"
	}
	return strconv.FormatInt(n.stamp(), 10) + "-" + base
}

func (n *Namer) stamp() int64 {
	for {
		last := n.last.Load()
		next := n.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// baseName drops any directory part a browser or client sent along with the name
func baseName(filename string) string {
	b := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if b == "." || b == "/" {
		return ""
	}
	return b
}
