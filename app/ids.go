package app

import (
	"strconv"
	"sync/atomic"
	"time"
)

var idCounter atomic.Int64

// newID returns a unique record id. Timestamp-based like the original's
// Date.now() ids, with a counter suffix so records created within the same
// instant stay distinct.
func newID() string {
	n := idCounter.Add(1)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(n, 10)
}
