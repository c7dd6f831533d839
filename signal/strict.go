//go:build !leakcheck

package signal

// Strict wraps d with a leak check that panics if the disposable is
// garbage collected without ever having been disposed. The check only
// exists under the leakcheck build tag; in regular builds Strict returns
// d unchanged, so it can be left in production call sites for free.
func Strict(d Disposable) Disposable {
	return d
}
