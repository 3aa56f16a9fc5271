package bootstrap

// DeferredOption is a command-line override whose application waits until
// the configuration trees exist and any config file has been loaded.
type DeferredOption struct {
	Name  string
	Value string
}

// DeferredQueue buffers deferred options in enqueue order and delivers each
// exactly once.
type DeferredQueue struct {
	pending []DeferredOption
}

// Enqueue captures one (name, value) pair. Empty values are skipped: an
// unset flag has nothing to apply.
func (q *DeferredQueue) Enqueue(name, value string) {
	if value == "" {
		return
	}
	q.pending = append(q.pending, DeferredOption{Name: name, Value: value})
}

// Len returns the number of pending options.
func (q *DeferredQueue) Len() int {
	return len(q.pending)
}

// Drain applies every pending option in order and empties the queue. Apply
// errors are collected and returned, not fatal; the caller decides how to
// report them. Draining an empty queue is a no-op.
func (q *DeferredQueue) Drain(apply func(name, value string) error) []error {
	var errs []error
	for _, opt := range q.pending {
		if err := apply(opt.Name, opt.Value); err != nil {
			errs = append(errs, err)
		}
	}
	q.pending = nil
	return errs
}
