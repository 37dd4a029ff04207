package main

type releaseFunc struct {
	name string
	fn   func()
}

// releaser tears resources down in reverse acquisition order.
type releaser struct {
	stack []releaseFunc
}

func (r *releaser) add(name string, fn func()) {
	r.stack = append(r.stack, releaseFunc{name, fn})
}

func (r *releaser) release() {
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		logger.Debug("releasing", "resource", top.name)
		top.fn()
	}
}
