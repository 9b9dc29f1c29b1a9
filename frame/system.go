package frame

// System is a unit of per-frame behavior. Systems can keep their own state
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
