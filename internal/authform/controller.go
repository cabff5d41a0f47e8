package authform

// Notifier receives the message produced by each submission.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NotifierFuncs adapts two plain functions to a Notifier. Nil funcs are
// skipped.
type NotifierFuncs struct {
	OnSuccess func(string)
	OnError   func(string)
}

func (n NotifierFuncs) Success(message string) {
	if n.OnSuccess != nil {
		n.OnSuccess(message)
	}
}

func (n NotifierFuncs) Error(message string) {
	if n.OnError != nil {
		n.OnError(message)
	}
}

// Controller owns the state of one form session and applies the user's
// actions to it. It is not safe for concurrent use.
type Controller struct {
	state    FormState
	notifier Notifier
}

// NewController returns a controller starting from state. A nil notifier
// discards messages.
func NewController(state FormState, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFuncs{}
	}
	return &Controller{state: state, notifier: notifier}
}

// State returns the current form state.
func (c *Controller) State() FormState {
	return c.state
}

func (c *Controller) UpdateField(f Field, v string) {
	c.state = UpdateField(c.state, f, v)
}

func (c *Controller) SwitchMode() {
	c.state = SwitchMode(c.state)
}

func (c *Controller) EnterGoogleMode() {
	c.state = EnterGoogleMode(c.state)
}

func (c *Controller) ExitGoogleMode() {
	c.state = ExitGoogleMode(c.state)
}

// Submit validates the current state, notifies the outcome and returns it.
// A rejected submission leaves the state untouched.
func (c *Controller) Submit() (Outcome, error) {
	next, out, err := Submit(c.state)
	c.state = next
	if err != nil {
		c.notifier.Error(err.Error())
		return Outcome{}, err
	}
	c.notifier.Success(out.Message)
	return out, nil
}
