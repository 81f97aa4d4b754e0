package game

// Controller is the authoritative owner of one game session: the current
// save and the phase machine. There is no ambient singleton; callers
// hold a Controller per session, and independent sessions may run
// concurrently as long as each has its own Controller and Save.
type Controller struct {
	state *Save
	phase Phase
}

// NewController starts a session in the Meta phase with no loaded state.
func NewController() *Controller {
	return &Controller{phase: PhaseMeta}
}

// State exposes the current save. Mutate it only through controller
// operations; direct writes bypass the phase machine.
func (c *Controller) State() *Save { return c.state }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }
