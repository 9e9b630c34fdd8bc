package control

// Transition computes the next state for one tick.
//
// Precedence: a running aid-deploy timer overrides everything. It is
// decremented first and, while still positive, forces DeployingAid. On the
// tick it reaches zero, evaluation falls through to the normal event order:
// tilt, then survivor detection, then front obstacle, then searching.
//
// Survivor detection is edge-triggered: it arms the timer and requests the
// one-shot emit only when the rover is not already in DeployingAid. A
// survivor still in range on the tick the timer expires therefore neither
// re-arms the timer nor re-sends the signal; the state stays DeployingAid
// until the survivor leaves range.
func Transition(cfg Config, state State, timer int, f Frame) (next State, nextTimer int, emit bool) {
	if timer > 0 {
		timer--
		if timer > 0 {
			return StateDeployingAid, timer, false
		}
	}

	switch {
	case f.Tilted:
		return StateTilted, timer, false
	case f.SurvivorDetected:
		if state != StateDeployingAid {
			return StateDeployingAid, cfg.AidDeployTicks, true
		}
		return state, timer, false
	case f.Front < cfg.ObstacleDistance:
		return StateAvoidingObstacle, timer, false
	default:
		return StateSearching, timer, false
	}
}

// Actuate maps the resolved state to wheel velocities and indicator lights.
// Pure function of the state, the frame, and the remaining timer (the timer
// drives the deploy blink phase).
func Actuate(cfg Config, state State, timer int, f Frame) (MotorCommand, Lights) {
	switch state {
	case StateTilted:
		// Halt, both indicators solid on as a fault signal.
		return MotorCommand{}, Lights{Left: true, Right: true}

	case StateDeployingAid:
		on := timer%cfg.BlinkPeriod < cfg.BlinkPeriod/2
		return MotorCommand{}, Lights{Left: on, Right: on}

	case StateAvoidingObstacle:
		// Turn toward the side with more space. Equal readings turn right.
		if f.Left <= f.Right {
			return MotorCommand{Left: cfg.TurnSpeed, Right: -cfg.TurnSpeed}, Lights{}
		}
		return MotorCommand{Left: -cfg.TurnSpeed, Right: cfg.TurnSpeed}, Lights{}

	case StateSearching:
		return MotorCommand{Left: cfg.CruiseSpeed, Right: cfg.CruiseSpeed}, Lights{}
	}

	// Unknown state: halt.
	return MotorCommand{}, Lights{}
}

// Controller owns the state that persists across ticks: the current state,
// the aid-deploy countdown, and the tick counter.
type Controller struct {
	cfg   Config
	state State
	timer int
	tick  uint64
}

// NewController creates a controller in the Searching state.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, state: StateSearching}
}

// Step advances the controller by one tick.
func (c *Controller) Step(f Frame) StepResult {
	next, timer, emit := Transition(c.cfg, c.state, c.timer, f)
	cmd, lights := Actuate(c.cfg, next, timer, f)

	res := StepResult{
		State:   next,
		Changed: next != c.state,
		Timer:   timer,
		Command: cmd,
		Lights:  lights,
		Emit:    emit,
		Tick:    c.tick,
	}

	c.state = next
	c.timer = timer
	c.tick++
	return res
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Timer returns the remaining aid-deploy ticks.
func (c *Controller) Timer() int {
	return c.timer
}
