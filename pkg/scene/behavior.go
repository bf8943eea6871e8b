package scene

// Trigger names the interaction event families a behavior can bind.
type Trigger string

const (
	// TriggerClick fires on a completed press-and-release on the node.
	TriggerClick Trigger = "click"
	// TriggerButton fires on the press/hold/release sub-states.
	TriggerButton Trigger = "button"
	// TriggerHover fires on hover enter/exit and while hovering.
	TriggerHover Trigger = "hover"
)

// ButtonState is the sub-state of a button interaction.
type ButtonState string

const (
	ButtonPressed  ButtonState = "pressed"
	ButtonHolding  ButtonState = "holding"
	ButtonReleased ButtonState = "released"
)

// HoverState is the sub-state of a hover interaction.
type HoverState string

const (
	HoverEnter    HoverState = "enter"
	HoverHovering HoverState = "hovering"
	HoverExit     HoverState = "exit"
)

type buttonBinding struct {
	state ButtonState
	fn    func(ButtonState)
}

type hoverBinding struct {
	state HoverState
	fn    func(HoverState)
}

// Behavior accumulates interaction handlers for one node. A node has at most
// one behavior: repeated bindings of any trigger reuse the same object.
// Backends deliver events through Click, Button, and Hover.
type Behavior struct {
	node    *Node
	clicks  []func()
	buttons []buttonBinding
	hovers  []hoverBinding
}

// Behavior returns the node's behavior, allocating it on first use.
func (n *Node) Behavior() *Behavior {
	if n.behavior == nil {
		n.behavior = &Behavior{node: n}
	}
	return n.behavior
}

// OnClick registers a click handler. Returns the behavior for chaining.
func (b *Behavior) OnClick(fn func()) *Behavior {
	b.clicks = append(b.clicks, fn)
	b.node.backend.BehaviorBound(b.node, TriggerClick)
	return b
}

// OnButton registers a handler for one button sub-state.
func (b *Behavior) OnButton(state ButtonState, fn func(ButtonState)) *Behavior {
	b.buttons = append(b.buttons, buttonBinding{state: state, fn: fn})
	b.node.backend.BehaviorBound(b.node, TriggerButton)
	return b
}

// OnHover registers a handler for one hover sub-state.
func (b *Behavior) OnHover(state HoverState, fn func(HoverState)) *Behavior {
	b.hovers = append(b.hovers, hoverBinding{state: state, fn: fn})
	b.node.backend.BehaviorBound(b.node, TriggerHover)
	return b
}

// Click delivers a click event. Events on destroyed nodes are dropped.
func (b *Behavior) Click() {
	if !b.node.Alive() {
		return
	}
	for _, fn := range b.clicks {
		fn()
	}
}

// Button delivers a button sub-state event to matching handlers.
func (b *Behavior) Button(state ButtonState) {
	if !b.node.Alive() {
		return
	}
	for _, bind := range b.buttons {
		if bind.state == state {
			bind.fn(state)
		}
	}
}

// Hover delivers a hover sub-state event to matching handlers.
func (b *Behavior) Hover(state HoverState) {
	if !b.node.Alive() {
		return
	}
	for _, bind := range b.hovers {
		if bind.state == state {
			bind.fn(state)
		}
	}
}
