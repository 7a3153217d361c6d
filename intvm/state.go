package intvm

type State uint8

const (
	Suspended State = iota + 1
	Halted
)

func (s State) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Halted:
		return "halted"
	}
	return "invalid"
}
