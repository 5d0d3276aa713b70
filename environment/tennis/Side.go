package tennis

// Side determines which half of the court a racket plays on. The Left
// racket plays on negative x relative to the court origin and sees
// the world unmirrored; the Right racket's x quantities are negated.
type Side int

const (
	Left Side = iota
	Right
)

// Mirror returns the sign multiplier applied to all mirrored quantities
func (s Side) Mirror() float64 {
	if s == Right {
		return -1.0
	}
	return 1.0
}

// Opposite returns the other side of the court
func (s Side) Opposite() Side {
	if s == Right {
		return Left
	}
	return Right
}

func (s Side) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// Role determines whether an agent resets the shared match state at
// the start of each of its episodes. Exactly one of the two agents on
// a court should be the MatchResetOwner.
type Role int

const (
	Follower Role = iota
	MatchResetOwner
)

func (r Role) String() string {
	if r == MatchResetOwner {
		return "MatchResetOwner"
	}
	return "Follower"
}

// Status is the lifecycle state of an Agent
type Status int

const (
	Active Status = iota
	Resetting
)

func (s Status) String() string {
	if s == Resetting {
		return "Resetting"
	}
	return "Active"
}
