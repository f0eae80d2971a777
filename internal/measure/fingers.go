package measure

// Finger chain names in their fixed display and export order.
const (
	Thumb  = "thumb"
	Index  = "index"
	Middle = "middle"
	Ring   = "ring"
	Pinky  = "pinky"
)

var fingerOrder = [5]string{Thumb, Index, Middle, Ring, Pinky}

// Fingers returns the five chain names in their fixed order.
func Fingers() []string {
	out := make([]string, len(fingerOrder))
	copy(out, fingerOrder[:])
	return out
}

// IsFinger reports whether name is one of the five recognized chain names.
func IsFinger(name string) bool {
	for _, f := range fingerOrder {
		if f == name {
			return true
		}
	}
	return false
}
