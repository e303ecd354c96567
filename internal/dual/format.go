package dual

import "fmt"

// String renders x as "<re> + <d>_eps".
func (x Dual[T]) String() string {
	return fmt.Sprintf("%v + %v_eps", x.re, x.d)
}
