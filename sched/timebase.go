// Time-base primitives: integer hyperperiod, GCD-derived simulator
// timestep, and tolerant floating comparison for utilization predicates.

package sched

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ToleranceEpsilon is the absolute tolerance used by the tolerant
// comparison helpers below. It is never used for time arithmetic,
// which stays exact-integer throughout the pipeline.
const ToleranceEpsilon = 1e-15

// ApproxGE reports whether a >= b, tolerating a difference of at most
// ToleranceEpsilon. Used only for utilization predicates.
func ApproxGE(a, b float64) bool {
	return a > b || floats.EqualWithinAbs(a, b, ToleranceEpsilon)
}

// ApproxLE reports whether a <= b, tolerating ToleranceEpsilon.
func ApproxLE(a, b float64) bool {
	return a < b || floats.EqualWithinAbs(a, b, ToleranceEpsilon)
}

// ApproxGT reports whether a > b once ToleranceEpsilon-close values are
// treated as equal (i.e. a is strictly, non-trivially greater than b).
func ApproxGT(a, b float64) bool {
	return a > b && !floats.EqualWithinAbs(a, b, ToleranceEpsilon)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := gcd(a, b)
	// a/g*b can overflow for pathological inputs; detect it rather than
	// silently wrap.
	result := (a / g) * b
	if result/b != a/g {
		return 0, fmt.Errorf("hyperperiod overflow computing lcm(%d, %d)", a, b)
	}
	if result < 0 {
		return 0, fmt.Errorf("hyperperiod overflow computing lcm(%d, %d)", a, b)
	}
	return result, nil
}

// Hyperperiod returns the LCM of every task's period. An empty task set
// has hyperperiod 0.
func Hyperperiod(tasks []*Task) (int64, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	h := tasks[0].Period
	for _, t := range tasks[1:] {
		var err error
		h, err = lcm(h, t.Period)
		if err != nil {
			return 0, err
		}
	}
	return h, nil
}

// Timestep returns the GCD of every task's C, T, D, and O. This
// guarantees every release and every possible completion time lands on
// a multiple of the step.
func Timestep(tasks []*Task) int64 {
	if len(tasks) == 0 {
		return 1
	}
	var g int64
	first := true
	for _, t := range tasks {
		for _, v := range [4]int64{t.Computation, t.Period, t.Deadline, t.Offset} {
			if v == 0 {
				continue
			}
			if first {
				g = v
				first = false
				continue
			}
			g = gcd(g, v)
		}
	}
	if g == 0 {
		return 1
	}
	return g
}
