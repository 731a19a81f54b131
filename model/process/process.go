// Package process defines the simulated job descriptor and its priority classes.
package process

// Process represents one simulated job. All fields are fixed for the run
// except Burst, which holds the remaining execution time and is decremented
// by round robin dispatch only.
type Process struct {
	ID      string `json:"id" yaml:"id"`
	Arrival int    `json:"arrival" yaml:"arrival"`
	Class   Class  `json:"priority" yaml:"priority"`
	Burst   int    `json:"burst" yaml:"burst"`
	RAM     int    `json:"ram" yaml:"ram"`
	CPURate int    `json:"cpu" yaml:"cpu"`
}

// Clone returns a shallow copy
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}
