package ant

import "antgrid/internal/render"

// Run walks a fresh grid prepared from cfg for steps steps and renders it,
// refusing renders above render.DefaultMaxCells. id labels the result and
// is supplied by the caller.
func Run(cfg Config, steps int, id string, trace TraceFunc) (render.Result, error) {
	a := NewWithConfig(cfg)
	a.SetTrace(trace)
	return render.Run(a, steps, id, render.DefaultMaxCells)
}
