package ant

import "antgrid/internal/core"

// Parameters describes the configured start and the current walk.
func (a *Ant) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Start",
			Params: []core.Parameter{
				core.VectorParam("position", "Position", a.cfg.Position),
				core.VectorParam("direction", "Direction", a.cfg.Direction),
				core.IntParam("black", "Initial black cells", int64(len(a.cfg.Black))),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.IntParam("seed", "Seed", a.cfg.Seed),
				core.IntParam("scatter_radius", "Scatter radius", a.cfg.ScatterRadius),
				core.FloatParam("scatter_density", "Scatter density", a.cfg.ScatterDensity),
			},
		},
		{
			Name: "Walk",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", int64(a.steps)),
				core.VectorParam("at", "Position", a.walker.Position),
				core.VectorParam("heading", "Heading", a.walker.Direction),
				core.IntParam("black_cells", "Black cells", int64(a.grid.Len())),
			},
		},
	}}
}
