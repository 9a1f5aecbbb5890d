package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCommands adds initial draw commands to the scene.
//
// Parameters:
//   - commands: the commands in draw order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCommands(commands ...DrawCommand) SceneBuilderOption {
	return func(s *scene) {
		s.commands = append(s.commands, commands...)
	}
}

// WithBuildWorkers sets the number of worker goroutines used to generate meshes
// in Prepare. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of build workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuildWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.buildWorkers = n
	}
}
