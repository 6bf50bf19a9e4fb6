package world

import "fmt"

// Level bundles a map grid with the player's spawn pose.
type Level struct {
	Name  string
	Grid  *Grid
	Spawn Pose
}

// Factory constructs a Level.
type Factory func() (*Level, error)

var levels = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// Names returns the registered level names.
func Names() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	return names
}

// Load builds the named level and validates that the spawn cell is empty.
func Load(name string) (*Level, error) {
	f, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	lvl, err := f()
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	if sx, sy := lvl.Spawn.Cell(); lvl.Grid.Wall(sx, sy) {
		return nil, fmt.Errorf("level %q: spawn (%.1f, %.1f) is inside a wall", name, lvl.Spawn.X, lvl.Spawn.Y)
	}
	return lvl, nil
}

func mustParse(name string, rows []string, spawn Pose) Factory {
	return func() (*Level, error) {
		g, err := ParseGrid(rows)
		if err != nil {
			return nil, err
		}
		return &Level{Name: name, Grid: g, Spawn: spawn}, nil
	}
}

func init() {
	Register("rooms", mustParse("rooms", []string{
		"########",
		"#......#",
		"#.#..#.#",
		"#......#",
		"#.#..#.#",
		"#......#",
		"#..##..#",
		"########",
	}, Pose{X: 3.5, Y: 3.5}))

	Register("arena", mustParse("arena", []string{
		"############",
		"#..........#",
		"#..........#",
		"#...####...#",
		"#...#......#",
		"#...#......#",
		"#..........#",
		"############",
	}, Pose{X: 1.5, Y: 1.5}))

	Register("corridors", mustParse("corridors", []string{
		"################",
		"#....#.........#",
		"#.##.#.#######.#",
		"#.#..#.......#.#",
		"#.#.########.#.#",
		"#.#..........#.#",
		"#.############.#",
		"#..............#",
		"################",
	}, Pose{X: 1.5, Y: 1.5}))
}
