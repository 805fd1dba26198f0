package components

// ObstacleKind is the decoration type of a static collider
type ObstacleKind uint8

const (
	ObstacleTree ObstacleKind = iota
	ObstacleGrave
	ObstacleRock
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleGrave:
		return "grave"
	case ObstacleRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Visual maps an obstacle kind to its proxy shape
func (k ObstacleKind) Visual() VisualKind {
	switch k {
	case ObstacleGrave:
		return VisualGrave
	case ObstacleRock:
		return VisualRock
	default:
		return VisualTree
	}
}

// Obstacle is an immutable circular collider on the ground plane
type Obstacle struct {
	X, Z   float64
	Radius float64
	Kind   ObstacleKind
}
