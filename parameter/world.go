package parameter

// Layer orders sprites on the z axis, higher draws on top
type Layer uint8

const (
	LayerWorld Layer = iota
	LayerBackground
	LayerDecor
)

// Z returns the layer as a z coordinate
func (l Layer) Z() float64 {
	return float64(l)
}

// Sprite sizes in world units
const (
	SceneWidth  = 160.0
	SceneHeight = 90.0
)

// Clouds
const (
	CloudCount        = 3
	CloudSpacing      = 60.0
	CloudDefaultSpeed = 10.0

	// CloudRecycleX is the x at which a cloud leaves the scene on the right
	CloudRecycleX = 160.0

	// CloudRespawnX is where a recycled cloud re-enters on the left
	CloudRespawnX = -160.0
)

// Asset paths
const (
	ImageDoor   = "door.png"
	ImageShop   = "shop.png"
	ImageGrass  = "grass.png"
	ImageCloudL = "cloud-l.png"
	ImageCloudM = "cloud-m.png"
	ImageCloudS = "cloud-s.png"
)

// Entity names
const (
	NameCamera = "Camera"
	NameUIRoot = "UI Root"
)
