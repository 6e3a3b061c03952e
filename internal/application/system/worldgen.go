package system

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// keepClearAttempts bounds the re-rolls spent moving a region off the
// player's start area before it is accepted anyway.
const keepClearAttempts = 20

// Generator lays out obstacles and collectibles
type Generator struct {
	cfg *config.AdventureConfig
	rng *rand.Rand
	log *logrus.Entry
}

// NewGenerator creates a world generator
func NewGenerator(cfg *config.AdventureConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng, log: logger.Component("worldgen")}
}

// Generate fills store with a fresh set of obstacles, rupees and keys.
// Regions avoid keepClear when they can; collectibles are not checked against
// obstacles.
func (g *Generator) Generate(store *entity.Store, keepClear entity.Rect) {
	store.Obstacles = store.Obstacles[:0]
	store.Obstacles = g.regions(store, store.Obstacles, entity.ObstacleBlocking, g.cfg.Obstacles.Blocking, keepClear)
	store.Obstacles = g.regions(store, store.Obstacles, entity.ObstacleHazardous, g.cfg.Obstacles.Hazardous, keepClear)

	for i := 0; i < g.cfg.Collectibles.Rupees; i++ {
		store.AddCollectible(g.NewCollectible(store, entity.KindRupee))
	}
	for i := 0; i < g.cfg.Collectibles.Keys; i++ {
		store.AddCollectible(g.NewCollectible(store, entity.KindKey))
	}

	g.log.WithFields(logrus.Fields{
		"obstacles":    len(store.Obstacles),
		"collectibles": len(store.Collectibles),
	}).Info("World generated")
}

func (g *Generator) regions(store *entity.Store, out []entity.Obstacle, kind entity.ObstacleKind, rc config.RegionConfig, keepClear entity.Rect) []entity.Obstacle {
	for i := 0; i < rc.Count; i++ {
		r := g.region(rc)
		for try := 0; try < keepClearAttempts && spatial.Overlaps(r, keepClear); try++ {
			r = g.region(rc)
		}
		out = append(out, entity.Obstacle{ID: store.NewID(), Kind: kind, Rect: r})
	}
	return out
}

// region picks a size in [min, max] and a position that keeps the region
// fully inside the map.
func (g *Generator) region(rc config.RegionConfig) entity.Rect {
	w := rc.MinSize + g.rng.Float64()*(rc.MaxSize-rc.MinSize)
	h := rc.MinSize + g.rng.Float64()*(rc.MaxSize-rc.MinSize)
	return entity.Rect{
		X: g.rng.Float64() * (g.cfg.Map.Width - w),
		Y: g.rng.Float64() * (g.cfg.Map.Height - h),
		W: w,
		H: h,
	}
}

// NewCollectible creates an uncollected item at a uniformly random position
// at least the configured margin away from every map edge.
func (g *Generator) NewCollectible(store *entity.Store, kind entity.CollectibleKind) *entity.Collectible {
	m := g.cfg.Collectibles.Margin
	return &entity.Collectible{
		ID:   store.NewID(),
		Kind: kind,
		Pos: entity.Vec(
			m+g.rng.Float64()*(g.cfg.Map.Width-2*m),
			m+g.rng.Float64()*(g.cfg.Map.Height-2*m),
		),
	}
}
