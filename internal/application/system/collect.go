package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/timer"
	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/spatial"
)

// CollectSystem handles rupee and key pickups
type CollectSystem struct {
	config *config.CollectiblesConfig
	store  *entity.Store
	gen    *Generator
	timers *timer.Scheduler
	hooks  *Hooks
	log    *logrus.Entry

	// OnFirstKey runs when the player's key count goes from 0 to 1.
	OnFirstKey func()
}

// NewCollectSystem creates a new collect system
func NewCollectSystem(cfg *config.CollectiblesConfig, store *entity.Store, gen *Generator, timers *timer.Scheduler, hooks *Hooks) *CollectSystem {
	return &CollectSystem{
		config: cfg,
		store:  store,
		gen:    gen,
		timers: timers,
		hooks:  hooks,
		log:    logger.Component("collect"),
	}
}

// Update picks up every uncollected item within the pickup radius. Picked
// items stay in the store, marked collected, until the settle delay passes;
// then rupees are replaced by a new random rupee and keys are removed.
func (s *CollectSystem) Update(p *entity.Player, now time.Duration) {
	for _, c := range s.store.Collectibles {
		if c.Collected || spatial.Distance(c.Pos, p.Pos) >= s.config.PickupRadius {
			continue
		}

		c.Collected = true
		s.log.WithFields(logrus.Fields{
			"item": c.ID,
			"kind": c.Kind.String(),
		}).Debug("Collected")

		switch c.Kind {
		case entity.KindRupee:
			p.Rupees++
			s.hooks.rupeeCollected(c.Pos)
		case entity.KindKey:
			p.Keys++
			s.hooks.keyCollected(c.Pos)
			if p.Keys == 1 && s.OnFirstKey != nil {
				s.OnFirstKey()
			}
		}

		s.settle(c, now)
	}
}

func (s *CollectSystem) settle(c *entity.Collectible, now time.Duration) {
	id, kind := c.ID, c.Kind
	s.timers.After(timer.Key{Entity: id, Kind: TimerSettle}, now, s.config.SettleDelay.Duration(), func(time.Duration) {
		s.store.RemoveCollectible(id)
		if kind == entity.KindRupee {
			s.store.AddCollectible(s.gen.NewCollectible(s.store, entity.KindRupee))
		}
	})
}
