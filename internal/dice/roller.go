package dice

import "go.uber.org/zap"

// Roller throws five dice from a Source and logs every throw at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller seeded with seed. A nil logger disables logging.
func NewRoller(seed int64, logger *zap.Logger) *Roller {
	return NewRollerFromSource(NewSeededSource(seed), logger)
}

// NewRollerFromSource creates a Roller over an arbitrary Source.
func NewRollerFromSource(src Source, logger *zap.Logger) *Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Seed replaces the underlying source with a fresh one seeded with seed.
func (r *Roller) Seed(seed int64) {
	r.src = NewSeededSource(seed)
	r.logger.Debug("dice reseeded", zap.Int64("seed", seed))
}

// Roll returns a fresh roll with every die uniformly drawn from [1, Sides].
func (r *Roller) Roll() Roll {
	var roll Roll
	for i := range roll {
		roll[i] = r.src.Intn(Sides) + 1
	}
	r.logger.Debug("dice roll",
		zap.Ints("dice", roll.Slice()),
		zap.Int("total", roll.Sum()),
	)
	return roll
}
