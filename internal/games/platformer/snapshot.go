package platformer

// snapScale converts world-space floats to integers for snapshots. A
// thousandth of a world unit is well below anything the simulation can
// produce a visible difference from.
const snapScale = 1000

func snapF(v float64) int {
	if v < 0 {
		return int(v*snapScale - 0.5)
	}
	return int(v*snapScale + 0.5)
}

func unsnapF(v int) float64 {
	return float64(v) / snapScale
}

// Snapshot contains the complete game state for replay/save/determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	LevelIndex int
	State      string
	Interlude  int
	Mode       int // 0=Campaign, 1=Endless
	Timer      int // Scaled by snapScale
	Clock      int // Scaled by snapScale
	FinalScore int
	FinalLevel int

	// Player state (all positions/velocities scaled by snapScale)
	PlayerX  int
	PlayerY  int
	PlayerVX int
	PlayerVY int
	OnGround bool

	// Active power (Double, Inv as 0/1; EndTime scaled)
	PowerDouble  int
	PowerInv     int
	PowerEndTime int

	// Enemy state (each enemy is 3 ints: X, Y, Dir)
	EnemyCount int
	EnemyData  []int

	// Treasure collected flags (1 = collected)
	TreasureData []int

	// Power-up picked flags (1 = picked)
	PowerUpData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, len(g.level.Enemies)*3)
	for i := range g.level.Enemies {
		e := &g.level.Enemies[i]
		idx := i * 3
		enemyData[idx] = snapF(e.X)
		enemyData[idx+1] = snapF(e.Y)
		enemyData[idx+2] = int(e.Dir)
	}

	treasureData := make([]int, len(g.level.Treasures))
	for i := range g.level.Treasures {
		if g.level.Treasures[i].Collected {
			treasureData[i] = 1
		}
	}

	powerUpData := make([]int, len(g.level.PowerUps))
	for i := range g.level.PowerUps {
		if g.level.PowerUps[i].Picked {
			powerUpData[i] = 1
		}
	}

	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		State:      g.state,
		Interlude:  g.interlude,
		Mode:       int(g.mode),
		Timer:      snapF(g.timer),
		Clock:      snapF(g.clock),
		FinalScore: g.finalScore,
		FinalLevel: g.finalLevel,

		PlayerX:  snapF(g.player.X),
		PlayerY:  snapF(g.player.Y),
		PlayerVX: snapF(g.player.VX),
		PlayerVY: snapF(g.player.VY),
		OnGround: g.player.OnGround,

		PowerEndTime: snapF(g.active.EndTime),

		EnemyCount:   len(g.level.Enemies),
		EnemyData:    enemyData,
		TreasureData: treasureData,
		PowerUpData:  powerUpData,
	}
	if g.active.Double {
		snap.PowerDouble = 1
	}
	if g.active.Inv {
		snap.PowerInv = 1
	}
	return snap
}

// ApplySnapshot restores game state from a snapshot. The level layout must
// already match (same level index and config); only dynamic state is
// restored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.lives = snap.Lives
	g.levelIndex = snap.LevelIndex
	g.state = snap.State
	g.interlude = snap.Interlude
	g.mode = GameMode(snap.Mode)
	g.timer = unsnapF(snap.Timer)
	g.clock = unsnapF(snap.Clock)
	g.finalScore = snap.FinalScore
	g.finalLevel = snap.FinalLevel

	g.player.X = unsnapF(snap.PlayerX)
	g.player.Y = unsnapF(snap.PlayerY)
	g.player.VX = unsnapF(snap.PlayerVX)
	g.player.VY = unsnapF(snap.PlayerVY)
	g.player.OnGround = snap.OnGround

	g.active.Double = snap.PowerDouble == 1
	g.active.Inv = snap.PowerInv == 1
	g.active.EndTime = unsnapF(snap.PowerEndTime)

	for i := range g.level.Enemies {
		idx := i * 3
		if idx+2 < len(snap.EnemyData) {
			g.level.Enemies[i].X = unsnapF(snap.EnemyData[idx])
			g.level.Enemies[i].Y = unsnapF(snap.EnemyData[idx+1])
			g.level.Enemies[i].Dir = float64(snap.EnemyData[idx+2])
		}
	}

	for i := range g.level.Treasures {
		if i < len(snap.TreasureData) {
			g.level.Treasures[i].Collected = snap.TreasureData[i] == 1
		}
	}

	for i := range g.level.PowerUps {
		if i < len(snap.PowerUpData) {
			g.level.PowerUps[i].Picked = snap.PowerUpData[i] == 1
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Interlude)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timer)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clock)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerDouble)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerInv)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerEndTime) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)   //#nosec G115 -- hash computation
	if snap.OnGround {
		h = h*31 + 1
	} else {
		h = h * 31
	}

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.TreasureData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
