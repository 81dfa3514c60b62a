package defense

// Kill records one enemy destroyed by tower damage.
type Kill struct {
	Hardness int
	Reward   int
}

// TickReport describes what a single call to Tick changed.
type TickReport struct {
	Tick        int  // tick counter value the report describes
	Skipped     bool // the game was already over, nothing but the counter moved
	Damage      int  // damage actually applied to enemies
	Kills       []Kill
	Spawned     bool
	SpawnHealth int
	Escalated   bool
	Hardness    int // hardness after this tick
	Breached    bool
	GameOver    bool // the game ended during this tick
}

// Stats are running totals over a whole session.
type Stats struct {
	Kills       int
	Breaches    int
	Spawned     int
	Upgrades    int
	HoneySpent  int
	DamageDealt int
}
