package pkg

// enum of partition side
type Side uint8

const (
	SIDE_U Side = iota
	SIDE_W
	SIDE_NONE
)

const (
	EDGE_PROBABILITY      = 0.5
	DEFAULT_SEED          = 0
	DEFAULT_TRIALS        = 200
	COMBINATION_LOG_EVERY = 1 << 20 // log exhaustive search progress every COMBINATION_LOG_EVERY candidates
)
