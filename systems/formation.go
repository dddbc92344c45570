package systems

// FormationBounce reverses and lowers the whole formation when any enemy
// touches a side of the screen. It scans in query order and reacts to the
// first enemy found at or past an edge; the bounce is applied at most once
// per call even if enemies breach both edges in the same frame.
// Returns true if the formation bounced.
func FormationBounce(filter *EnemyFilter, screenW, drop float32) bool {
	triggered := false

	query := filter.Query()
	for query.Next() {
		pos, size, _ := query.Get()
		if pos.X+size.W >= screenW || pos.X <= 0 {
			triggered = true
			query.Close()
			break
		}
	}
	if !triggered {
		return false
	}

	query = filter.Query()
	for query.Next() {
		pos, _, enemy := query.Get()
		enemy.Direction = -enemy.Direction
		pos.Y += drop
	}
	return true
}
