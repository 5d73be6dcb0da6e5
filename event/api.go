package event

// EmitHit queues a hit and, when it knocked the victim out, the matching knockout
func EmitHit(q *Queue, tick int64, hit HitPayload, knockout bool, victimName string) {
	q.Push(Event{Type: EventHit, Payload: &hit, Tick: tick})
	if knockout {
		q.Push(Event{
			Type:    EventKnockout,
			Payload: &KnockoutPayload{Victim: hit.Victim, Attacker: hit.Attacker, Name: victimName},
			Tick:    tick,
		})
	}
}
