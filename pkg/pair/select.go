package pair

// ToTest resolves participation tags into the active subset of a
// case list, preserving original order.
//
// If any case is focused, exactly the focused cases are kept and
// everything else is dropped. Otherwise the excluded cases are
// dropped and the rest are kept. Selection reads tags only; no
// operand or message producer is invoked.
func ToTest[L, R any](cases []Case[L, R]) []Case[L, R] {
	focused := false
	for _, c := range cases {
		if c.tag == ParticipationFocused {
			focused = true
			break
		}
	}

	active := make([]Case[L, R], 0, len(cases))
	for _, c := range cases {
		if focused {
			if c.tag == ParticipationFocused {
				active = append(active, c)
			}
			continue
		}
		if c.tag != ParticipationExcluded {
			active = append(active, c)
		}
	}

	return active
}
