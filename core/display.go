package core

// Display is a two-line character display. The station renders status
// screens through it; a nil display is tolerated everywhere.
type Display interface {
	Show(line0, line1 string)
}

const displayCols = 16

// renderStatus produces the two screen lines for the current state.
// Grid cells are shown 1-based to match the operator's worksheet.
func renderStatus(state State, obs MarkerObservation, target GridPos) (string, string) {
	switch state {
	case StateInit:
		return "FORGE REGISTRY", "INITIALIZING..."
	case StateHoming:
		return "HOMING...", ""
	case StateWaitPlate1:
		return "PLACE PLATE 1", "at (1,1)"
	case StateWaitPlate2:
		return "PLACE PLATE 2", "at (1,1)"
	case StatePickPlate1, StatePickPlate2:
		return clip("ID " + itoa(obs.ID) + " DETECTED"), clip("T:" + cell(target) + " PICK")
	case StateMovePlate1, StateMovePlate2:
		return clip("T:" + cell(target) + " C:" + cell(obs.Pos)), "Use Pots to Move"
	case StateVerifyPlate1, StateVerifyPlate2:
		return "VERIFYING...", "Hold position"
	case StateComplete:
		return "** SUCCESS! **", "UV LIGHT ON"
	}
	return "", ""
}

// cell formats a grid position as "(row,col)", 1-based.
func cell(p GridPos) string {
	return "(" + itoa(p.Row+1) + "," + itoa(p.Col+1) + ")"
}

func clip(s string) string {
	if len(s) > displayCols {
		return s[:displayCols]
	}
	return s
}
