package vbap

// Preset identifies a common loudspeaker layout.
type Preset int

const (
	// PresetStereo places left and right speakers at ±30°.
	PresetStereo Preset = iota
	// PresetStereoWide places left and right speakers at ±60°.
	PresetStereoWide
	// PresetLCR is left, center, right at 30°, 0°, -30°.
	PresetLCR
	// PresetQuad is four speakers at ±45° and ±135°.
	PresetQuad
	// PresetSurround50 is the ITU-R BS.775-1 five-speaker ring.
	PresetSurround50
	// PresetSurround51 is the 5.1 layout; the LFE channel is not
	// spatialized and carries no speaker here, so it equals 5.0.
	PresetSurround51
	// PresetSurround70 adds side surrounds to the 5.0 ring.
	PresetSurround70
	// PresetSurround71 is the 7.1 layout (LFE omitted, equals 7.0).
	PresetSurround71
	// PresetAtmos514 is a 5.1 base layer plus four overhead speakers.
	PresetAtmos514
	// PresetAtmos714 is a 7.1 base layer plus four overhead speakers.
	PresetAtmos714
	// PresetAtmos916 adds front wides and six overhead speakers.
	PresetAtmos916
	// PresetAuro91 is a 5.1 base plus four height speakers at 30° elevation.
	PresetAuro91
	// PresetHexagon is six speakers evenly spaced in the horizontal plane.
	PresetHexagon
	// PresetOctagon is eight speakers evenly spaced in the horizontal plane.
	PresetOctagon
)

var presetStereo = []Position{
	{30, 0},  // L
	{-30, 0}, // R
}

var presetStereoWide = []Position{
	{60, 0},  // L
	{-60, 0}, // R
}

var presetLCR = []Position{
	{30, 0},  // L
	{0, 0},   // C
	{-30, 0}, // R
}

var presetQuad = []Position{
	{45, 0},   // FL
	{-45, 0},  // FR
	{135, 0},  // RL
	{-135, 0}, // RR
}

var presetSurround50 = []Position{
	{30, 0},   // L
	{-30, 0},  // R
	{0, 0},    // C
	{110, 0},  // Ls
	{-110, 0}, // Rs
}

var presetSurround70 = []Position{
	{30, 0},   // L
	{-30, 0},  // R
	{0, 0},    // C
	{90, 0},   // Lss
	{-90, 0},  // Rss
	{150, 0},  // Lrs
	{-150, 0}, // Rrs
}

var presetAtmos514 = []Position{
	{30, 0},    // L
	{-30, 0},   // R
	{0, 0},     // C
	{110, 0},   // Ls
	{-110, 0},  // Rs
	{45, 45},   // Ltf
	{-45, 45},  // Rtf
	{135, 45},  // Ltr
	{-135, 45}, // Rtr
}

var presetAtmos714 = []Position{
	{30, 0},    // L
	{-30, 0},   // R
	{0, 0},     // C
	{90, 0},    // Lss
	{-90, 0},   // Rss
	{150, 0},   // Lrs
	{-150, 0},  // Rrs
	{45, 45},   // Ltf
	{-45, 45},  // Rtf
	{135, 45},  // Ltr
	{-135, 45}, // Rtr
}

var presetAtmos916 = []Position{
	{30, 0},    // L
	{-30, 0},   // R
	{0, 0},     // C
	{60, 0},    // Lw
	{-60, 0},   // Rw
	{90, 0},    // Lss
	{-90, 0},   // Rss
	{150, 0},   // Lrs
	{-150, 0},  // Rrs
	{30, 45},   // Ltf
	{-30, 45},  // Rtf
	{90, 45},   // Ltm
	{-90, 45},  // Rtm
	{150, 45},  // Ltr
	{-150, 45}, // Rtr
}

var presetAuro91 = []Position{
	{30, 0},    // L
	{-30, 0},   // R
	{0, 0},     // C
	{110, 0},   // Ls
	{-110, 0},  // Rs
	{30, 30},   // HL
	{-30, 30},  // HR
	{110, 30},  // HLs
	{-110, 30}, // HRs
}

var presetHexagon = []Position{
	{0, 0}, {60, 0}, {120, 0}, {180, 0}, {-120, 0}, {-60, 0},
}

var presetOctagon = []Position{
	{0, 0}, {45, 0}, {90, 0}, {135, 0}, {180, 0}, {-135, 0}, {-90, 0}, {-45, 0},
}

func (p Preset) table() []Position {
	switch p {
	case PresetStereo:
		return presetStereo
	case PresetStereoWide:
		return presetStereoWide
	case PresetLCR:
		return presetLCR
	case PresetQuad:
		return presetQuad
	case PresetSurround50, PresetSurround51:
		return presetSurround50
	case PresetSurround70, PresetSurround71:
		return presetSurround70
	case PresetAtmos514:
		return presetAtmos514
	case PresetAtmos714:
		return presetAtmos714
	case PresetAtmos916:
		return presetAtmos916
	case PresetAuro91:
		return presetAuro91
	case PresetHexagon:
		return presetHexagon
	case PresetOctagon:
		return presetOctagon
	default:
		return nil
	}
}

// Positions returns a copy of the preset's speaker angle table.
func (p Preset) Positions() []Position {
	table := p.table()
	if table == nil {
		return nil
	}

	out := make([]Position, len(table))
	copy(out, table)

	return out
}

// String returns the preset's conventional name.
func (p Preset) String() string {
	switch p {
	case PresetStereo:
		return "stereo"
	case PresetStereoWide:
		return "stereo-wide"
	case PresetLCR:
		return "lcr"
	case PresetQuad:
		return "quad"
	case PresetSurround50:
		return "5.0"
	case PresetSurround51:
		return "5.1"
	case PresetSurround70:
		return "7.0"
	case PresetSurround71:
		return "7.1"
	case PresetAtmos514:
		return "5.1.4"
	case PresetAtmos714:
		return "7.1.4"
	case PresetAtmos916:
		return "9.1.6"
	case PresetAuro91:
		return "auro-9.1"
	case PresetHexagon:
		return "hexagon"
	case PresetOctagon:
		return "octagon"
	default:
		return "unknown"
	}
}
